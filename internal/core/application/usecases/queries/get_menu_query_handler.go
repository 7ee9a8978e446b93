package queries

import (
	"context"

	"tastyfood/internal/core/ports"
)

// GetMenuQueryHandler serves the menu from the catalog client rather than the
// database. The client is expected to fall back to its last known good
// snapshot when the upstream is unreachable.
type GetMenuQueryHandler struct {
	catalog ports.CatalogClient
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(catalog ports.CatalogClient) GetMenuQueryHandler {
	return GetMenuQueryHandler{catalog: catalog}
}

// Handle executes the query to retrieve all orderable items.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.catalog.ListAvailableItems(ctx)
	if err != nil {
		return nil, err
	}

	menu := make([]GetMenuQueryResponse, 0, len(items))
	for _, item := range items {
		if !item.Available {
			continue
		}

		menu = append(menu, GetMenuQueryResponse{
			ItemID:      item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
			ImageURL:    item.ImageURL,
		})
	}

	return menu, nil
}
