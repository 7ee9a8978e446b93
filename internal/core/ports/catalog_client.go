package ports

import (
	"context"

	"tastyfood/internal/core/domain/model/kernel"
)

// MenuItem is a read-only view of one item from the upstream menu catalog.
// Prices flow through as exact decimals; orders snapshot the name and price
// at checkout so catalog edits never rewrite order history.
type MenuItem struct {
	ID          int
	Name        string
	Description string
	Price       kernel.Money
	Category    string
	ImageURL    string
	Available   bool
}

// CatalogClient fetches the menu from the upstream catalog service.
//
// Implementations are expected to keep the last successful response cached
// and serve it from ListAvailableItems when the upstream is unreachable; an
// UpstreamUnavailableError is returned only when there is no cached menu to
// fall back on. ListAvailableItemsStrict never degrades: write paths use it
// so an outage fails the operation instead of pricing against stale data.
type CatalogClient interface {
	// ListAvailableItems returns the currently orderable menu items,
	// degrading to the cached snapshot during an upstream outage.
	ListAvailableItems(ctx context.Context) ([]MenuItem, error)

	// ListAvailableItemsStrict returns the live menu or fails with an
	// UpstreamUnavailableError, regardless of any cached snapshot.
	ListAvailableItemsStrict(ctx context.Context) ([]MenuItem, error)
}
