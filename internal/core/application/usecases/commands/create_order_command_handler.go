package commands

import (
	"context"
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/core/domain/model/pricing"
	"tastyfood/internal/core/ports"
	"tastyfood/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for checkout.
// Resolves the selected items against the menu catalog, prices the cart
// server-side, reserves the next sequential order number and persists the
// new order in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s placed, ETA %d minutes", created.OrderNumber(), created.DeliveryETA())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogClient
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// Requires an OrderUoWFactory for transactional persistence and a
// CatalogClient for item validation and pricing.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogClient,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the checkout command and returns the created order.
//
// The client only names item IDs and quantities: names and unit prices come
// from the catalog, so a tampered request cannot set its own prices. Unknown
// or unavailable items fail with an ObjectNotFoundError. The order number is
// reserved inside the same transaction that persists the order, so two
// concurrent checkouts cannot share a number.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cart, err := h.buildCart(ctx, cmd.Items())
	if err != nil {
		return nil, err
	}

	breakdown, err := pricing.Compute(cart, cmd.RewardApplied(), cmd.Tip())
	if err != nil {
		return nil, err
	}

	lines, err := order.LinesFromCart(cart)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orderNumber, err := orderRepo.NextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		orderNumber,
		lines,
		breakdown,
		cmd.Address(),
		kernel.NewRandomDeliveryETA(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// buildCart resolves the selected items against the catalog, pairing each
// selection with the catalog's name and price. The strict fetch is deliberate:
// a checkout must never be validated or priced against a stale cached menu,
// so a catalog outage fails the order.
func (h CreateOrderCommandHandler) buildCart(
	ctx context.Context,
	items []ItemSelection,
) (pricing.Cart, error) {
	menu, err := h.catalog.ListAvailableItemsStrict(ctx)
	if err != nil {
		return pricing.Cart{}, err
	}

	menuByID := make(map[int]ports.MenuItem, len(menu))
	for _, item := range menu {
		if item.Available {
			menuByID[item.ID] = item
		}
	}

	lines := make([]pricing.CartLine, 0, len(items))
	for _, selection := range items {
		menuItem, ok := menuByID[selection.ItemID]
		if !ok {
			return pricing.Cart{}, errs.NewObjectNotFoundError("menu item", selection.ItemID)
		}

		line, err := pricing.NewCartLine(menuItem.ID, menuItem.Name, menuItem.Price, selection.Quantity)
		if err != nil {
			return pricing.Cart{}, err
		}
		lines = append(lines, line)
	}

	return pricing.NewCart(lines), nil
}
