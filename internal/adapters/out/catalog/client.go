// Package catalog provides an HTTP client for the upstream menu catalog
// service. The client keeps the last successful response in memory so a
// catalog outage degrades the menu to a stale snapshot instead of an error.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/ports"
	"tastyfood/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const defaultTimeout = 5 * time.Second

// menuItemDTO mirrors the catalog service's wire format.
type menuItemDTO struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	Available   bool            `json:"available"`
}

// Client fetches menu items from the catalog service over HTTP.
// Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu       sync.RWMutex
	snapshot []ports.MenuItem
	hasCache bool
}

// NewClient creates a catalog client for the given base URL,
// e.g. "http://menu-catalog:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// ListAvailableItems returns the current menu. On upstream failure the last
// known good snapshot is served; an UpstreamUnavailableError is returned only
// when no snapshot has ever been captured.
func (c *Client) ListAvailableItems(ctx context.Context) ([]ports.MenuItem, error) {
	items, err := c.fetch(ctx)
	if err != nil {
		if cached, ok := c.cached(); ok {
			return cached, nil
		}
		return nil, errs.NewUpstreamUnavailableError("menu catalog", err)
	}

	c.store(items)
	return items, nil
}

// ListAvailableItemsStrict returns the live menu and never serves the
// snapshot. Checkout resolves and prices items through this method, so an
// outage fails the order instead of validating it against stale data.
func (c *Client) ListAvailableItemsStrict(ctx context.Context) ([]ports.MenuItem, error) {
	items, err := c.fetch(ctx)
	if err != nil {
		return nil, errs.NewUpstreamUnavailableError("menu catalog", err)
	}

	c.store(items)
	return items, nil
}

// Refresh fetches the menu and updates the snapshot without serving it.
// Used by the periodic refresh job to keep the fallback warm.
func (c *Client) Refresh(ctx context.Context) error {
	items, err := c.fetch(ctx)
	if err != nil {
		return errs.NewUpstreamUnavailableError("menu catalog", err)
	}

	c.store(items)
	return nil
}

func (c *Client) fetch(ctx context.Context) ([]ports.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/menu/items", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog responded with status %d", resp.StatusCode)
	}

	var dtos []menuItemDTO
	if err = json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, err
	}

	items := make([]ports.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, ports.MenuItem{
			ID:          dto.ID,
			Name:        dto.Name,
			Description: dto.Description,
			Price:       kernel.NewMoney(dto.Price),
			Category:    dto.Category,
			ImageURL:    dto.ImageURL,
			Available:   dto.Available,
		})
	}

	return items, nil
}

func (c *Client) store(items []ports.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = items
	c.hasCache = true
}

func (c *Client) cached() ([]ports.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.hasCache {
		return nil, false
	}

	items := make([]ports.MenuItem, len(c.snapshot))
	copy(items, c.snapshot)
	return items, true
}
