package query

import (
	"fmt"
	"time"

	"github.com/freshly-app/freshly/internal/inventory/domain"
)

// DefaultExpiringDays is the default look-ahead window for expiring items.
const DefaultExpiringDays = 3

// ExpiringQuery represents the query for items expiring soon.
type ExpiringQuery struct {
	WithinDays int
	Now        time.Time
}

// ExpiringHandler handles the expiring items query.
type ExpiringHandler struct {
	repo domain.ItemRepository
}

// NewExpiringHandler creates a new expiring items handler.
func NewExpiringHandler(repo domain.ItemRepository) *ExpiringHandler {
	return &ExpiringHandler{repo: repo}
}

// Handle returns items whose expiry date falls within [now, now+withinDays].
// Items without an expiry date are excluded.
func (h *ExpiringHandler) Handle(query ExpiringQuery) ([]domain.Item, error) {
	if query.WithinDays <= 0 {
		query.WithinDays = DefaultExpiringDays
	}
	if query.Now.IsZero() {
		query.Now = time.Now()
	}
	items, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query expiring items: %w", err)
	}

	// Expiry dates are calendar days in ISO format, so the window check is
	// a lexicographic comparison.
	from := query.Now.Format("2006-01-02")
	until := query.Now.AddDate(0, 0, query.WithinDays).Format("2006-01-02")

	expiring := []domain.Item{}
	for _, item := range items {
		if item.ExpiryDate == "" {
			continue
		}
		if item.ExpiryDate >= from && item.ExpiryDate <= until {
			expiring = append(expiring, item)
		}
	}
	return expiring, nil
}
