package store

import (
	"strings"

	"github.com/grupo-salus/careflow-desk/internal/domain"
)

// ReasonCatalog is the read-only catalog of creation reasons consumed by the
// ticket-opening workflow.
type ReasonCatalog struct {
	reasons []domain.CreationReason
}

// NewReasonCatalog builds a catalog from the loaded seed.
func NewReasonCatalog(reasons []domain.CreationReason) *ReasonCatalog {
	out := make([]domain.CreationReason, len(reasons))
	copy(out, reasons)
	return &ReasonCatalog{reasons: out}
}

// All returns every reason in catalog order.
func (c *ReasonCatalog) All() []domain.CreationReason {
	out := make([]domain.CreationReason, len(c.reasons))
	copy(out, c.reasons)
	return out
}

// Len returns the catalog size.
func (c *ReasonCatalog) Len() int {
	return len(c.reasons)
}

// GetByID looks up a reason.
func (c *ReasonCatalog) GetByID(id string) (domain.CreationReason, bool) {
	for _, r := range c.reasons {
		if r.ID == id {
			return r, true
		}
	}
	return domain.CreationReason{}, false
}

// Search filters reasons by a case-insensitive substring over title,
// description and category. A blank term returns the full catalog.
func (c *ReasonCatalog) Search(term string) []domain.CreationReason {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return c.All()
	}
	out := make([]domain.CreationReason, 0, len(c.reasons))
	for _, r := range c.reasons {
		if strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.Description), needle) ||
			strings.Contains(strings.ToLower(r.Category), needle) {
			out = append(out, r)
		}
	}
	return out
}
