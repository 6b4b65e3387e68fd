package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/grupo-salus/careflow-desk/internal/domain"
)

// SortKey selects a listing order.
type SortKey string

const (
	SortUpdatedDesc SortKey = "updated_desc"
	SortUpdatedAsc  SortKey = "updated_asc"
	SortPriority    SortKey = "priority"
	SortTitleAZ     SortKey = "title_az"
)

// DefaultSort is applied when no key is given.
const DefaultSort = SortUpdatedDesc

// Sort returns a freshly ordered copy of tickets; the input slice is never
// mutated. Ties under the priority key keep input order. An unknown key is an
// identity pass-through.
func Sort(tickets []domain.Ticket, key SortKey) []domain.Ticket {
	out := make([]domain.Ticket, len(tickets))
	copy(out, tickets)

	switch key {
	case SortUpdatedDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		})
	case SortUpdatedAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt.Before(out[j].UpdatedAt)
		})
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		})
	case SortTitleAZ:
		// pt-BR collation so accented titles order the way the catalog reads.
		coll := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(out[i].Title, out[j].Title) < 0
		})
	}
	return out
}
