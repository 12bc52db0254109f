package service

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"deal-pipeline-api/internal/domain"
)

// SortKey identifies a sortable table column
type SortKey string

const (
	SortByClientName  SortKey = "clientName"
	SortByProductName SortKey = "productName"
	SortByStage       SortKey = "stage"
	SortByCreatedDate SortKey = "createdDate"
)

// IsValid reports whether k is a known sort key
func (k SortKey) IsValid() bool {
	switch k {
	case SortByClientName, SortByProductName, SortByStage, SortByCreatedDate:
		return true
	}
	return false
}

// SortDirection is asc or desc
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// StageFilterAll matches every stage
const StageFilterAll = "All"

// TableQuery is the full input to the table projection
type TableQuery struct {
	Search      string
	StageFilter string
	SortKey     SortKey
	SortDir     SortDirection
}

// DefaultTableQuery mirrors the table view's initial controls
func DefaultTableQuery() TableQuery {
	return TableQuery{
		StageFilter: StageFilterAll,
		SortKey:     SortByClientName,
		SortDir:     SortAsc,
	}
}

// SortState is the table's current sort selection
type SortState struct {
	Key SortKey
	Dir SortDirection
}

// ToggleSort flips the direction when the same key is chosen again and
// resets to ascending when a new key is chosen.
func ToggleSort(cur SortState, key SortKey) SortState {
	if cur.Key == key {
		if cur.Dir == SortAsc {
			cur.Dir = SortDesc
		} else {
			cur.Dir = SortAsc
		}
		return cur
	}
	return SortState{Key: key, Dir: SortAsc}
}

// ProjectTable filters and sorts deals for tabular display. It is a pure
// function: the input slice is never mutated and the result is a fresh
// sequence. A deal is kept iff it matches the stage filter and the
// case-insensitive search matches the concatenation of client name, product
// name and notes. The sort is stable; descending reverses the ascending
// comparison rather than running a different comparator.
func ProjectTable(deals []domain.Deal, q TableQuery) []domain.Deal {
	query := strings.ToLower(strings.TrimSpace(q.Search))

	filtered := make([]domain.Deal, 0, len(deals))
	for _, deal := range deals {
		if q.StageFilter != "" && q.StageFilter != StageFilterAll && string(deal.Stage) != q.StageFilter {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(deal.ClientName + " " + deal.ProductName + " " + deal.Notes)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		filtered = append(filtered, deal)
	}

	cl := collate.New(language.English)
	less := func(a, b domain.Deal) bool {
		var cmp int
		switch q.SortKey {
		case SortByCreatedDate:
			cmp = compareDates(a.CreatedDate, b.CreatedDate)
		case SortByProductName:
			cmp = cl.CompareString(a.ProductName, b.ProductName)
		case SortByStage:
			cmp = cl.CompareString(string(a.Stage), string(b.Stage))
		default:
			cmp = cl.CompareString(a.ClientName, b.ClientName)
		}
		if q.SortDir == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return less(filtered[i], filtered[j])
	})
	return filtered
}

// compareDates orders ISO date strings chronologically, not lexically.
// Unparseable dates sort before valid ones.
func compareDates(a, b string) int {
	ta, errA := time.Parse("2006-01-02", a)
	tb, errB := time.Parse("2006-01-02", b)
	if errA != nil || errB != nil {
		if errA != nil && errB != nil {
			return 0
		}
		if errA != nil {
			return -1
		}
		return 1
	}
	switch {
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	}
	return 0
}
