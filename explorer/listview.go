package explorer

import (
	"sort"
	"strings"
)

// PageSize is the fixed page length of every folder listing.
const PageSize = 30

type SortField string

const (
	SortByName SortField = "name"
	SortByDate SortField = "date"
	SortBySize SortField = "size"
	SortByType SortField = "type"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Query describes one rendering of a projected item set. Zero values mean
// no filter, name ascending, first page.
type Query struct {
	Search    string
	SortBy    SortField
	Direction SortDirection
	Page      int
}

// Result is the page handed to the caller. PageReset is set when the
// requested page fell beyond the shrunken result set and the engine
// answered with page 1 instead of a silently empty page.
type Result struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"total_items"`
	TotalPages int    `json:"total_pages"`
	Page       int    `json:"page"`
	PageReset  bool   `json:"page_reset,omitempty"`
}

// View filters, sorts and paginates items. Pure: it performs no I/O and is
// recomputed in full on every call; at the bounded item counts involved
// there is nothing worth caching.
func View(items []Item, q Query) Result {
	filtered := filter(items, q.Search)
	sortItems(filtered, q.SortBy, q.Direction)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	reset := false
	if page > totalPages {
		if totalPages == 0 {
			page = 1
		} else {
			page = 1
			reset = true
		}
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered[start:end],
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
		PageReset:  reset,
	}
}

// filter keeps items whose name, description or creator display name
// contains the search term, case-insensitively. An empty term keeps
// everything.
func filter(items []Item, search string) []Item {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		out := make([]Item, len(items))
		copy(out, items)
		return out
	}

	var out []Item
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name()), term) ||
			strings.Contains(strings.ToLower(it.Description()), term) ||
			strings.Contains(strings.ToLower(it.CreatorName()), term) {
			out = append(out, it)
		}
	}
	return out
}

// sortItems sorts in place, stably. A folder never trades places with a
// file no matter the field or direction; within a kind, ties keep their
// original relative order.
func sortItems(items []Item, field SortField, dir SortDirection) {
	desc := dir == Descending

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Kind != b.Kind {
			return a.Kind == KindFolder
		}

		var less, greater bool
		switch field {
		case SortByDate:
			less = a.CreatedAt().Before(b.CreatedAt())
			greater = b.CreatedAt().Before(a.CreatedAt())
		case SortBySize:
			less = a.Size() < b.Size()
			greater = b.Size() < a.Size()
		case SortByType:
			less = a.TypeKey() < b.TypeKey()
			greater = b.TypeKey() < a.TypeKey()
		default: // SortByName
			an, bn := strings.ToLower(a.Name()), strings.ToLower(b.Name())
			less = an < bn
			greater = bn < an
		}

		if desc {
			return greater
		}
		return less
	})
}
