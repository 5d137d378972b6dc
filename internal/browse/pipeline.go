package browse

import (
	"sort"
	"strings"

	"sushimenu/internal/sushi"
)

// Page is the derived view of a sushi list under the current state: the
// visible slice plus the figures pagination needs.
type Page struct {
	Items         []sushi.Sushi
	FilteredCount int
	TotalPages    int
}

// Derive runs the filter, sort and paginate stages over the raw list. It is
// a pure function: the input slice is never mutated and the same inputs
// always produce the same page.
func Derive(items []sushi.Sushi, st State) Page {
	filtered := Filter(items, st)
	sorted := Sort(filtered, st)

	page := Paginate(sorted, st.CurrentPage, st.ItemsPerPage)

	return Page{
		Items:         page,
		FilteredCount: len(filtered),
		TotalPages:    totalPages(len(filtered), st.ItemsPerPage),
	}
}

// Filter returns the items passing every active criterion. An item passes
// the search when the query appears case-insensitively in its name or its
// fish type; an item without a fish type simply does not match on that
// path. Items whose price does not parse are excluded whenever a price
// range is in effect, which keeps the later sort stage free of unparsable
// prices.
func Filter(items []sushi.Sushi, st State) []sushi.Sushi {
	query := strings.ToLower(st.SearchQuery)

	out := make([]sushi.Sushi, 0, len(items))
	for _, item := range items {
		if !matchesSearch(item, query) {
			continue
		}
		if !st.TypeFilter.Matches(item.Type) {
			continue
		}

		price, ok := sushi.ParsePrice(item.Price)
		if !ok || price < st.PriceRange.Min || price > st.PriceRange.Max {
			continue
		}

		out = append(out, item)
	}
	return out
}

func matchesSearch(item sushi.Sushi, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Name), query) {
		return true
	}
	if fish, ok := item.FishType(); ok {
		return strings.Contains(strings.ToLower(fish), query)
	}
	return false
}

// Sort orders a copy of the list. A name sort takes precedence over a price
// sort; with neither active the input order is preserved. Both sorts are
// stable.
func Sort(items []sushi.Sushi, st State) []sushi.Sushi {
	sorted := make([]sushi.Sushi, len(items))
	copy(sorted, items)

	switch {
	case st.NameSort != SortNone:
		sort.SliceStable(sorted, func(i, j int) bool {
			a := strings.ToLower(sorted[i].Name)
			b := strings.ToLower(sorted[j].Name)
			if st.NameSort == SortAsc {
				return a < b
			}
			return a > b
		})
	case st.PriceSort != SortNone:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, _ := sushi.ParsePrice(sorted[i].Price)
			b, _ := sushi.ParsePrice(sorted[j].Price)
			if st.PriceSort == SortAsc {
				return a < b
			}
			return a > b
		})
	}

	return sorted
}

// Paginate slices out the 1-based page of size perPage. A page beyond the
// end yields an empty slice, the caller's page-reset-on-filter-change is
// what keeps the page in range in practice.
func Paginate(items []sushi.Sushi, page, perPage int) []sushi.Sushi {
	if page < 1 || perPage < 1 {
		return nil
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return nil
	}

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

func totalPages(count, perPage int) int {
	if count == 0 || perPage < 1 {
		return 0
	}
	return (count + perPage - 1) / perPage
}

// Ellipsis marks a gap in the page-number window.
const Ellipsis = -1

// PageWindow returns the page numbers to render: first, last and the pages
// adjacent to current, with Ellipsis standing in for each collapsed gap.
// An empty slice means the controls are hidden entirely.
func PageWindow(current, total int) []int {
	if total <= 1 {
		return nil
	}

	var window []int
	for page := 1; page <= total; page++ {
		switch {
		case page == 1 || page == total || (page >= current-1 && page <= current+1):
			window = append(window, page)
		case page == current-2 || page == current+2:
			window = append(window, Ellipsis)
		}
	}
	return window
}
