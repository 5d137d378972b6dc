package browse

import "sushimenu/internal/sushi"

type SortOrder string

const (
	SortNone SortOrder = "none"
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// TypeFilter is either TypeFilterAll or the name of a sushi type.
type TypeFilter string

const TypeFilterAll TypeFilter = "all"

func (f TypeFilter) Matches(t sushi.Type) bool {
	return f == TypeFilterAll || string(f) == string(t)
}

type PriceRange struct {
	Min float64
	Max float64
}

const (
	DefaultPriceMin     = 0
	DefaultPriceMax     = 100
	DefaultItemsPerPage = 8
)

// State holds the filter, sort and pagination selections for one browsing
// session. It is owned by the top-level session and passed down, not a
// package-level singleton. Every filter or sort change resets the current
// page to 1 so the shrunken result set is viewed from the start.
//
// The state performs no validation of its own: an inverted price range is
// stored as given.
type State struct {
	SearchQuery  string
	TypeFilter   TypeFilter
	PriceRange   PriceRange
	PriceSort    SortOrder
	NameSort     SortOrder
	CurrentPage  int
	ItemsPerPage int
}

func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

func (s *State) SetSearchQuery(q string) {
	s.SearchQuery = q
	s.CurrentPage = 1
}

func (s *State) SetTypeFilter(f TypeFilter) {
	s.TypeFilter = f
	s.CurrentPage = 1
}

func (s *State) SetPriceRange(r PriceRange) {
	s.PriceRange = r
	s.CurrentPage = 1
}

// SetPriceSort selects a price ordering and clears any name ordering, the
// two sorts are mutually exclusive.
func (s *State) SetPriceSort(o SortOrder) {
	s.PriceSort = o
	if o != SortNone {
		s.NameSort = SortNone
	}
	s.CurrentPage = 1
}

// SetNameSort selects a name ordering and clears any price ordering.
func (s *State) SetNameSort(o SortOrder) {
	s.NameSort = o
	if o != SortNone {
		s.PriceSort = SortNone
	}
	s.CurrentPage = 1
}

func (s *State) SetCurrentPage(p int) {
	s.CurrentPage = p
}

// Reset restores every field, page included, to its default.
func (s *State) Reset() {
	s.SearchQuery = ""
	s.TypeFilter = TypeFilterAll
	s.PriceRange = PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax}
	s.PriceSort = SortNone
	s.NameSort = SortNone
	s.CurrentPage = 1
	s.ItemsPerPage = DefaultItemsPerPage
}
