package passenger

// Counts maps each category to a non-negative passenger count. It is a
// value type: copies never share state.
type Counts struct {
	Adults   int
	Children int
	Infants  int
}

// DefaultCounts returns the initial selection of one adult.
func DefaultCounts() Counts {
	return Counts{Adults: 1}
}

// Get returns the count for the given category. Unknown categories report 0.
func (c Counts) Get(cat Category) int {
	switch cat {
	case CategoryAdults:
		return c.Adults
	case CategoryChildren:
		return c.Children
	case CategoryInfants:
		return c.Infants
	default:
		return 0
	}
}

// With returns a copy of c with the given category set to n.
func (c Counts) With(cat Category, n int) Counts {
	switch cat {
	case CategoryAdults:
		c.Adults = n
	case CategoryChildren:
		c.Children = n
	case CategoryInfants:
		c.Infants = n
	}
	return c
}

// Total returns the sum of all categories.
func (c Counts) Total() int {
	return c.Adults + c.Children + c.Infants
}

// Map returns the counts keyed by category name, in the shape the flights
// API and the HTTP layer expect.
func (c Counts) Map() map[Category]int {
	return map[Category]int{
		CategoryAdults:   c.Adults,
		CategoryChildren: c.Children,
		CategoryInfants:  c.Infants,
	}
}
