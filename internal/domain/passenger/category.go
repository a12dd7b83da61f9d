// Package passenger owns passenger counts for a flight search and the
// increment/decrement rules applied to them.
package passenger

// Category identifies a passenger type accepted by the flights API.
type Category string

const (
	CategoryAdults   Category = "adults"
	CategoryChildren Category = "children"
	CategoryInfants  Category = "infants"
)

// IsValid returns true if the category is one of the defined constants.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAdults, CategoryChildren, CategoryInfants:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// Descriptor is the display metadata for a category.
type Descriptor struct {
	Category    Category
	Label       string
	Description string
}

// Categories returns the closed set of passenger categories in display order.
func Categories() []Descriptor {
	return []Descriptor{
		{Category: CategoryAdults, Label: "Adults"},
		{Category: CategoryChildren, Label: "Children", Description: "Aged 2-11"},
		{Category: CategoryInfants, Label: "Infants", Description: "In seat / On lap"},
	}
}
