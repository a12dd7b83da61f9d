package filter

import (
	"fmt"
	"slices"
)

// AirportRef holds the two identifiers the flights API needs to reference
// an airport: the short sky code and the stable entity id.
type AirportRef struct {
	SkyID    string
	EntityID string
}

// IsZero reports whether no airport is referenced.
func (r AirportRef) IsZero() bool {
	return r.SkyID == "" && r.EntityID == ""
}

// AirportOption is a selectable airport returned by the airport lookup.
// Label is the localized display name used for selection.
type AirportOption struct {
	Label    string
	Title    string
	Subtitle string
	Ref      AirportRef
}

// FindOption returns the option whose label matches exactly. Labels are
// expected to be unique within a single lookup result.
func FindOption(options []AirportOption, label string) (AirportOption, bool) {
	for _, o := range options {
		if o.Label == label {
			return o, true
		}
	}
	return AirportOption{}, false
}

// String implements fmt.Stringer.
func (r AirportRef) String() string {
	return fmt.Sprintf("%s/%s", r.SkyID, r.EntityID)
}

// CloneOptions copies a slice of options. Options hold only values, so a
// shallow copy is independent of the original.
func CloneOptions(opts []AirportOption) []AirportOption {
	return slices.Clone(opts)
}
