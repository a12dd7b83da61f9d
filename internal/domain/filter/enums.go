package filter

// TripMode selects between a one-way and a round-trip search.
type TripMode string

const (
	TripModeRoundTrip TripMode = "round-trip"
	TripModeOneWay    TripMode = "one-way"
)

// IsValid returns true if the trip mode is one of the defined constants.
func (m TripMode) IsValid() bool {
	switch m {
	case TripModeRoundTrip, TripModeOneWay:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (m TripMode) String() string {
	return string(m)
}

// CabinClass is the requested seating class. Values are lower-case.
type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// IsValid returns true if the cabin class is one of the defined constants.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c CabinClass) String() string {
	return string(c)
}
