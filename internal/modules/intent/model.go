// README: Structured travel intent extracted from a free-text request.
package intent

import "tripsense/internal/types"

type TravelType string

const (
	TravelLeisure   TravelType = "leisure"
	TravelAdventure TravelType = "adventure"
	TravelFamily    TravelType = "family"
)

// Constraint tags pushed onto TravelIntent.Constraints.
const (
	ConstraintBudget = "budget"
	ConstraintTime   = "time"
)

// MonthNext is stored in TravelIntent.Month when the request says "next month".
const MonthNext = "next_month"

const (
	baseConfidence = 0.4
	maxConfidence  = 0.95
)

// Budget is the spending ceiling the traveller mentioned.
type Budget struct {
	// Max is nil when no ceiling was found.
	Max      *int64 `json:"max"`
	Currency string `json:"currency"`
}

// TravelIntent captures what the parser could recognise in a request.
// Unmatched fields stay nil so callers can tell "absent" from "zero".
type TravelIntent struct {
	// Destination is a title-cased gazetteer entry, e.g. "Goa".
	Destination *string `json:"destination"`

	Budget Budget `json:"budget"`

	// Duration is the trip length in days.
	Duration *int `json:"duration"`

	// Month is a title-cased month name or MonthNext.
	Month *string `json:"month"`

	TravelType *TravelType `json:"travel_type"`

	// Constraints lists the signal categories that fired, in detection order.
	Constraints []string `json:"constraints"`

	// Confidence is a heuristic in [0.4, 0.95].
	Confidence float64 `json:"confidence"`
}

// HasConstraint reports whether tag was recorded during parsing.
func (t TravelIntent) HasConstraint(tag string) bool {
	for _, c := range t.Constraints {
		if c == tag {
			return true
		}
	}
	return false
}

func newIntent() TravelIntent {
	return TravelIntent{
		Budget:      Budget{Currency: types.CurrencyINR},
		Constraints: []string{},
		Confidence:  baseConfidence,
	}
}
