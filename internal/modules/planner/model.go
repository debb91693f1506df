// README: Trip plan produced from a parsed travel intent.
package planner

import "errors"

// ErrDurationOutOfRange is returned by ValidateDuration for day counts outside 1..MaxDurationDays.
var ErrDurationOutOfRange = errors.New("duration out of range")

// Defaults applied when the intent leaves duration or budget unset or non-positive.
const (
	DefaultDurationDays = 3
	DefaultBudget       = 15000

	// MaxDurationDays bounds the itinerary length. Build never plans more days.
	MaxDurationDays = 60
)

// Budget shares. Each part is rounded on its own, so the sum may drift by one.
const (
	stayShare   = 0.45
	travelShare = 0.35
	foodShare   = 0.20
)

// souvenirDay is a fixed day index, not "the last day".
const souvenirDay = 3

type BudgetSplit struct {
	Stay   int64 `json:"stay"`
	Travel int64 `json:"travel"`
	Food   int64 `json:"food"`
}

type DayPlan struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

type Alternative struct {
	Destination string `json:"destination"`
	Reason      string `json:"reason"`
}

type TripPlan struct {
	Destination  *string       `json:"destination"`
	Duration     int           `json:"duration"`
	TotalBudget  int64         `json:"totalBudget"`
	BudgetSplit  BudgetSplit   `json:"budgetSplit"`
	Itinerary    []DayPlan     `json:"itinerary"`
	WhyThisPlan  string        `json:"whyThisPlan"`
	Alternatives []Alternative `json:"alternatives"`
}
