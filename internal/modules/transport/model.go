// README: Transport candidates and their scored form.
package transport

import (
	"errors"

	"tripsense/internal/types"
)

// ErrNoOptions is returned when there is nothing to rank.
var ErrNoOptions = errors.New("no transport options to recommend")

// Scoring weights. Price counts roughly twice as much as travel time.
const (
	priceWeight    = 0.65
	durationWeight = 0.35
)

// unknownDurationMinutes is assumed when an option's duration cannot be parsed,
// so it never wins on time but still competes on price.
const unknownDurationMinutes = 24 * 60

// Option is one candidate for a mode, as fetched by the catalog.
type Option struct {
	Key   types.Mode `json:"key" yaml:"key"`
	Label string     `json:"label" yaml:"label"`
	Price float64    `json:"price" yaml:"price"`

	// Duration is free text such as "2h 15m". Cab data carries ETAMinutes instead.
	Duration   string `json:"duration,omitempty" yaml:"duration"`
	ETAMinutes *int   `json:"etaMinutes,omitempty" yaml:"eta_minutes"`
}

// ScoredOption is an Option plus its score breakdown. Lower FinalScore is better.
type ScoredOption struct {
	Option

	DurationMinutes int     `json:"durationMinutes"`
	PriceScore      float64 `json:"priceScore"`
	DurationScore   float64 `json:"durationScore"`
	BaseScore       float64 `json:"baseScore"`
	PenaltyPoints   float64 `json:"penaltyPoints"`
	FinalScore      float64 `json:"finalScore"`
}

type Recommendation struct {
	Winner      ScoredOption   `json:"winner"`
	Ranked      []ScoredOption `json:"ranked"`
	Explanation string         `json:"explanation"`
}
