// README: Regional event records and their per-mode impact.
package events

import "tripsense/internal/types"

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

type Category string

const (
	CategoryMusic     Category = "music"
	CategorySports    Category = "sports"
	CategoryReligious Category = "religious"
	CategoryCulture   Category = "culture"
)

// Record is a known event supplied by the catalog.
type Record struct {
	Title             string   `json:"title" yaml:"title"`
	Location          string   `json:"location" yaml:"location"`
	Date              string   `json:"date" yaml:"date"`
	Category          Category `json:"category" yaml:"category"`
	Severity          Severity `json:"severity" yaml:"severity"`
	Impact            string   `json:"impact" yaml:"impact"`
	RecommendedAction string   `json:"recommendedAction" yaml:"recommended_action"`
}

// Summary is the traveller-facing digest of one relevant event.
type Summary struct {
	Title          string   `json:"title"`
	Impact         string   `json:"impact"`
	Recommendation string   `json:"recommendation"`
	Severity       Severity `json:"severity"`
}

// Impact is the evaluator's output. EventSummary is nil when nothing is relevant;
// Penalties always carries every mode.
type Impact struct {
	EventSummary []Summary              `json:"eventSummary"`
	Penalties    map[types.Mode]float64 `json:"penalties"`
}

// HasEvents reports whether any relevant event was found.
func (i Impact) HasEvents() bool {
	return len(i.EventSummary) > 0
}

// Penalty returns the penalty for m, zero when absent.
func (i Impact) Penalty(m types.Mode) float64 {
	return i.Penalties[m]
}

func zeroPenalties() map[types.Mode]float64 {
	p := make(map[types.Mode]float64, len(types.Modes))
	for _, m := range types.Modes {
		p[m] = 0
	}
	return p
}
