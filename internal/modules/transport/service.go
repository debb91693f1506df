// README: Multi-modal scorer ranks one candidate per mode and explains the pick.
package transport

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"tripsense/internal/modules/events"
	"tripsense/internal/types"
)

// Service exposes Recommend to callers that hold a service value.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Recommend(options []Option, impact events.Impact) (Recommendation, error) {
	return Recommend(options, impact)
}

// Recommend normalises price and duration across options, adds the event penalty
// for each option's mode and returns the options ranked by ascending final score.
// Ties keep input order.
func Recommend(options []Option, impact events.Impact) (Recommendation, error) {
	if len(options) == 0 {
		return Recommendation{}, ErrNoOptions
	}

	ranked := Score(options, impact.Penalties)
	slices.SortStableFunc(ranked, func(a, b ScoredOption) int {
		switch {
		case a.FinalScore < b.FinalScore:
			return -1
		case a.FinalScore > b.FinalScore:
			return 1
		}
		return 0
	})

	return Recommendation{
		Winner:      ranked[0],
		Ranked:      ranked,
		Explanation: explain(ranked, impact),
	}, nil
}

// Score computes the breakdown for each option without reordering them.
func Score(options []Option, penalties map[types.Mode]float64) []ScoredOption {
	scored := make([]ScoredOption, len(options))
	for i, opt := range options {
		scored[i] = ScoredOption{Option: opt, DurationMinutes: opt.Minutes()}
	}

	minPrice, maxPrice := scored[0].Price, scored[0].Price
	minDur, maxDur := scored[0].DurationMinutes, scored[0].DurationMinutes
	for _, s := range scored[1:] {
		minPrice = math.Min(minPrice, s.Price)
		maxPrice = math.Max(maxPrice, s.Price)
		minDur = min(minDur, s.DurationMinutes)
		maxDur = max(maxDur, s.DurationMinutes)
	}

	for i := range scored {
		s := &scored[i]
		s.PriceScore = normalize(s.Price, minPrice, maxPrice) * 100
		s.DurationScore = normalize(float64(s.DurationMinutes), float64(minDur), float64(maxDur)) * 100
		s.BaseScore = s.PriceScore*priceWeight + s.DurationScore*durationWeight
		s.PenaltyPoints = penalties[s.Key]
		s.FinalScore = s.BaseScore + s.PenaltyPoints
	}
	return scored
}

// normalize maps v into [0,1]. A dimension where every candidate is equal is neutral.
func normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

func explain(ranked []ScoredOption, impact events.Impact) string {
	w := ranked[0]
	var b strings.Builder

	fmt.Fprintf(&b, "%s is the recommended way to travel: %s, about %s.",
		w.Label, priceText(w.Price), durationText(w.Option, w.DurationMinutes))
	fmt.Fprintf(&b, " Score %.1f (price %.0f/100, duration %.0f/100, event penalty %.0f); lower is better.",
		w.FinalScore, w.PriceScore, w.DurationScore, w.PenaltyPoints)
	if len(ranked) > 1 {
		fmt.Fprintf(&b, " Next best: %s at %.1f.", ranked[1].Label, ranked[1].FinalScore)
	}

	if !impact.HasEvents() {
		return b.String()
	}

	b.WriteString("\n\nEvents near your destination:")
	for _, ev := range impact.EventSummary {
		fmt.Fprintf(&b, "\n• %s (%s): %s.", ev.Title, ev.Severity, strings.TrimSuffix(ev.Impact, "."))
		if ev.Recommendation != "" {
			fmt.Fprintf(&b, " Advice: %s", ev.Recommendation)
		}
	}
	if w.PenaltyPoints > 0 {
		fmt.Fprintf(&b, "\n\n%s carries a %.0f point event penalty but remained the best option.", w.Label, w.PenaltyPoints)
	} else {
		fmt.Fprintf(&b, "\n\n%s is the least affected by these events.", w.Label)
	}
	return b.String()
}

func priceText(price float64) string {
	return types.INR(int64(math.Round(price))).String()
}

func durationText(o Option, minutes int) string {
	if strings.TrimSpace(o.Duration) != "" && o.ETAMinutes == nil {
		return o.Duration
	}
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%d min", minutes)
}
