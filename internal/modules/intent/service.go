// README: Rule-based intent parser turning free text into a TravelIntent.
package intent

import (
	"math"
	"strconv"
	"strings"
)

// Service exposes Parse to the HTTP layer.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Parse(text string) TravelIntent {
	return Parse(text)
}

// Parse extracts destination, budget, duration, month and travel type from text.
// It never fails: unrecognised signals leave their field nil.
func Parse(text string) TravelIntent {
	lower := strings.ToLower(text)
	in := newIntent()

	// 1. Destination
	for _, place := range destinations {
		if strings.Contains(lower, place) {
			dest := titleCase(place)
			in.Destination = &dest
			in.Confidence += weightDestination
			break
		}
	}

	// 2. Budget ceiling
	if m := budgetPattern.FindStringSubmatch(lower); m != nil {
		if amount, ok := parseAmount(m[1], m[2] != ""); ok {
			in.Budget.Max = &amount
			in.Constraints = append(in.Constraints, ConstraintBudget)
			in.Confidence += weightBudget
		}
	}

	// 3. Duration: an explicit day count overrides "weekend"
	if strings.Contains(lower, "weekend") {
		days := weekendDays
		in.Duration = &days
		in.Constraints = append(in.Constraints, ConstraintTime)
		in.Confidence += weightWeekend
	}
	if m := dayCountPattern.FindStringSubmatch(lower); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			in.Duration = &days
			in.Constraints = append(in.Constraints, ConstraintTime)
			in.Confidence += weightDayCount
		}
	}

	// 4. Month: "next month" is checked last so it always wins
	for _, month := range months {
		if strings.Contains(lower, month) {
			name := titleCase(month)
			in.Month = &name
			in.Confidence += weightMonth
			break
		}
	}
	if strings.Contains(lower, "next month") {
		next := MonthNext
		in.Month = &next
		in.Confidence += weightNextMonth
	}

	// 5. Travel type
	for _, rule := range travelTypeRules {
		if strings.Contains(lower, rule.keyword) {
			tt := rule.value
			in.TravelType = &tt
		}
	}
	if in.TravelType != nil {
		in.Confidence += weightTravelType
	}

	// 6. Clamp
	if in.Confidence > maxConfidence {
		in.Confidence = maxConfidence
	}
	return in
}

func parseAmount(digits string, thousands bool) (int64, bool) {
	n, err := strconv.ParseInt(strings.ReplaceAll(digits, ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	if thousands {
		if n > math.MaxInt64/1000 {
			return 0, false
		}
		n *= 1000
	}
	return n, true
}
