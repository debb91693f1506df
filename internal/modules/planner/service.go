// README: Plan reasoner; budget split, itinerary and alternatives from an intent.
package planner

import (
	"fmt"
	"math"
	"strings"

	"tripsense/internal/modules/intent"
	"tripsense/internal/types"
)

// Service exposes Build to the HTTP layer.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Build(in intent.TravelIntent) TripPlan {
	return Build(in)
}

// Build turns an intent into a plan. Missing or non-positive duration and budget
// fall back to DefaultDurationDays and DefaultBudget; longer trips are cut to
// MaxDurationDays. It never fails.
func Build(in intent.TravelIntent) TripPlan {
	days := DefaultDurationDays
	if in.Duration != nil && *in.Duration > 0 {
		days = min(*in.Duration, MaxDurationDays)
	}
	total := int64(DefaultBudget)
	if in.Budget.Max != nil && *in.Budget.Max > 0 {
		total = *in.Budget.Max
	}

	var travelType intent.TravelType
	if in.TravelType != nil {
		travelType = *in.TravelType
	}

	var destination string
	if in.Destination != nil {
		destination = *in.Destination
	}

	return TripPlan{
		Destination:  in.Destination,
		Duration:     days,
		TotalBudget:  total,
		BudgetSplit:  Split(total),
		Itinerary:    itinerary(destination, days, travelType),
		WhyThisPlan:  explain(in, destination, days, total),
		Alternatives: Alternatives(destination, total),
	}
}

// ValidateDuration rejects an explicit day count outside 1..MaxDurationDays.
// A nil duration is valid and means DefaultDurationDays.
func ValidateDuration(in intent.TravelIntent) error {
	if in.Duration == nil {
		return nil
	}
	if d := *in.Duration; d < 1 || d > MaxDurationDays {
		return fmt.Errorf("%w: %d days, want 1..%d", ErrDurationOutOfRange, d, MaxDurationDays)
	}
	return nil
}

// Split allocates total across stay, travel and food.
func Split(total int64) BudgetSplit {
	share := func(f float64) int64 {
		return int64(math.Round(float64(total) * f))
	}
	return BudgetSplit{
		Stay:   share(stayShare),
		Travel: share(travelShare),
		Food:   share(foodShare),
	}
}

func itinerary(destination string, days int, travelType intent.TravelType) []DayPlan {
	plan := make([]DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		activities := make([]string, 0, len(baseActivities)+3)
		if day == 1 {
			activities = append(activities, arrivalActivity)
		}
		activities = append(activities, baseActivities...)
		if extra, ok := extraActivity[travelType]; ok {
			activities = append(activities, extra)
		}
		if day == souvenirDay {
			activities = append(activities, souvenirActivity)
		}
		plan = append(plan, DayPlan{
			Day:        day,
			Title:      dayTitle(day, destination),
			Activities: activities,
		})
	}
	return plan
}

func dayTitle(day int, destination string) string {
	if destination == "" {
		return fmt.Sprintf("Day %d", day)
	}
	return fmt.Sprintf("Day %d in %s", day, destination)
}

// explain joins one sentence per signal present in the intent. The day-count
// sentence is always last.
func explain(in intent.TravelIntent, destination string, days int, total int64) string {
	var out []string
	if destination != "" {
		out = append(out, fmt.Sprintf("%s matches the destination you asked for.", destination))
	}
	if in.HasConstraint(intent.ConstraintBudget) {
		out = append(out, fmt.Sprintf("The plan stays within your %s budget, with %d%% set aside for stay.",
			types.INR(total), int(stayShare*100)))
	}
	if in.TravelType != nil {
		if r, ok := travelTypeReason[*in.TravelType]; ok {
			out = append(out, r)
		}
	}
	out = append(out, fmt.Sprintf("The itinerary spans %s so there is time to settle in and see the highlights without rushing.", dayCount(days)))
	return strings.Join(out, " ")
}

func dayCount(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// Alternatives returns nearby options for destination, or a default pair when
// the destination is unknown or blank.
func Alternatives(destination string, total int64) []Alternative {
	names, ok := alternativesByDestination[destination]
	if !ok {
		names = defaultAlternatives
	}
	out := make([]Alternative, 0, len(names))
	for _, name := range names {
		out = append(out, Alternative{
			Destination: name,
			Reason:      fmt.Sprintf("Similar experience that also fits a %s budget.", types.INR(total)),
		})
	}
	return out
}
