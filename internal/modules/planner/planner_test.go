// README: Plan reasoner tests (defaults, split, itinerary positions, alternatives).
package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsense/internal/modules/intent"
)

func ptr[T any](v T) *T { return &v }

func TestBuild_DefaultsForEmptyIntent(t *testing.T) {
	plan := Build(intent.TravelIntent{})

	assert.Nil(t, plan.Destination)
	assert.Equal(t, DefaultDurationDays, plan.Duration)
	assert.Equal(t, int64(DefaultBudget), plan.TotalBudget)
	assert.Equal(t, BudgetSplit{Stay: 6750, Travel: 5250, Food: 3000}, plan.BudgetSplit)
	require.Len(t, plan.Itinerary, 3)
	assert.Equal(t, "Day 1", plan.Itinerary[0].Title)

	require.Len(t, plan.Alternatives, 2)
	assert.Equal(t, "Udaipur", plan.Alternatives[0].Destination)
	assert.Equal(t, "Rishikesh", plan.Alternatives[1].Destination)
}

func TestBuild_NonPositiveValuesFallBackToDefaults(t *testing.T) {
	plan := Build(intent.TravelIntent{
		Duration: ptr(0),
		Budget:   intent.Budget{Max: ptr(int64(-500))},
	})
	assert.Equal(t, DefaultDurationDays, plan.Duration)
	assert.Equal(t, int64(DefaultBudget), plan.TotalBudget)
}

func TestBuild_LongTripsCappedAtMaxDuration(t *testing.T) {
	plan := Build(intent.TravelIntent{Duration: ptr(100000000)})
	assert.Equal(t, MaxDurationDays, plan.Duration)
	assert.Len(t, plan.Itinerary, MaxDurationDays)
}

func TestValidateDuration(t *testing.T) {
	cases := []struct {
		duration *int
		wantErr  bool
	}{
		{nil, false},
		{ptr(1), false},
		{ptr(MaxDurationDays), false},
		{ptr(0), true},
		{ptr(-2), true},
		{ptr(MaxDurationDays + 1), true},
		{ptr(100000000), true},
	}
	for _, tc := range cases {
		err := ValidateDuration(intent.TravelIntent{Duration: tc.duration})
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrDurationOutOfRange)
		} else {
			assert.NoError(t, err)
		}
	}
}

func TestSplit_IndependentRounding(t *testing.T) {
	cases := []struct {
		total int64
		want  BudgetSplit
	}{
		{15000, BudgetSplit{6750, 5250, 3000}},
		{10001, BudgetSplit{4500, 3500, 2000}},
		{1, BudgetSplit{0, 0, 0}},
		{3, BudgetSplit{1, 1, 1}},
	}
	for _, tc := range cases {
		got := Split(tc.total)
		assert.Equal(t, tc.want, got, "total %d", tc.total)
		sum := got.Stay + got.Travel + got.Food
		assert.InDelta(t, tc.total, sum, 1, "total %d", tc.total)
	}
}

func TestBuild_ItineraryLengthMatchesDuration(t *testing.T) {
	for _, days := range []int{1, 2, 3, 7} {
		plan := Build(intent.TravelIntent{Duration: ptr(days)})
		require.Len(t, plan.Itinerary, days)
		for i, d := range plan.Itinerary {
			assert.Equal(t, i+1, d.Day)
		}
	}
}

func TestBuild_ArrivalOnlyOnDayOne(t *testing.T) {
	plan := Build(intent.TravelIntent{Destination: ptr("Goa"), Duration: ptr(4)})

	assert.Equal(t, []string{
		"Arrival & hotel check-in",
		"Local sightseeing",
		"Explore nearby attractions",
		"Relax and enjoy local food",
	}, plan.Itinerary[0].Activities)
	assert.Equal(t, "Day 1 in Goa", plan.Itinerary[0].Title)

	for _, d := range plan.Itinerary[1:] {
		assert.NotContains(t, d.Activities, "Arrival & hotel check-in")
	}
}

// Souvenir shopping is pinned to day 3 regardless of trip length.
func TestBuild_SouvenirShoppingIsPinnedToDayThree(t *testing.T) {
	t.Run("two day trip never gets it", func(t *testing.T) {
		plan := Build(intent.TravelIntent{Duration: ptr(2)})
		for _, d := range plan.Itinerary {
			assert.NotContains(t, d.Activities, "Souvenir shopping")
		}
	})

	t.Run("five day trip gets it on day 3 only", func(t *testing.T) {
		plan := Build(intent.TravelIntent{Duration: ptr(5)})
		for _, d := range plan.Itinerary {
			if d.Day == 3 {
				assert.Equal(t, "Souvenir shopping", d.Activities[len(d.Activities)-1])
			} else {
				assert.NotContains(t, d.Activities, "Souvenir shopping")
			}
		}
	})
}

func TestBuild_TravelTypeExtras(t *testing.T) {
	cases := []struct {
		travelType intent.TravelType
		extra      string
	}{
		{intent.TravelAdventure, "Light adventure activity"},
		{intent.TravelFamily, "Family-friendly outing"},
	}
	for _, tc := range cases {
		t.Run(string(tc.travelType), func(t *testing.T) {
			plan := Build(intent.TravelIntent{TravelType: ptr(tc.travelType), Duration: ptr(3)})
			for _, d := range plan.Itinerary {
				assert.Contains(t, d.Activities, tc.extra)
			}
			// day 3: base, extra, souvenir
			assert.Equal(t, []string{
				"Local sightseeing",
				"Explore nearby attractions",
				"Relax and enjoy local food",
				tc.extra,
				"Souvenir shopping",
			}, plan.Itinerary[2].Activities)
		})
	}

	plan := Build(intent.TravelIntent{TravelType: ptr(intent.TravelLeisure), Duration: ptr(2)})
	assert.Len(t, plan.Itinerary[1].Activities, 3)
}

func TestBuild_WhyThisPlan(t *testing.T) {
	t.Run("budget sentence only when constraint recorded", func(t *testing.T) {
		withBudget := Build(intent.TravelIntent{
			Destination: ptr("Manali"),
			Budget:      intent.Budget{Max: ptr(int64(20000))},
			Constraints: []string{intent.ConstraintBudget},
		})
		assert.Contains(t, withBudget.WhyThisPlan, "Manali matches the destination")
		assert.Contains(t, withBudget.WhyThisPlan, "₹20,000 budget")

		noTag := Build(intent.TravelIntent{Budget: intent.Budget{Max: ptr(int64(20000))}})
		assert.NotContains(t, noTag.WhyThisPlan, "budget")
	})

	t.Run("travel type sentence", func(t *testing.T) {
		plan := Build(intent.TravelIntent{TravelType: ptr(intent.TravelFamily)})
		assert.Contains(t, plan.WhyThisPlan, "family-friendly outing")
	})

	t.Run("closing sentence always present", func(t *testing.T) {
		assert.Contains(t, Build(intent.TravelIntent{}).WhyThisPlan, "spans 3 days")
		assert.Contains(t, Build(intent.TravelIntent{Duration: ptr(1)}).WhyThisPlan, "spans 1 day ")
		assert.NotContains(t, Build(intent.TravelIntent{}).WhyThisPlan, "matches the destination")
	})
}

func TestAlternatives(t *testing.T) {
	alts := Alternatives("Goa", 12000)
	require.Len(t, alts, 2)
	assert.Equal(t, "Gokarna", alts[0].Destination)
	assert.Equal(t, "Varkala", alts[1].Destination)
	for _, a := range alts {
		assert.Contains(t, a.Reason, "₹12,000")
	}

	assert.Equal(t, "Kasol", Alternatives("Manali", 1)[0].Destination)
	assert.Equal(t, "Udaipur", Alternatives("Agra", 1)[0].Destination)
	assert.Equal(t, "Udaipur", Alternatives("", 1)[0].Destination)
}

func TestBuild_FromParsedIntent(t *testing.T) {
	in := intent.Parse("Family trip to Goa for 4 days under 40k in December")
	plan := Build(in)

	require.NotNil(t, plan.Destination)
	assert.Equal(t, "Goa", *plan.Destination)
	assert.Equal(t, 4, plan.Duration)
	assert.Equal(t, int64(40000), plan.TotalBudget)
	assert.Contains(t, plan.Itinerary[0].Activities, "Family-friendly outing")
	assert.Contains(t, plan.WhyThisPlan, "₹40,000")
}
