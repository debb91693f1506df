// README: Advisor pipeline tests against the seed catalog and a failing gatherer.
package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsense/internal/modules/catalog"
	"tripsense/internal/modules/planner"
	"tripsense/internal/modules/transport"
	"tripsense/internal/types"
)

type stubGatherer struct {
	snap catalog.Snapshot
	err  error
	dest string
}

func (s *stubGatherer) Gather(_ context.Context, destination string) (catalog.Snapshot, error) {
	s.dest = destination
	return s.snap, s.err
}

func seedAdvisor(t *testing.T) *Advisor {
	t.Helper()
	seed, err := catalog.NewSeedSource()
	require.NoError(t, err)
	return NewAdvisor(catalog.NewService(seed))
}

func TestAdvisor_RecommendWithSeedCatalog(t *testing.T) {
	advice, err := seedAdvisor(t).Recommend(context.Background(), "Goa")
	require.NoError(t, err)

	assert.True(t, advice.Events.HasEvents())
	assert.Len(t, advice.Recommendation.Ranked, len(types.Modes))
	assert.Contains(t, advice.Recommendation.Explanation, "Events near your destination")
	// Sunburn (music, high) and Shigmo (culture, medium) both land on cabs.
	assert.Equal(t, 47.5, advice.Events.Penalty(types.ModeCab))
	assert.Equal(t, 0.0, advice.Events.Penalty(types.ModeTrain))
}

func TestAdvisor_RecommendWithoutEvents(t *testing.T) {
	advice, err := seedAdvisor(t).Recommend(context.Background(), "Ooty")
	require.NoError(t, err)

	assert.False(t, advice.Events.HasEvents())
	assert.Nil(t, advice.Events.EventSummary)
	assert.NotContains(t, advice.Recommendation.Explanation, "Events near your destination")
}

func TestAdvisor_TrimsDestination(t *testing.T) {
	g := &stubGatherer{snap: catalog.Snapshot{Options: []transport.Option{{Key: types.ModeBus, Label: "Bus", Price: 1}}}}
	_, err := NewAdvisor(g).Recommend(context.Background(), "  Goa ")
	require.NoError(t, err)
	assert.Equal(t, "Goa", g.dest)
}

func TestAdvisor_NoOptions(t *testing.T) {
	_, err := NewAdvisor(&stubGatherer{}).Recommend(context.Background(), "Goa")
	assert.ErrorIs(t, err, transport.ErrNoOptions)
}

func TestAdvisor_GatherFailurePropagates(t *testing.T) {
	g := &stubGatherer{err: catalog.ErrSourceUnavailable}
	_, err := NewAdvisor(g).Recommend(context.Background(), "Goa")
	assert.ErrorIs(t, err, catalog.ErrSourceUnavailable)
}

func TestAdvisor_PlanTrip(t *testing.T) {
	a := seedAdvisor(t)

	out, err := a.PlanTrip(context.Background(), "Relaxing 4 days in Manali under 25k")
	require.NoError(t, err)
	require.NotNil(t, out.Intent.Destination)
	assert.Equal(t, "Manali", *out.Intent.Destination)
	assert.Equal(t, 4, out.Plan.Duration)
	require.NotNil(t, out.Transport)
	assert.NotEmpty(t, out.Transport.Recommendation.Winner.Label)

	out, err = a.PlanTrip(context.Background(), "somewhere warm")
	require.NoError(t, err)
	assert.Nil(t, out.Transport)
	assert.Equal(t, 3, out.Plan.Duration)
}

func TestAdvisor_PlanTripRejectsOversizedDuration(t *testing.T) {
	g := &stubGatherer{}
	_, err := NewAdvisor(g).PlanTrip(context.Background(), "goa for 100000000 days")
	assert.ErrorIs(t, err, planner.ErrDurationOutOfRange)
	assert.Empty(t, g.dest, "catalog should not be consulted")
}

func TestAdvisor_PlanTripKeepsPlanWhenTransportFails(t *testing.T) {
	cases := []struct {
		name    string
		g       *stubGatherer
		wantMsg string
	}{
		{"no options", &stubGatherer{}, "no transport options available for this destination"},
		{"catalog down", &stubGatherer{err: catalog.ErrSourceUnavailable}, "catalog unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := NewAdvisor(tc.g).PlanTrip(context.Background(), "3 days in goa")
			require.NoError(t, err)
			assert.Nil(t, out.Transport)
			assert.Equal(t, tc.wantMsg, out.TransportError)
			require.NotNil(t, out.Plan.Destination)
			assert.Equal(t, "Goa", *out.Plan.Destination)
			assert.Len(t, out.Plan.Itinerary, 3)
		})
	}
}

func TestAdvisor_PlanTripFailsOnContextErrors(t *testing.T) {
	g := &stubGatherer{err: fmt.Errorf("gather: %w", context.DeadlineExceeded)}
	_, err := NewAdvisor(g).PlanTrip(context.Background(), "3 days in goa")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	g = &stubGatherer{err: context.Canceled}
	_, err = NewAdvisor(g).PlanTrip(context.Background(), "3 days in goa")
	assert.ErrorIs(t, err, context.Canceled)
}
