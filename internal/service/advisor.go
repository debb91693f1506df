// README: Advisor orchestrates catalog gathering, event evaluation and transport scoring.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tripsense/internal/logger"
	"tripsense/internal/metrics"
	"tripsense/internal/modules/catalog"
	"tripsense/internal/modules/events"
	"tripsense/internal/modules/intent"
	"tripsense/internal/modules/planner"
	"tripsense/internal/modules/transport"
)

// Gatherer is the part of catalog.Service the advisor needs.
type Gatherer interface {
	Gather(ctx context.Context, destination string) (catalog.Snapshot, error)
}

// Advice is a recommendation together with the event impact that shaped it.
type Advice struct {
	Recommendation transport.Recommendation `json:"recommendation"`
	Events         events.Impact            `json:"events"`
}

// TripAdvice is the text-to-plan pipeline output.
type TripAdvice struct {
	Intent intent.TravelIntent `json:"intent"`
	Plan   planner.TripPlan    `json:"plan"`
	// Transport is nil when the intent names no destination or the
	// recommendation failed; TransportError then says why.
	Transport      *Advice `json:"transport,omitempty"`
	TransportError string  `json:"transportError,omitempty"`
}

type Advisor struct {
	catalog Gatherer
}

func NewAdvisor(g Gatherer) *Advisor {
	return &Advisor{catalog: g}
}

// Recommend gathers candidates and events for destination, evaluates the events
// and ranks the candidates.
func (a *Advisor) Recommend(ctx context.Context, destination string) (Advice, error) {
	destination = strings.TrimSpace(destination)

	snap, err := a.catalog.Gather(ctx, destination)
	if err != nil {
		return Advice{}, err
	}

	impact := events.Evaluate(snap.Events, destination)
	rec, err := transport.Recommend(snap.Options, impact)
	if err != nil {
		return Advice{}, fmt.Errorf("recommend transport to %q: %w", destination, err)
	}

	metrics.RecommendationsTotal.WithLabelValues(string(rec.Winner.Key)).Inc()
	if impact.HasEvents() {
		metrics.EventAffectedTotal.Inc()
	}
	logger.Info(ctx, "transport recommended",
		"destination", destination,
		"winner", rec.Winner.Key,
		"final_score", rec.Winner.FinalScore,
		"events", len(impact.EventSummary),
	)
	return Advice{Recommendation: rec, Events: impact}, nil
}

// PlanTrip runs the whole pipeline for a free-text request: parse, plan, and
// when a destination was recognised, recommend transport to it. A failed
// recommendation leaves the plan intact and is reported in TransportError;
// only an out-of-range duration or a cancelled/expired ctx fails the call.
func (a *Advisor) PlanTrip(ctx context.Context, query string) (TripAdvice, error) {
	in := intent.Parse(query)
	if err := planner.ValidateDuration(in); err != nil {
		return TripAdvice{}, err
	}

	out := TripAdvice{Intent: in, Plan: planner.Build(in)}
	if in.Destination == nil {
		return out, nil
	}

	advice, err := a.Recommend(ctx, *in.Destination)
	switch {
	case err == nil:
		out.Transport = &advice
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return TripAdvice{}, err
	default:
		logger.Warn(ctx, "trip planned without transport", "destination", *in.Destination, "error", err.Error())
		out.TransportError = transportErrorText(err)
	}
	return out, nil
}

func transportErrorText(err error) string {
	switch {
	case errors.Is(err, transport.ErrNoOptions):
		return "no transport options available for this destination"
	case errors.Is(err, catalog.ErrSourceUnavailable):
		return "catalog unavailable"
	default:
		return "transport recommendation failed"
	}
}
