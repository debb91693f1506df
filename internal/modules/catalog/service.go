// README: Catalog service; gathers one candidate per mode plus events concurrently.
package catalog

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"tripsense/internal/logger"
	"tripsense/internal/metrics"
	"tripsense/internal/modules/events"
	"tripsense/internal/modules/transport"
	"tripsense/internal/types"
)

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Gather fetches every mode and the event list in parallel. The first failing
// fetch cancels the others and fails the whole call. Each mode contributes its
// cheapest option (first on ties); modes with no options are omitted. Options
// are returned in canonical mode order. destination only labels the snapshot
// and the logs; the source is queried the same way for every destination.
func (s *Service) Gather(ctx context.Context, destination string) (Snapshot, error) {
	g, gctx := errgroup.WithContext(ctx)

	perMode := make([][]transport.Option, len(types.Modes))
	for i, mode := range types.Modes {
		g.Go(func() error {
			opts, err := timed(gctx, "options_"+string(mode), func(ctx context.Context) ([]transport.Option, error) {
				return s.source.ListOptions(ctx, mode)
			})
			perMode[i] = opts
			return err
		})
	}

	var records []events.Record
	g.Go(func() error {
		var err error
		records, err = timed(gctx, "events", s.source.ListEvents)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "catalog gather failed", err, "destination", destination)
		return Snapshot{}, fmt.Errorf("gather catalog for %q: %w", destination, err)
	}

	snap := Snapshot{Destination: destination, Events: records}
	for _, opts := range perMode {
		if best, ok := Cheapest(opts); ok {
			snap.Options = append(snap.Options, best)
		}
	}
	return snap, nil
}

// Cheapest returns the lowest-priced option, keeping the earliest on ties.
func Cheapest(opts []transport.Option) (transport.Option, bool) {
	if len(opts) == 0 {
		return transport.Option{}, false
	}
	best := opts[0]
	for _, o := range opts[1:] {
		if o.Price < best.Price {
			best = o
		}
	}
	return best, true
}

func timed[T any](ctx context.Context, resource string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	start := time.Now()
	out, err := fetch(ctx)
	metrics.CatalogFetchDuration.WithLabelValues(resource, metrics.Status(err)).Observe(time.Since(start).Seconds())
	return out, err
}
