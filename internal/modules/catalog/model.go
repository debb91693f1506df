// README: Catalog of transport options and regional events feeding the scorer.
package catalog

import (
	"context"
	"errors"

	"tripsense/internal/modules/events"
	"tripsense/internal/modules/transport"
	"tripsense/internal/types"
)

var (
	// ErrSourceUnavailable wraps any failure reaching a backing source.
	ErrSourceUnavailable = errors.New("catalog source unavailable")
	ErrUnknownMode       = errors.New("unknown transport mode")
)

// Source supplies candidates per mode and the known regional events. Sources
// are not keyed by destination: every destination sees the same options, and
// the event list is filtered for relevance by the events evaluator.
type Source interface {
	ListOptions(ctx context.Context, mode types.Mode) ([]transport.Option, error)
	ListEvents(ctx context.Context) ([]events.Record, error)
}

// Snapshot is one gathered view of the catalog for a destination.
type Snapshot struct {
	Destination string             `json:"destination"`
	Options     []transport.Option `json:"options"`
	Events      []events.Record    `json:"events"`
}
