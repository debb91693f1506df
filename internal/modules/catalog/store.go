// README: Catalog source backed by PostgreSQL.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripsense/internal/modules/events"
	"tripsense/internal/modules/transport"
	"tripsense/internal/types"
)

// Store reads transport_options and regional_events.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ListOptions returns the mode's options, cheapest first.
func (s *Store) ListOptions(ctx context.Context, mode types.Mode) ([]transport.Option, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("list options for %q: %w", mode, ErrUnknownMode)
	}

	rows, err := s.db.Query(ctx, `
		SELECT mode, label, price, duration, eta_minutes
		FROM transport_options
		WHERE mode = $1
		ORDER BY price, id`, string(mode),
	)
	if err != nil {
		return nil, fmt.Errorf("list %s options: %w: %w", mode, ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var out []transport.Option
	for rows.Next() {
		var (
			o        transport.Option
			duration *string
			eta      *int
		)
		if err := rows.Scan(&o.Key, &o.Label, &o.Price, &duration, &eta); err != nil {
			return nil, fmt.Errorf("scan %s option: %w: %w", mode, ErrSourceUnavailable, err)
		}
		if duration != nil {
			o.Duration = *duration
		}
		o.ETAMinutes = eta
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s options: %w: %w", mode, ErrSourceUnavailable, err)
	}
	return out, nil
}

// ListEvents returns every known event in insertion order.
func (s *Store) ListEvents(ctx context.Context) ([]events.Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT title, location, event_date, category, severity, impact, recommended_action
		FROM regional_events
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w: %w", ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var out []events.Record
	for rows.Next() {
		var r events.Record
		if err := rows.Scan(&r.Title, &r.Location, &r.Date, &r.Category, &r.Severity, &r.Impact, &r.RecommendedAction); err != nil {
			return nil, fmt.Errorf("scan event: %w: %w", ErrSourceUnavailable, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w: %w", ErrSourceUnavailable, err)
	}
	return out, nil
}

// Replace swaps the whole catalog for snap in one transaction.
func (s *Store) Replace(ctx context.Context, snap Snapshot) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		b := &pgx.Batch{}
		b.Queue(`DELETE FROM transport_options`)
		b.Queue(`DELETE FROM regional_events`)
		for _, o := range snap.Options {
			if !o.Key.Valid() {
				return fmt.Errorf("replace option %q: %w", o.Label, ErrUnknownMode)
			}
			b.Queue(`
				INSERT INTO transport_options (mode, label, price, duration, eta_minutes)
				VALUES ($1, $2, $3, NULLIF($4, ''), $5)`,
				string(o.Key), o.Label, o.Price, o.Duration, o.ETAMinutes,
			)
		}
		for _, r := range snap.Events {
			b.Queue(`
				INSERT INTO regional_events (title, location, event_date, category, severity, impact, recommended_action)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				r.Title, r.Location, r.Date, string(r.Category), string(r.Severity), r.Impact, r.RecommendedAction,
			)
		}
		return tx.SendBatch(ctx, b).Close()
	})
}
