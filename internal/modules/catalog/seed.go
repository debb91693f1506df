// README: Catalog source backed by the embedded YAML seed.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"tripsense/internal/modules/events"
	"tripsense/internal/modules/transport"
	"tripsense/internal/types"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Options map[types.Mode][]transport.Option `yaml:"options"`
	Events  []events.Record                   `yaml:"events"`
}

// SeedSource serves a fixed catalog loaded once at construction. It is safe for
// concurrent use because nothing mutates it afterwards. The seed is a single
// Goa-oriented option set returned for every destination; only the events are
// per-destination, and those are matched later by the events evaluator.
type SeedSource struct {
	options map[types.Mode][]transport.Option
	events  []events.Record
}

// NewSeedSource loads the embedded seed catalog.
func NewSeedSource() (*SeedSource, error) {
	return ParseSeed(seedYAML)
}

// ParseSeed builds a SeedSource from YAML. Option keys are filled from their
// section, so entries need not repeat the mode.
func ParseSeed(data []byte) (*SeedSource, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	opts := make(map[types.Mode][]transport.Option, len(f.Options))
	for mode, list := range f.Options {
		if !mode.Valid() {
			return nil, fmt.Errorf("seed section %q: %w", mode, ErrUnknownMode)
		}
		for i := range list {
			list[i].Key = mode
		}
		opts[mode] = list
	}
	return &SeedSource{options: opts, events: f.Events}, nil
}

func (s *SeedSource) ListOptions(_ context.Context, mode types.Mode) ([]transport.Option, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("list options for %q: %w", mode, ErrUnknownMode)
	}
	return slices.Clone(s.options[mode]), nil
}

func (s *SeedSource) ListEvents(_ context.Context) ([]events.Record, error) {
	return slices.Clone(s.events), nil
}

// Snapshot returns every option and event in the seed, modes in canonical order.
func (s *SeedSource) Snapshot() Snapshot {
	var out Snapshot
	for _, m := range types.Modes {
		out.Options = append(out.Options, s.options[m]...)
	}
	out.Events = slices.Clone(s.events)
	return out
}
