// README: Transport modes shared by the catalog, event evaluator and scorer.
package types

type Mode string

const (
	ModeFlight Mode = "flight"
	ModeTrain  Mode = "train"
	ModeBus    Mode = "bus"
	ModeCab    Mode = "cab"
)

// Modes lists every mode in the order options are gathered and reported.
var Modes = []Mode{ModeFlight, ModeTrain, ModeBus, ModeCab}

func (m Mode) Valid() bool {
	switch m {
	case ModeFlight, ModeTrain, ModeBus, ModeCab:
		return true
	}
	return false
}
