// README: Severity and category rule tables for event penalties.
package events

import "tripsense/internal/types"

// severityBase maps severity to the base penalty; anything unlisted scores defaultSeverityBase.
var severityBase = map[Severity]float64{
	SeverityHigh:   30,
	SeverityMedium: 15,
	SeverityLow:    5,
}

const defaultSeverityBase = 5

// modePenalty adds base*Scale + Bonus to one mode.
type modePenalty struct {
	Mode  types.Mode
	Scale float64
	Bonus float64
}

func (p modePenalty) apply(base float64) float64 {
	return base*p.Scale + p.Bonus
}

// categoryRules encodes which modes a gathering disrupts. Train never appears:
// rail is treated as the least exposed to road and air congestion.
var categoryRules = map[Category][]modePenalty{
	CategoryMusic: {
		{Mode: types.ModeCab, Scale: 1, Bonus: 10},
		{Mode: types.ModeFlight, Scale: 0.5},
	},
	CategorySports: {
		{Mode: types.ModeFlight, Scale: 1, Bonus: 15},
		{Mode: types.ModeCab, Scale: 1},
		{Mode: types.ModeBus, Scale: 1},
	},
	CategoryReligious: {
		{Mode: types.ModeCab, Scale: 1, Bonus: 20},
		{Mode: types.ModeBus, Scale: 1, Bonus: 10},
	},
	CategoryCulture: {
		{Mode: types.ModeCab, Scale: 0.5},
	},
}

func baseFor(s Severity) float64 {
	if v, ok := severityBase[s]; ok {
		return v
	}
	return defaultSeverityBase
}
