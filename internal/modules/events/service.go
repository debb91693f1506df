// README: Event impact evaluator; maps relevant events to per-mode penalties.
package events

import "strings"

// Service exposes Evaluate to callers that hold a service value.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Evaluate(records []Record, destination string) Impact {
	return Evaluate(records, destination)
}

// Evaluate filters records by a case-insensitive location match against destination
// and accumulates penalties across every relevant event.
func Evaluate(records []Record, destination string) Impact {
	impact := Impact{Penalties: zeroPenalties()}

	relevant := Relevant(records, destination)
	if len(relevant) == 0 {
		return impact
	}

	impact.EventSummary = make([]Summary, 0, len(relevant))
	for _, ev := range relevant {
		severity := Severity(strings.ToLower(string(ev.Severity)))
		base := baseFor(severity)
		for _, rule := range categoryRules[Category(strings.ToLower(string(ev.Category)))] {
			impact.Penalties[rule.Mode] += rule.apply(base)
		}
		impact.EventSummary = append(impact.EventSummary, Summary{
			Title:          ev.Title,
			Impact:         ev.Impact,
			Recommendation: ev.RecommendedAction,
			Severity:       ev.Severity,
		})
	}
	return impact
}

// Relevant returns the records whose location contains destination, in input order.
// The match is loose: "Goa" matches "Vagator, Goa". A blank destination
// matches nothing.
func Relevant(records []Record, destination string) []Record {
	needle := strings.ToLower(strings.TrimSpace(destination))
	if needle == "" {
		return nil
	}
	var out []Record
	for _, ev := range records {
		if strings.Contains(strings.ToLower(ev.Location), needle) {
			out = append(out, ev)
		}
	}
	return out
}
