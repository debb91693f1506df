// README: Fixed keyword tables the intent parser matches against.
package intent

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// destinations is ordered by priority: the first entry found in the text wins.
var destinations = []string{
	"goa",
	"manali",
	"shimla",
	"jaipur",
	"udaipur",
	"rishikesh",
	"kerala",
	"munnar",
	"ooty",
	"coorg",
	"darjeeling",
	"ladakh",
	"gokarna",
	"varkala",
	"pondicherry",
	"varanasi",
	"agra",
	"mumbai",
	"delhi",
}

var months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

type travelTypeRule struct {
	keyword string
	value   TravelType
}

// travelTypeRules are applied in order; a later hit overwrites an earlier one.
var travelTypeRules = []travelTypeRule{
	{keyword: "family", value: TravelFamily},
	{keyword: "adventure", value: TravelAdventure},
	{keyword: "relax", value: TravelLeisure},
	{keyword: "peaceful", value: TravelLeisure},
}

// Confidence contributed by each recognised signal.
const (
	weightDestination = 0.2
	weightBudget      = 0.2
	weightWeekend     = 0.1
	weightDayCount    = 0.15
	weightMonth       = 0.1
	weightNextMonth   = 0.05
	weightTravelType  = 0.05
)

const weekendDays = 2

var (
	budgetPattern   = regexp.MustCompile(`(?:under|below)\s*(?:₹|rs\.?|inr)?\s*(\d[\d,]*)\s*(k)?\b`)
	dayCountPattern = regexp.MustCompile(`(\d+)\s*(?:days?\b|n\b)`)
)

// titleCase builds a fresh Caser per call; Casers are stateful and must not be shared.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
