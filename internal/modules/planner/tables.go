// README: Fixed activity lists and destination alternatives.
package planner

import "tripsense/internal/modules/intent"

var baseActivities = []string{
	"Local sightseeing",
	"Explore nearby attractions",
	"Relax and enjoy local food",
}

const (
	arrivalActivity  = "Arrival & hotel check-in"
	souvenirActivity = "Souvenir shopping"
)

// extraActivity is appended to every day for the matching travel type.
var extraActivity = map[intent.TravelType]string{
	intent.TravelAdventure: "Light adventure activity",
	intent.TravelFamily:    "Family-friendly outing",
}

var alternativesByDestination = map[string][]string{
	"Goa":       {"Gokarna", "Varkala"},
	"Manali":    {"Kasol", "Shimla"},
	"Jaipur":    {"Udaipur", "Jodhpur"},
	"Rishikesh": {"Haridwar", "Mussoorie"},
	"Kerala":    {"Munnar", "Alleppey"},
	"Shimla":    {"Manali", "Kasauli"},
}

var defaultAlternatives = []string{"Udaipur", "Rishikesh"}

var travelTypeReason = map[intent.TravelType]string{
	intent.TravelLeisure:   "The pace is kept easy with plenty of unstructured time for a relaxed trip.",
	intent.TravelAdventure: "Each day includes a light adventure activity to match your interest in adventure.",
	intent.TravelFamily:    "Each day includes a family-friendly outing so everyone stays engaged.",
}
