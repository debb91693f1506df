// README: Offline demo; runs the full pipeline for a query against the seed catalog.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"tripsense/internal/logger"
	"tripsense/internal/modules/catalog"
	"tripsense/internal/service"
)

const defaultQuery = "Weekend trip to Goa under 15k in December, something relaxing"

func main() {
	logger.Init("warn", "text")

	query := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if query == "" {
		query = defaultQuery
	}

	seed, err := catalog.NewSeedSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load seed catalog: %v\n", err)
		os.Exit(1)
	}

	trip, err := service.NewAdvisor(catalog.NewService(seed)).PlanTrip(context.Background(), query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plan trip: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Query: %s\n\n", query)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(trip); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}

	switch {
	case trip.Transport != nil:
		fmt.Printf("\n%s\n", trip.Transport.Recommendation.Explanation)
	case trip.TransportError != "":
		fmt.Printf("\ntransport: %s\n", trip.TransportError)
	}
}
