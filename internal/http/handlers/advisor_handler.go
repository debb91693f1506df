// README: Advisor handlers; transport recommendation and the full text-to-trip pipeline.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripsense/internal/service"
)

// Advisor is the orchestration surface the handlers call.
type Advisor interface {
	Recommend(ctx context.Context, destination string) (service.Advice, error)
	PlanTrip(ctx context.Context, query string) (service.TripAdvice, error)
}

type AdvisorHandler struct {
	advisor Advisor
	timeout time.Duration
}

func NewAdvisorHandler(advisor Advisor, timeout time.Duration) *AdvisorHandler {
	return &AdvisorHandler{advisor: advisor, timeout: timeout}
}

type recommendReq struct {
	Destination string `json:"destination"`
}

type tripReq struct {
	Query string `json:"query"`
}

// Recommend handles POST /api/recommend.
func (h *AdvisorHandler) Recommend(c *gin.Context) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	advice, err := h.advisor.Recommend(ctx, req.Destination)
	if err != nil {
		writeAdviceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"success":        true,
		"recommendation": advice.Recommendation,
		"events":         advice.Events,
	})
}

// Trip handles POST /api/trip.
func (h *AdvisorHandler) Trip(c *gin.Context) {
	var req tripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "query must be a string")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	trip, err := h.advisor.PlanTrip(ctx, req.Query)
	if err != nil {
		writeAdviceError(c, err)
		return
	}
	writeOK(c, "trip", trip)
}
