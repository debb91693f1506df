// README: Plan handler; builds a trip plan from a structured intent.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsense/internal/modules/intent"
	"tripsense/internal/modules/planner"
)

type PlanHandler struct {
	planner *planner.Service
}

func NewPlanHandler(svc *planner.Service) *PlanHandler {
	return &PlanHandler{planner: svc}
}

type buildPlanReq struct {
	Intent json.RawMessage `json:"intent"`
}

// Build handles POST /api/plan.
func (h *PlanHandler) Build(c *gin.Context) {
	var req buildPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	raw := bytes.TrimSpace(req.Intent)
	if len(raw) == 0 || raw[0] != '{' {
		writeError(c, http.StatusBadRequest, "intent must be an object")
		return
	}

	var in intent.TravelIntent
	if err := json.Unmarshal(raw, &in); err != nil {
		writeError(c, http.StatusBadRequest, "intent has invalid fields")
		return
	}
	if err := planner.ValidateDuration(in); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	writeOK(c, "plan", h.planner.Build(in))
}
