// README: Intent handler; parses a free-text travel request.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripsense/internal/modules/intent"
)

type IntentHandler struct {
	intent *intent.Service
}

func NewIntentHandler(svc *intent.Service) *IntentHandler {
	return &IntentHandler{intent: svc}
}

type parseIntentReq struct {
	// pointer so a missing field is distinguishable from ""
	Query *string `json:"query"`
}

// Parse handles POST /api/intent.
func (h *IntentHandler) Parse(c *gin.Context) {
	var req parseIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "query must be a string")
		return
	}
	if req.Query == nil || strings.TrimSpace(*req.Query) == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}
	writeOK(c, "intent", h.intent.Parse(*req.Query))
}
