// README: API server; wires middleware and routes onto a gin engine.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripsense/internal/http/handlers"
	"tripsense/internal/http/middleware"
	"tripsense/internal/modules/intent"
	"tripsense/internal/modules/planner"
)

type ServerDeps struct {
	Intent  *intent.Service
	Planner *planner.Service
	Advisor handlers.Advisor

	CORSOrigins  []string
	FetchTimeout time.Duration
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

// Routes builds the engine. Recovery runs inside RequestID so panics are
// logged with the request id.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logging(),
		middleware.Metrics(),
		middleware.CORS(s.deps.CORSOrigins),
	)

	intentHandler := handlers.NewIntentHandler(s.deps.Intent)
	planHandler := handlers.NewPlanHandler(s.deps.Planner)
	advisorHandler := handlers.NewAdvisorHandler(s.deps.Advisor, s.deps.FetchTimeout)

	api := r.Group("/api")
	api.POST("/intent", intentHandler.Parse)
	api.POST("/plan", planHandler.Build)
	api.POST("/recommend", advisorHandler.Recommend)
	api.POST("/trip", advisorHandler.Trip)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
