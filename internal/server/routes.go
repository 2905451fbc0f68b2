// Package server configures the HTTP server and routes.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleveque/research-service/internal/config"
	"github.com/fleveque/research-service/internal/handler"
	"github.com/fleveque/research-service/internal/llm"
	"github.com/fleveque/research-service/internal/middleware"
	"github.com/fleveque/research-service/internal/model"
	"github.com/fleveque/research-service/internal/research"
)

// Deps holds what the handlers need. Built once in main and passed in.
type Deps struct {
	LLM      llm.Client
	Research *research.Service
}

// RegisterRoutes sets up all HTTP routes on the Gin engine.
// In Go, we pass dependencies explicitly — no DI container, no magic.
// Each handler gets exactly the dependencies it needs.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps, logger *zap.Logger) {
	healthHandler := handler.NewHealthHandler(deps.LLM)
	researchHandler := handler.NewResearchHandler(deps.Research, logger)

	// Public endpoints
	r.GET("/healthz", healthHandler.Healthz)

	// The research endpoints accept any method. OPTIONS is answered by the
	// CORS middleware, everything else goes through validation.
	api := r.Group("")
	api.Use(middleware.CORS(cfg.CORS))
	{
		api.Any("/company-research", researchHandler.Company)
		api.Any("/person-research", researchHandler.Person)
		api.Any("/market-research", researchHandler.Market)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not found"})
	})
}
