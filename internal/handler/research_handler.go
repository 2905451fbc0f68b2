package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleveque/research-service/internal/middleware"
	"github.com/fleveque/research-service/internal/model"
	"github.com/fleveque/research-service/internal/research"
)

// ResearchHandler serves the company, person and market research endpoints.
// All three share one pipeline; only the request kind differs.
type ResearchHandler struct {
	service *research.Service
	logger  *zap.Logger
}

// NewResearchHandler creates a new ResearchHandler.
func NewResearchHandler(service *research.Service, logger *zap.Logger) *ResearchHandler {
	return &ResearchHandler{
		service: service,
		logger:  logger,
	}
}

// Company handles POST /company-research with {"company": "..."}.
func (h *ResearchHandler) Company(c *gin.Context) { h.handle(c, model.KindCompany) }

// Person handles POST /person-research with {"person": "...", "company": "..."}.
func (h *ResearchHandler) Person(c *gin.Context) { h.handle(c, model.KindPerson) }

// Market handles POST /market-research with {"market": "..."}.
func (h *ResearchHandler) Market(c *gin.Context) { h.handle(c, model.KindMarket) }

func (h *ResearchHandler) handle(c *gin.Context, kind model.Kind) {
	req, err := model.ParseRequest(kind, decodeObject(c))
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	// The model call is not tied to the client connection: once started it
	// runs to completion or failure even if the caller goes away.
	ctx := context.WithoutCancel(c.Request.Context())

	result, err := h.service.Research(ctx, req)
	if err != nil {
		h.logger.Error("research failed",
			zap.String("kind", string(kind)),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.NewResponse(req, result))
}

// decodeObject reads the body as a JSON object. A missing body, invalid JSON
// or any non-object value yields nil, which validation reports as a missing
// field rather than a parse error.
func decodeObject(c *gin.Context) map[string]any {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		return nil
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}
	return fields
}
