package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"iri-guide/backend/internal/features/config/domain"
)

// ModelConfigHandler serves the model config the services were built with.
type ModelConfigHandler struct {
	modelConfig *domain.ModelConfig
}

// NewModelConfigHandler creates a new ModelConfigHandler.
func NewModelConfigHandler(modelConfig *domain.ModelConfig) *ModelConfigHandler {
	return &ModelConfigHandler{
		modelConfig: modelConfig,
	}
}

// GetModelConfigHandler returns the model parameters the recommendation endpoints use.
func (h *ModelConfigHandler) GetModelConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.modelConfig)
}
