package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"iri-guide/backend/internal/features/fonts/application"
	"iri-guide/backend/internal/features/fonts/domain"
	shared_http "iri-guide/backend/internal/features/shared/presentation/http"
	"iri-guide/backend/internal/validation"
)

// FontHandler holds the font service.
type FontHandler struct {
	fontService application.FontService
	strict      bool
}

// NewFontHandler creates a new FontHandler.
func NewFontHandler(fontService application.FontService, strict bool) *FontHandler {
	return &FontHandler{
		fontService: fontService,
		strict:      strict,
	}
}

// RecommendFontsHandler handles the request for a font pairing.
// CORS headers and preflight requests are handled by middleware.CORS.
func (h *FontHandler) RecommendFontsHandler(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
		return
	}

	// Any JSON object decodes; mistyped fields keep their text.
	var req domain.FontRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.strict {
			shared_http.WriteBadRequest(c, &validation.MalformedBodyError{Err: err})
			return
		}
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("unreadable font request, serving fallback")
		shared_http.WriteRecommendation(c, h.fontService.Fallback(""))
		return
	}

	if h.strict {
		if err := validation.Struct(req); err != nil {
			shared_http.WriteBadRequest(c, err)
			return
		}
	}

	shared_http.WriteRecommendation(c, h.fontService.RecommendFonts(c.Request.Context(), req))
}
