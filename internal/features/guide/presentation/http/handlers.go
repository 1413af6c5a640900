package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"

	"iri-guide/backend/internal/features/guide/application"
	"iri-guide/backend/internal/features/guide/domain"
	shared "iri-guide/backend/internal/features/shared/domain"
	shared_http "iri-guide/backend/internal/features/shared/presentation/http"
	"iri-guide/backend/internal/validation"
)

// GuideHandler holds the guide service.
type GuideHandler struct {
	guideService application.GuideService
	strict       bool
}

// NewGuideHandler creates a new GuideHandler. With strict set, requests with
// missing fields are rejected with 400 instead of degrading to a fallback.
func NewGuideHandler(guideService application.GuideService, strict bool) *GuideHandler {
	return &GuideHandler{
		guideService: guideService,
		strict:       strict,
	}
}

// GenerateGuideHandler handles the request to generate a color and typography guide.
func (h *GuideHandler) GenerateGuideHandler(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method Not Allowed"})
		return
	}

	var req domain.GuideRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		if h.strict {
			shared_http.WriteBadRequest(c, &validation.MalformedBodyError{Err: err})
			return
		}
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("unreadable guide request, serving fallback")
		shared_http.WriteRecommendation(c, h.guideService.Fallback(primaryColorOf(c)))
		return
	}

	if h.strict {
		if err := validation.Struct(req); err != nil {
			shared_http.WriteBadRequest(c, err)
			return
		}
	}

	shared_http.WriteRecommendation(c, h.guideService.GenerateGuide(c.Request.Context(), req.Context, req.KnowledgeBase))
}

// primaryColorOf reads only context.primaryColor from a body the full decode
// rejected, e.g. one with a malformed knowledge base.
func primaryColorOf(c *gin.Context) string {
	var partial struct {
		Context struct {
			PrimaryColor shared.Text `json:"primaryColor"`
		} `json:"context"`
	}
	if err := c.ShouldBindBodyWith(&partial, binding.JSON); err != nil {
		return ""
	}
	return string(partial.Context.PrimaryColor)
}
