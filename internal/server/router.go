package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	configdomain "iri-guide/backend/internal/features/config/domain"
	config_http "iri-guide/backend/internal/features/config/presentation/http"
	fonts_application "iri-guide/backend/internal/features/fonts/application"
	fonts_http "iri-guide/backend/internal/features/fonts/presentation/http"
	guide_application "iri-guide/backend/internal/features/guide/application"
	guide_http "iri-guide/backend/internal/features/guide/presentation/http"
	"iri-guide/backend/internal/middleware"
)

const (
	apiGuidePath       = "/api/generate-guide"
	apiFontPath        = "/api/font-recommendation"
	functionsGuidePath = "/.netlify/functions/generate-guide"
	functionsFontPath  = "/.netlify/functions/get-font-recommendation"
)

// RouterDeps are the services the HTTP routes are built from.
type RouterDeps struct {
	Logger       zerolog.Logger
	GuideService guide_application.GuideService
	FontService  fonts_application.FontService
	// ModelConfig is the snapshot the services were built with.
	ModelConfig      *configdomain.ModelConfig
	StrictValidation bool
}

// NewRouter builds the gin engine with the shared middleware and all routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(deps.Logger))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	guideHandler := guide_http.NewGuideHandler(deps.GuideService, deps.StrictValidation)
	fontHandler := fonts_http.NewFontHandler(deps.FontService, deps.StrictValidation)

	// Method checks happen in the handlers so the 405 bodies match each endpoint.
	r.Any(apiGuidePath, guideHandler.GenerateGuideHandler)
	r.Any(apiFontPath, middleware.CORS(), fontHandler.RecommendFontsHandler)
	r.GET("/api/config/model", config_http.NewModelConfigHandler(deps.ModelConfig).GetModelConfigHandler)

	// Paths the frontend used when the endpoints were deployed as functions.
	r.Any(functionsGuidePath, guideHandler.GenerateGuideHandler)
	r.Any(functionsFontPath, middleware.CORS(), fontHandler.RecommendFontsHandler)

	// Any only covers the nine standard methods. Other methods on the
	// recommendation paths land here and still get the endpoint's 405.
	r.NoRoute(func(c *gin.Context) {
		switch c.Request.URL.Path {
		case apiGuidePath, functionsGuidePath:
			guideHandler.GenerateGuideHandler(c)
		case apiFontPath, functionsFontPath:
			middleware.SetCORSHeaders(c)
			fontHandler.RecommendFontsHandler(c)
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
		}
	})

	return r
}
