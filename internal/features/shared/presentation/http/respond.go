package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	shared "iri-guide/backend/internal/features/shared/domain"
	"iri-guide/backend/internal/validation"
)

// WriteRecommendation writes the recommendation body as-is with its source header.
func WriteRecommendation(c *gin.Context, rec shared.Recommendation) {
	c.Header(shared.HeaderSource, string(rec.Source))
	c.Data(http.StatusOK, "application/json; charset=utf-8", rec.Body)
}

// WriteBadRequest rejects a request in strict mode. Missing fields are listed
// under "fields".
func WriteBadRequest(c *gin.Context, err error) {
	resp := gin.H{"error": err.Error()}
	var missing *validation.MissingFieldsError
	if errors.As(err, &missing) {
		resp["fields"] = missing.Fields
	}
	c.JSON(http.StatusBadRequest, resp)
}
