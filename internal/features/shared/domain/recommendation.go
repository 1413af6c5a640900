package domain

import "encoding/json"

// Source tells whether a recommendation came from the model or from a fallback table.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// HeaderSource carries the Source of a recommendation response.
const HeaderSource = "X-Recommendation-Source"

// Recommendation is a serialized response body together with its origin.
type Recommendation struct {
	Body   json.RawMessage
	Source Source
}
