package domain

import (
	"encoding/json"

	"github.com/pkg/errors"

	shared "iri-guide/backend/internal/features/shared/domain"
)

// MoodVector holds the two tone sliders. The values are copied into the prompt as sent.
type MoodVector struct {
	Soft   string `json:"soft"`
	Static string `json:"static"`
}

// UnmarshalJSON accepts any JSON value for either slider. A mood that is not
// an object carries no sliders and decodes to the zero vector.
func (m *MoodVector) UnmarshalJSON(data []byte) error {
	var loose struct {
		Soft   shared.Text `json:"soft"`
		Static shared.Text `json:"static"`
	}
	if err := json.Unmarshal(data, &loose); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			*m = MoodVector{}
			return nil
		}
		return errors.Wrap(err, "decode mood")
	}
	*m = MoodVector{Soft: string(loose.Soft), Static: string(loose.Static)}
	return nil
}

// FontRequest is the body accepted by the font endpoint.
type FontRequest struct {
	Service  string      `json:"service" validate:"required"`
	Keyword  string      `json:"keyword" validate:"required"`
	Platform string      `json:"platform" validate:"required"`
	Mood     *MoodVector `json:"mood" validate:"required"`
}

// UnmarshalJSON decodes any JSON object. Scalar fields take the text of
// whatever value was sent, so a mistyped field never hides the service.
func (r *FontRequest) UnmarshalJSON(data []byte) error {
	var loose struct {
		Service  shared.Text `json:"service"`
		Keyword  shared.Text `json:"keyword"`
		Platform shared.Text `json:"platform"`
		Mood     *MoodVector `json:"mood"`
	}
	if err := json.Unmarshal(data, &loose); err != nil {
		return errors.Wrap(err, "decode font request")
	}
	*r = FontRequest{
		Service:  string(loose.Service),
		Keyword:  string(loose.Keyword),
		Platform: string(loose.Platform),
		Mood:     loose.Mood,
	}
	return nil
}

// FontTriple is a heading/body/Korean font pairing with a Korean explanation.
type FontTriple struct {
	Heading   string `json:"heading"`
	Body      string `json:"body"`
	Korean    string `json:"korean"`
	Reasoning string `json:"reasoning"`
}

// Complete reports whether every field of the triple is set.
func (f FontTriple) Complete() bool {
	return f.Heading != "" && f.Body != "" && f.Korean != "" && f.Reasoning != ""
}
