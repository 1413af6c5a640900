package domain

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	shared "iri-guide/backend/internal/features/shared/domain"
)

// DesignContext holds the user-chosen parameters of a design request.
type DesignContext struct {
	Platform     string `json:"platform" validate:"required"`
	Service      string `json:"service" validate:"required"`
	Keyword      string `json:"keyword" validate:"required"`
	PrimaryColor string `json:"primaryColor"`
}

// UnmarshalJSON takes the text of whatever value each field carries.
func (dc *DesignContext) UnmarshalJSON(data []byte) error {
	var loose struct {
		Platform     shared.Text `json:"platform"`
		Service      shared.Text `json:"service"`
		Keyword      shared.Text `json:"keyword"`
		PrimaryColor shared.Text `json:"primaryColor"`
	}
	if err := json.Unmarshal(data, &loose); err != nil {
		return errors.Wrap(err, "decode context")
	}
	*dc = DesignContext{
		Platform:     string(loose.Platform),
		Service:      string(loose.Service),
		Keyword:      string(loose.Keyword),
		PrimaryColor: string(loose.PrimaryColor),
	}
	return nil
}

// KnowledgeBase is the caller-supplied reference data for one request.
type KnowledgeBase struct {
	Guidelines map[string]json.RawMessage `json:"guidelines" validate:"required"`
	IRIColors  ColorGroups                `json:"iri_colors"`
}

// GuideRequest is the body accepted by the guide endpoint.
type GuideRequest struct {
	Context       DesignContext `json:"context"`
	KnowledgeBase KnowledgeBase `json:"knowledgeBase"`
}

// ColorGroup is one named entry of the IRI color table.
type ColorGroup struct {
	Name     string
	Keywords []string
	// Raw is the group object as sent by the caller.
	Raw json.RawMessage
}

// ColorGroups keeps the groups in the order they appear in the request document,
// so the first-match lookup does not depend on map iteration order.
type ColorGroups []ColorGroup

// UnmarshalJSON decodes a JSON object of groups, preserving key order.
func (g *ColorGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "decode iri_colors")
	}
	if tok == nil {
		*g = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("iri_colors must be an object")
	}

	groups := ColorGroups{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "decode iri_colors key")
		}
		name, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return errors.Wrapf(err, "decode iri_colors group %q", name)
		}

		// a group without a usable keywords list simply never matches
		var body struct {
			Keywords []string `json:"keywords"`
		}
		_ = json.Unmarshal(raw, &body)

		groups = append(groups, ColorGroup{Name: name, Keywords: body.Keywords, Raw: raw})
	}
	*g = groups
	return nil
}

// ColorTypographyResult is the documented shape of a design guide.
type ColorTypographyResult struct {
	ColorSystem   ColorSystem   `json:"colorSystem"`
	Typography    Typography    `json:"typography"`
	Accessibility Accessibility `json:"accessibility"`
}

type ColorSystem struct {
	Primary   Shades `json:"primary"`
	Secondary Shades `json:"secondary"`
}

type Shades struct {
	Main  string `json:"main"`
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

type Typography struct {
	BodySize     string `json:"bodySize"`
	HeadlineSize string `json:"headlineSize"`
	LineHeight   string `json:"lineHeight"`
}

type Accessibility struct {
	TextColorOnPrimary string `json:"textColorOnPrimary"`
	ContrastRatio      string `json:"contrastRatio"`
}
