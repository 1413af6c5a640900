package infrastructure

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidJSON is returned when a model reply is not a JSON document.
var ErrInvalidJSON = errors.New("model reply is not valid JSON")

// ParseJSONReply strips a surrounding markdown code fence from a model reply
// and returns the remaining document in compact form.
func ParseJSONReply(raw string) (json.RawMessage, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") && len(text) >= 6 {
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimPrefix(text, "json")
		text = strings.TrimSpace(text)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(text)); err != nil {
		return nil, errors.Wrapf(ErrInvalidJSON, "%v", err)
	}
	return json.RawMessage(buf.Bytes()), nil
}
