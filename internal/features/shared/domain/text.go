package domain

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Text is a request scalar that accepts any JSON value. Strings are unquoted,
// null is empty and every other value keeps its literal text.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode text")
		}
		*t = Text(s)
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return errors.Wrap(err, "decode text")
		}
		*t = Text(buf.String())
	}
	return nil
}
