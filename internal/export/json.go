package export

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jorge-barreto/dpsheet/internal/worksheet"
)

// ToJSON renders the whole collection as indented JSON. Text is kept verbatim
// (no HTML escaping) and empty fields are included.
func ToJSON(ws []worksheet.Worksheet) (string, error) {
	out := make([]worksheet.Worksheet, len(ws))
	for i, w := range ws {
		out[i] = w.Clone()
	}
	return encode(out)
}

// ToClipboardText renders a single worksheet as indented JSON.
func ToClipboardText(w worksheet.Worksheet) (string, error) {
	return encode(w.Clone())
}

// ParseJSON reads a collection previously written by ToJSON.
func ParseJSON(data []byte) ([]worksheet.Worksheet, error) {
	var ws []worksheet.Worksheet
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, err
	}
	for i := range ws {
		ws[i] = ws[i].Clone()
	}
	return ws, nil
}

func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
