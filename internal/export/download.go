package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/jorge-barreto/dpsheet/internal/worksheet"
)

const baseFilename = "dp-greedy-checklist"

const (
	MIMEJSON     = "application/json"
	MIMEMarkdown = "text/markdown"
	MIMEXLSX     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Artifact is a rendered export ready to be saved.
type Artifact struct {
	Filename string
	MIMEType string
	Content  []byte
}

// Format names accepted by Render.
var Formats = []string{"json", "md", "xlsx"}

// Render builds the collection export for the named format.
func Render(format string, ws []worksheet.Worksheet) (Artifact, error) {
	switch strings.ToLower(format) {
	case "json":
		s, err := ToJSON(ws)
		if err != nil {
			return Artifact{}, fmt.Errorf("rendering json: %w", err)
		}
		return Artifact{Filename: baseFilename + ".json", MIMEType: MIMEJSON, Content: []byte(s)}, nil
	case "md", "markdown":
		return Artifact{Filename: baseFilename + ".md", MIMEType: MIMEMarkdown, Content: []byte(ToMarkdown(ws))}, nil
	case "xlsx":
		data, err := ToXLSX(ws)
		if err != nil {
			return Artifact{}, fmt.Errorf("rendering xlsx: %w", err)
		}
		return Artifact{Filename: baseFilename + ".xlsx", MIMEType: MIMEXLSX, Content: data}, nil
	default:
		return Artifact{}, fmt.Errorf("unknown format %q (must be one of %s)", format, strings.Join(Formats, ", "))
	}
}

// RenderWorksheet builds a single-worksheet JSON export named after the
// worksheet's label.
func RenderWorksheet(idx int, w worksheet.Worksheet) (Artifact, error) {
	s, err := ToClipboardText(w)
	if err != nil {
		return Artifact{}, fmt.Errorf("rendering worksheet: %w", err)
	}
	name := slug.Make(w.Label(idx))
	if name == "" {
		name = fmt.Sprintf("problem-%d", idx+1)
	}
	return Artifact{Filename: name + ".json", MIMEType: MIMEJSON, Content: []byte(s)}, nil
}

// Download saves the artifact into dir and returns the written path.
func Download(dir string, a Artifact) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, a.Filename)
	if err := writeFileAtomic(path, a.Content, 0644); err != nil {
		return "", fmt.Errorf("saving %s: %w", a.Filename, err)
	}
	return path, nil
}
