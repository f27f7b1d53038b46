package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jorge-barreto/dpsheet/internal/worksheet"
)

func TestRender_Formats(t *testing.T) {
	ws := []worksheet.Worksheet{worksheet.New("a")}
	cases := []struct {
		format, filename, mime string
	}{
		{"json", "dp-greedy-checklist.json", MIMEJSON},
		{"md", "dp-greedy-checklist.md", MIMEMarkdown},
		{"markdown", "dp-greedy-checklist.md", MIMEMarkdown},
		{"XLSX", "dp-greedy-checklist.xlsx", MIMEXLSX},
	}
	for _, c := range cases {
		a, err := Render(c.format, ws)
		if err != nil {
			t.Fatalf("Render(%q): %v", c.format, err)
		}
		if a.Filename != c.filename || a.MIMEType != c.mime {
			t.Errorf("Render(%q) = %s (%s)", c.format, a.Filename, a.MIMEType)
		}
		if len(a.Content) == 0 {
			t.Errorf("Render(%q) produced no content", c.format)
		}
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render("pdf", nil)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("got %v", err)
	}
}

func TestRenderWorksheet_SlugFilename(t *testing.T) {
	w := worksheet.New("a")
	w.Name = "Coin Change II"
	a, err := RenderWorksheet(0, w)
	if err != nil {
		t.Fatal(err)
	}
	if a.Filename != "coin-change-ii.json" {
		t.Fatalf("Filename = %q", a.Filename)
	}

	w.Name = "!!!"
	a, err = RenderWorksheet(3, w)
	if err != nil {
		t.Fatal(err)
	}
	if a.Filename != "problem-4.json" {
		t.Fatalf("Filename = %q", a.Filename)
	}
}

func TestDownload_WritesIntoNewDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	a := Artifact{Filename: "dp-greedy-checklist.md", MIMEType: MIMEMarkdown, Content: []byte("# x\n")}

	path, err := Download(dir, a)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "dp-greedy-checklist.md") {
		t.Fatalf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# x\n" {
		t.Fatalf("got %q", string(data))
	}
}
