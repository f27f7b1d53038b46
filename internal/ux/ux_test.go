package ux

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jorge-barreto/dpsheet/internal/worksheet"
)

func TestRenderTabs_HighlightsActive(t *testing.T) {
	a := worksheet.New("a")
	b := worksheet.New("b")
	b.Name = ""
	var buf bytes.Buffer
	RenderTabs(&buf, []worksheet.Worksheet{a, b}, 1)

	out := buf.String()
	if !strings.Contains(out, " 1 Untitled Problem ") {
		t.Fatalf("inactive tab missing: %q", out)
	}
	if !strings.Contains(out, "[2 Problem 2]") {
		t.Fatalf("active tab not bracketed: %q", out)
	}
}

func TestRenderWorksheet_ShowsValues(t *testing.T) {
	s := worksheet.New("id-1")
	s.Name = "House Robber"
	s.ProblemType = []string{"Min / Max", "Custom tag"}
	s.ComputationOrder = "Left → Right"
	s.FinalAnswer = "n-1"

	var buf bytes.Buffer
	RenderWorksheet(&buf, 0, s)
	out := buf.String()

	for _, want := range []string{
		"House Robber",
		"[x]" + Reset + " Min / Max",
		"[ ] Count ways",
		"Custom tag",
		"(•)" + Reset + " Left → Right",
		"Answer = dp[n-1]",
		"One-line Intuition",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPrompt(t *testing.T) {
	if got := Prompt(0, 2, "House Robber", false); got != "[1/2] House Robber> " {
		t.Fatalf("got %q", got)
	}
	if got := Prompt(1, 2, "x", true); !strings.Contains(got, "✓ copied") {
		t.Fatalf("got %q", got)
	}
}

func TestRenderFields_ListsPaths(t *testing.T) {
	var buf bytes.Buffer
	RenderFields(&buf)
	for _, f := range worksheet.Fields() {
		if !strings.Contains(buf.String(), f.Path) {
			t.Errorf("missing %q", f.Path)
		}
	}
}
