package export

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jorge-barreto/dpsheet/internal/worksheet"
	"github.com/xuri/excelize/v2"
)

func TestToXLSX_OneSheetPerWorksheet(t *testing.T) {
	a := worksheet.New("a")
	a.Name = "House Robber"
	a.FinalAnswer = "n-1"
	b := worksheet.New("b")
	b.Name = "House Robber"
	c := worksheet.New("c")
	c.Name = ""

	data, err := ToXLSX([]worksheet.Worksheet{a, b, c})
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"House Robber", "House Robber (2)", "Problem 3"}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Fatalf("sheets = %v, want %v", sheets, want)
		}
	}

	rowsA, err := f.GetRows("House Robber")
	if err != nil {
		t.Fatal(err)
	}
	if rowsA[0][0] != "Field" || rowsA[0][1] != "Value" {
		t.Fatalf("header = %v", rowsA[0])
	}
	found := false
	for _, r := range rowsA {
		if len(r) == 2 && r[0] == "Final answer" {
			found = true
			if r[1] != "dp[n-1]" {
				t.Fatalf("final answer = %q", r[1])
			}
		}
	}
	if !found {
		t.Fatal("final answer row missing")
	}
}

func TestSheetName_SanitizesAndTruncates(t *testing.T) {
	got := sheetName("Longest [Increasing] Subsequence: O(n log n) / patience")
	if strings.ContainsAny(got, `:\/?*[]`) {
		t.Fatalf("forbidden characters left in %q", got)
	}
	if utf8.RuneCountInString(got) > maxSheetName {
		t.Fatalf("%q longer than %d", got, maxSheetName)
	}
	if sheetName("  ''  ") != "Problem" {
		t.Fatalf("blank label not replaced: %q", sheetName("  ''  "))
	}
}

func TestUniqueSheetName_CaseInsensitive(t *testing.T) {
	used := map[string]bool{}
	first := uniqueSheetName("Climbing Stairs", used)
	second := uniqueSheetName("climbing stairs", used)
	if first == second || second != "climbing stairs (2)" {
		t.Fatalf("got %q and %q", first, second)
	}
}

func TestToXLSX_QuoteLeftAtTruncationPoint(t *testing.T) {
	w := worksheet.New("a")
	w.Name = strings.Repeat("a", 30) + "'s problem"
	other := worksheet.New("b")
	other.Name = w.Name

	data, err := ToXLSX([]worksheet.Worksheet{w, other})
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	base := strings.Repeat("a", 30)
	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != base || sheets[1] != strings.Repeat("a", 27)+" (2)" {
		t.Fatalf("sheets = %q", sheets)
	}
}

func TestSheetName_NoQuoteAtEitherEnd(t *testing.T) {
	for _, label := range []string{
		strings.Repeat("b", 30) + "'tail",
		"'" + strings.Repeat("c", 40),
		"  '  quoted  '  ",
	} {
		got := sheetName(label)
		if strings.HasPrefix(got, "'") || strings.HasSuffix(got, "'") {
			t.Errorf("sheetName(%q) = %q", label, got)
		}
	}
}

func TestUniqueSheetName_TrimsTruncatedBase(t *testing.T) {
	used := map[string]bool{}
	name := strings.Repeat("d", 26) + "'xyz"
	uniqueSheetName(name, used)
	got := uniqueSheetName(name, used)
	if got != strings.Repeat("d", 26)+" (2)" {
		t.Fatalf("got %q", got)
	}
}

func TestToXLSX_RejectsOversizedCell(t *testing.T) {
	w := worksheet.New("a")
	w.Intuition = strings.Repeat("x", excelize.TotalCellChars+1)
	_, err := ToXLSX([]worksheet.Worksheet{w})
	if err == nil || !strings.Contains(err.Error(), "Intuition") {
		t.Fatalf("got %v", err)
	}

	w.Intuition = strings.Repeat("x", excelize.TotalCellChars)
	if _, err := ToXLSX([]worksheet.Worksheet{w}); err != nil {
		t.Fatalf("cell at the limit rejected: %v", err)
	}
}
