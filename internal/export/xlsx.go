package export

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jorge-barreto/dpsheet/internal/worksheet"
	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

type row struct {
	Field string
	Value string
}

// rows flattens a worksheet into labelled values in Markdown section order.
func rows(w worksheet.Worksheet) []row {
	return []row{
		{"Name", w.Name},
		{"Problem type", strings.Join(w.ProblemType, ", ")},
		{"n", w.Constraints.N},
		{"Range of n", w.Constraints.RangeN},
		{"Values range", w.Constraints.ValuesRange},
		{"Time limit pressure", yesNo(w.Constraints.TimePressure)},
		{"Can I simulate?", w.CanSimulate},
		{"Why simulate", w.WhySimulate},
		{"dp[i] definition", w.DPDefinition},
		{"Option 1", w.Decisions.Option1},
		{"Option 2", w.Decisions.Option2},
		{"Option 3", w.Decisions.Option3},
		{"Transition", w.Transition},
		{"dp[0]", w.BaseCases.DP0},
		{"dp[1]", w.BaseCases.DP1},
		{"Order of computation", w.ComputationOrder},
		{"Why this order", w.WhyOrder},
		{"DP optimization", w.DPOptimization},
		{"Optimization details", w.OptimizationDetails},
		{"Greedy local choice", w.GreedyLocal},
		{"Why future doesn't break", w.GreedyFuture},
		{"Final answer", "dp[" + w.FinalAnswer + "]"},
		{"Intuition", w.Intuition},
	}
}

// ToXLSX renders the collection as a workbook with one sheet per worksheet.
func ToXLSX(ws []worksheet.Worksheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	used := make(map[string]bool)
	for i, w := range ws {
		name := uniqueSheetName(sheetName(w.Label(i)), used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("naming sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("adding sheet %q: %w", name, err)
		}

		if err := f.SetSheetRow(name, "A1", &[]any{"Field", "Value"}); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(name, "A1", "B1", header); err != nil {
			return nil, err
		}
		for j, r := range rows(w) {
			if n := utf8.RuneCountInString(r.Value); n > excelize.TotalCellChars {
				return nil, fmt.Errorf("sheet %q: %s is %d characters, over the %d allowed in a cell", name, r.Field, n, excelize.TotalCellChars)
			}
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(name, cell, &[]any{r.Field, r.Value}); err != nil {
				return nil, fmt.Errorf("writing %s!%s: %w", name, cell, err)
			}
		}
		if err := f.SetColWidth(name, "A", "A", 28); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(name, "B", "B", 80); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetName strips characters Excel forbids in sheet names and truncates to
// the 31 character limit.
func sheetName(label string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, label)
	name = trimSheetName(truncateRunes(trimSheetName(name), maxSheetName))
	if name == "" {
		name = "Problem"
	}
	return name
}

// trimSheetName drops the spaces and single quotes Excel rejects at either
// end of a sheet name.
func trimSheetName(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\'' || unicode.IsSpace(r)
	})
}

func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := trimSheetName(truncateRunes(name, maxSheetName-len(suffix)))
		if base == "" {
			base = "Problem"
		}
		candidate = base + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
