package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/jorge-barreto/dpsheet/internal/docs"
	"github.com/jorge-barreto/dpsheet/internal/worksheet"
)

// RenderTabs prints the tab bar with the active tab highlighted.
func RenderTabs(w io.Writer, ws []worksheet.Worksheet, active int) {
	var parts []string
	for i, s := range ws {
		label := fmt.Sprintf("%d %s", i+1, s.Label(i))
		if i == active {
			parts = append(parts, fmt.Sprintf("%s%s[%s]%s", Bold, Blue, label, Reset))
		} else {
			parts = append(parts, fmt.Sprintf(" %s ", label))
		}
	}
	fmt.Fprintf(w, "%s\n", strings.Join(parts, " "))
}

// RenderWorksheet prints every section of a worksheet in form order.
func RenderWorksheet(w io.Writer, idx int, s worksheet.Worksheet) {
	fmt.Fprintf(w, "\n%s%s%s  %s(%s)%s\n", Bold, s.Label(idx), Reset, Dim, s.ID, Reset)

	section(w, "1", "Problem Type")
	for _, tag := range worksheet.ProblemTypes {
		fmt.Fprintf(w, "   %s %s\n", check(s.HasProblemType(tag)), tag)
	}
	for _, tag := range s.ProblemType {
		if !contains(worksheet.ProblemTypes, tag) {
			fmt.Fprintf(w, "   %s %s\n", check(true), tag)
		}
	}

	section(w, "2", "Constraints")
	value(w, "n =", s.Constraints.N)
	value(w, "Range of n =", s.Constraints.RangeN)
	value(w, "Values range =", s.Constraints.ValuesRange)
	fmt.Fprintf(w, "   %s Time limit pressure\n", check(s.Constraints.TimePressure))

	section(w, "3", "Can I simulate?")
	choice(w, worksheet.SimulateOptions, s.CanSimulate)
	value(w, "Why?", s.WhySimulate)

	section(w, "4", "dp[i] Definition")
	value(w, "dp[i] =", s.DPDefinition)

	section(w, "5", "Decisions")
	value(w, "Option 1:", s.Decisions.Option1)
	value(w, "Option 2:", s.Decisions.Option2)
	value(w, "Option 3:", s.Decisions.Option3)

	section(w, "6", "Transition")
	value(w, "", s.Transition)

	section(w, "7", "Base Cases")
	value(w, "dp[0] =", s.BaseCases.DP0)
	value(w, "dp[1] =", s.BaseCases.DP1)

	section(w, "8", "Order of Computation")
	choice(w, worksheet.OrderOptions, s.ComputationOrder)
	value(w, "Why this order?", s.WhyOrder)

	section(w, "9", "DP Optimization")
	choice(w, worksheet.OptimizeOptions, s.DPOptimization)
	value(w, "Details:", s.OptimizationDetails)

	section(w, "10", "Greedy Possible?")
	value(w, "Local choice =", s.GreedyLocal)
	value(w, "Why future doesn't break:", s.GreedyFuture)

	section(w, "11", "Final Answer")
	fmt.Fprintf(w, "   Answer = dp[%s]\n", s.FinalAnswer)

	section(w, "12", "One-line Intuition")
	value(w, "", s.Intuition)
	fmt.Fprintln(w)
}

// RenderFields lists editable field paths with their labels and options.
func RenderFields(w io.Writer) {
	for _, f := range worksheet.Fields() {
		fmt.Fprintf(w, "  %s%-26s%s %s\n", Cyan, f.Path, Reset, f.Label)
		for i, o := range f.Options {
			fmt.Fprintf(w, "  %28s%s%d%s %s\n", "", Dim, i+1, Reset, o)
		}
		if f.Bool {
			fmt.Fprintf(w, "  %28s%syes / no%s\n", "", Dim, Reset)
		}
	}
}

// RenderChapters lists the reference chapters.
func RenderChapters(w io.Writer) {
	fmt.Fprint(w, "\nAvailable chapters:\n\n")
	for _, c := range docs.All() {
		fmt.Fprintf(w, "  %-12s %s\n", c.Name, c.Summary)
	}
	fmt.Fprintln(w)
}

func section(w io.Writer, num, title string) {
	fmt.Fprintf(w, "\n%s%2s%s %s%s%s\n", Cyan, num, Reset, Bold, title, Reset)
}

func value(w io.Writer, label, v string) {
	if v == "" {
		v = Dim + "—" + Reset
	}
	if label == "" {
		fmt.Fprintf(w, "   %s\n", v)
		return
	}
	fmt.Fprintf(w, "   %s %s\n", label, v)
}

func choice(w io.Writer, options []string, selected string) {
	for _, o := range options {
		fmt.Fprintf(w, "   %s %s\n", radio(o == selected), o)
	}
	if selected != "" && !contains(options, selected) {
		fmt.Fprintf(w, "   %s %s\n", radio(true), selected)
	}
}

func check(on bool) string {
	if on {
		return Green + "[x]" + Reset
	}
	return "[ ]"
}

func radio(on bool) string {
	if on {
		return Green + "(•)" + Reset
	}
	return "( )"
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
