package export

import (
	"fmt"
	"strings"

	"github.com/jorge-barreto/dpsheet/internal/worksheet"
)

const markdownTitle = "# DP/Greedy Problem-Solving Checklist\n\n"

// ToMarkdown renders one section per worksheet in collection order. Every
// heading is always present; empty fields render as empty text.
func ToMarkdown(ws []worksheet.Worksheet) string {
	var b strings.Builder
	b.WriteString(markdownTitle)
	for i, w := range ws {
		writeSection(&b, i, w)
	}
	return b.String()
}

func writeSection(b *strings.Builder, idx int, w worksheet.Worksheet) {
	types := strings.Join(w.ProblemType, ", ")
	if types == "" {
		types = "Not selected"
	}

	fmt.Fprintf(b, "## Problem %d: %s\n\n", idx+1, w.Name)
	fmt.Fprintf(b, "### 1️⃣ Problem Type\n%s\n\n", types)
	fmt.Fprintf(b, "### 2️⃣ Constraints\n- n = %s\n- Range of n = %s\n- Values range = %s\n- Time limit pressure = %s\n\n",
		w.Constraints.N, w.Constraints.RangeN, w.Constraints.ValuesRange, yesNo(w.Constraints.TimePressure))
	fmt.Fprintf(b, "### 3️⃣ Can I simulate?\n%s\n\nWhy? %s\n\n", w.CanSimulate, w.WhySimulate)
	fmt.Fprintf(b, "### 4️⃣ dp[i] Definition\n%s\n\n", w.DPDefinition)
	fmt.Fprintf(b, "### 5️⃣ Decisions\n- Option 1: %s\n- Option 2: %s\n- Option 3: %s\n\n",
		w.Decisions.Option1, w.Decisions.Option2, w.Decisions.Option3)
	fmt.Fprintf(b, "### 6️⃣ Transition\n%s\n\n", w.Transition)
	fmt.Fprintf(b, "### 7️⃣ Base Cases\n- dp[0] = %s\n- dp[1] = %s\n\n", w.BaseCases.DP0, w.BaseCases.DP1)
	fmt.Fprintf(b, "### 8️⃣ Order of Computation\n%s\n\nWhy? %s\n\n", w.ComputationOrder, w.WhyOrder)
	fmt.Fprintf(b, "### 9️⃣ DP Optimization\n%s\n\nDetails: %s\n\n", w.DPOptimization, w.OptimizationDetails)
	fmt.Fprintf(b, "### 🔟 Greedy Possible?\nLocal choice = %s\n\nWhy future doesn't break = %s\n\n", w.GreedyLocal, w.GreedyFuture)
	fmt.Fprintf(b, "### 1️⃣1️⃣ Final Answer\ndp[%s]\n\n", w.FinalAnswer)
	fmt.Fprintf(b, "### 1️⃣2️⃣ Intuition\n%s\n\n---\n\n", w.Intuition)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
