package export

import (
	"strings"
	"testing"

	"github.com/jorge-barreto/dpsheet/internal/store"
	"github.com/jorge-barreto/dpsheet/internal/worksheet"
)

func TestToMarkdown_HouseRobber(t *testing.T) {
	s := store.New()
	s.Update(worksheet.Patch{Name: worksheet.Text("House Robber")})
	s.ToggleProblemType("Min / Max")
	s.Update(worksheet.Patch{Constraints: &worksheet.ConstraintsPatch{N: worksheet.Text("array length")}})

	md := ToMarkdown(s.Worksheets())
	for _, want := range []string{
		"## Problem 1: House Robber",
		"Min / Max",
		"n = array length",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestToMarkdown_EmptyWorksheetKeepsStructure(t *testing.T) {
	md := ToMarkdown([]worksheet.Worksheet{worksheet.New("a")})

	headings := []string{
		"# DP/Greedy Problem-Solving Checklist",
		"## Problem 1: Untitled Problem",
		"### 1️⃣ Problem Type\nNot selected\n",
		"### 2️⃣ Constraints\n- n = \n- Range of n = \n- Values range = \n- Time limit pressure = No\n",
		"### 3️⃣ Can I simulate?\n\n\nWhy? \n",
		"### 4️⃣ dp[i] Definition\n",
		"### 5️⃣ Decisions\n- Option 1: \n- Option 2: \n- Option 3: \n",
		"### 6️⃣ Transition\n",
		"### 7️⃣ Base Cases\n- dp[0] = \n- dp[1] = \n",
		"### 8️⃣ Order of Computation\n",
		"### 9️⃣ DP Optimization\n\n\nDetails: \n",
		"### 🔟 Greedy Possible?\nLocal choice = \n\nWhy future doesn't break = \n",
		"### 1️⃣1️⃣ Final Answer\ndp[]\n",
		"### 1️⃣2️⃣ Intuition\n\n\n---\n",
	}
	last := -1
	for _, h := range headings {
		i := strings.Index(md, h)
		if i < 0 {
			t.Fatalf("markdown missing %q", h)
		}
		if i < last {
			t.Fatalf("%q out of order", h)
		}
		last = i
	}
}

func TestToMarkdown_SectionsInCollectionOrder(t *testing.T) {
	a := worksheet.New("a")
	a.Name = "Climbing Stairs"
	b := worksheet.New("b")
	b.Name = "Coin Change II"
	b.Constraints.TimePressure = true
	b.ProblemType = []string{"Count ways", "Optimize (profit / cost / deletions)"}
	b.FinalAnswer = "amount"

	md := ToMarkdown([]worksheet.Worksheet{a, b})

	i1 := strings.Index(md, "## Problem 1: Climbing Stairs")
	i2 := strings.Index(md, "## Problem 2: Coin Change II")
	if i1 < 0 || i2 < 0 || i1 > i2 {
		t.Fatalf("sections missing or out of order (%d, %d)", i1, i2)
	}
	second := md[i2:]
	for _, want := range []string{
		"Count ways, Optimize (profit / cost / deletions)",
		"Time limit pressure = Yes",
		"dp[amount]",
	} {
		if !strings.Contains(second, want) {
			t.Errorf("second section missing %q", want)
		}
	}
	if n := strings.Count(md, "\n---\n"); n != 2 {
		t.Fatalf("separator count = %d, want 2", n)
	}
}
