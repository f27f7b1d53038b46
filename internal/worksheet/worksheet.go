package worksheet

import (
	"fmt"
	"slices"
)

// DefaultName is the label given to freshly created worksheets.
const DefaultName = "Untitled Problem"

// Problem type tags, in display order.
var ProblemTypes = []string{
	"Count ways",
	"Min / Max",
	"Possible / Not possible",
	"Optimize (profit / cost / deletions)",
}

// Single-choice options for the enumerated fields.
var (
	SimulateOptions = []string{"Yes (n is small)", "No (n is big → DP / Greedy)"}
	OrderOptions    = []string{"Left → Right", "Right → Left", "Nested loops"}
	OptimizeOptions = []string{"Yes → to O(1) space", "No"}
)

type Constraints struct {
	N            string `json:"n"`
	RangeN       string `json:"rangeN"`
	ValuesRange  string `json:"valuesRange"`
	TimePressure bool   `json:"timePressure"`
}

type Decisions struct {
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Option3 string `json:"option3"`
}

type BaseCases struct {
	DP0 string `json:"dp0"`
	DP1 string `json:"dp1"`
}

// Worksheet is one user-filled record of reasoning about a single problem.
type Worksheet struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	ProblemType         []string    `json:"problemType"`
	Constraints         Constraints `json:"constraints"`
	CanSimulate         string      `json:"canSimulate"`
	WhySimulate         string      `json:"whySimulate"`
	DPDefinition        string      `json:"dpDefinition"`
	Decisions           Decisions   `json:"decisions"`
	Transition          string      `json:"transition"`
	BaseCases           BaseCases   `json:"baseCases"`
	ComputationOrder    string      `json:"computationOrder"`
	WhyOrder            string      `json:"whyOrder"`
	DPOptimization      string      `json:"dpOptimization"`
	OptimizationDetails string      `json:"optimizationDetails"`
	GreedyLocal         string      `json:"greedyLocal"`
	GreedyFuture        string      `json:"greedyFuture"`
	FinalAnswer         string      `json:"finalAnswer"`
	Intuition           string      `json:"intuition"`
}

// New returns a worksheet with every field at its default and the given id.
func New(id string) Worksheet {
	return Worksheet{
		ID:          id,
		Name:        DefaultName,
		ProblemType: []string{},
	}
}

// Clone returns a copy that shares no slices with w.
func (w Worksheet) Clone() Worksheet {
	cp := w
	if w.ProblemType == nil {
		cp.ProblemType = []string{}
	} else {
		cp.ProblemType = slices.Clone(w.ProblemType)
	}
	return cp
}

// Label returns the tab label for the worksheet at position idx (0-indexed).
func (w Worksheet) Label(idx int) string {
	if w.Name != "" {
		return w.Name
	}
	return fmt.Sprintf("Problem %d", idx+1)
}

// HasProblemType reports whether tag is selected.
func (w Worksheet) HasProblemType(tag string) bool {
	return slices.Contains(w.ProblemType, tag)
}
