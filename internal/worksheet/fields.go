package worksheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Field describes one editable worksheet field addressed by a dotted path.
type Field struct {
	Path    string
	Label   string
	Options []string // fixed choices, nil for free text
	Bool    bool
	patch   func(v string) Patch
}

var fields = []Field{
	{Path: "name", Label: "Problem name", patch: func(v string) Patch { return Patch{Name: &v} }},
	{Path: "constraints.n", Label: "n =", patch: func(v string) Patch {
		return Patch{Constraints: &ConstraintsPatch{N: &v}}
	}},
	{Path: "constraints.rangeN", Label: "Range of n =", patch: func(v string) Patch {
		return Patch{Constraints: &ConstraintsPatch{RangeN: &v}}
	}},
	{Path: "constraints.valuesRange", Label: "Values range =", patch: func(v string) Patch {
		return Patch{Constraints: &ConstraintsPatch{ValuesRange: &v}}
	}},
	{Path: "constraints.timePressure", Label: "Time limit pressure", Bool: true},
	{Path: "canSimulate", Label: "Can I simulate?", Options: SimulateOptions, patch: func(v string) Patch {
		return Patch{CanSimulate: &v}
	}},
	{Path: "whySimulate", Label: "Why?", patch: func(v string) Patch { return Patch{WhySimulate: &v} }},
	{Path: "dpDefinition", Label: "dp[i] means", patch: func(v string) Patch { return Patch{DPDefinition: &v} }},
	{Path: "decisions.option1", Label: "Option 1", patch: func(v string) Patch {
		return Patch{Decisions: &DecisionsPatch{Option1: &v}}
	}},
	{Path: "decisions.option2", Label: "Option 2", patch: func(v string) Patch {
		return Patch{Decisions: &DecisionsPatch{Option2: &v}}
	}},
	{Path: "decisions.option3", Label: "Option 3 (if any)", patch: func(v string) Patch {
		return Patch{Decisions: &DecisionsPatch{Option3: &v}}
	}},
	{Path: "transition", Label: "Transition", patch: func(v string) Patch { return Patch{Transition: &v} }},
	{Path: "baseCases.dp0", Label: "dp[0] =", patch: func(v string) Patch {
		return Patch{BaseCases: &BaseCasesPatch{DP0: &v}}
	}},
	{Path: "baseCases.dp1", Label: "dp[1] =", patch: func(v string) Patch {
		return Patch{BaseCases: &BaseCasesPatch{DP1: &v}}
	}},
	{Path: "computationOrder", Label: "Order of computation", Options: OrderOptions, patch: func(v string) Patch {
		return Patch{ComputationOrder: &v}
	}},
	{Path: "whyOrder", Label: "Why this order?", patch: func(v string) Patch { return Patch{WhyOrder: &v} }},
	{Path: "dpOptimization", Label: "Can dp be optimized?", Options: OptimizeOptions, patch: func(v string) Patch {
		return Patch{DPOptimization: &v}
	}},
	{Path: "optimizationDetails", Label: "What past states are truly needed?", patch: func(v string) Patch {
		return Patch{OptimizationDetails: &v}
	}},
	{Path: "greedyLocal", Label: "Local choice =", patch: func(v string) Patch { return Patch{GreedyLocal: &v} }},
	{Path: "greedyFuture", Label: "Why future does not break this choice?", patch: func(v string) Patch {
		return Patch{GreedyFuture: &v}
	}},
	{Path: "finalAnswer", Label: "Answer = dp[...]", patch: func(v string) Patch { return Patch{FinalAnswer: &v} }},
	{Path: "intuition", Label: "One-line intuition", patch: func(v string) Patch { return Patch{Intuition: &v} }},
}

// Fields returns every editable field in form order.
func Fields() []Field {
	return fields
}

// LookupField finds a field by path, ignoring case.
func LookupField(path string) (Field, bool) {
	for _, f := range fields {
		if strings.EqualFold(f.Path, path) {
			return f, true
		}
	}
	return Field{}, false
}

// ParsePatch builds a one-field patch from user input. Enumerated fields
// accept an option number or an unambiguous prefix; anything else is stored
// verbatim.
func ParsePatch(path, value string) (Patch, error) {
	f, ok := LookupField(path)
	if !ok {
		return Patch{}, fmt.Errorf("unknown field %q — run 'fields' to list editable fields", path)
	}
	if f.Bool {
		b, err := ParseYesNo(value)
		if err != nil {
			return Patch{}, fmt.Errorf("%s: %w", f.Path, err)
		}
		return Patch{Constraints: &ConstraintsPatch{TimePressure: &b}}, nil
	}
	if f.Options != nil {
		value = ResolveOption(f.Options, value)
	}
	return f.patch(value), nil
}

// ResolveOption maps a 1-based option number or a case-insensitive prefix that
// matches exactly one option to that option. Other input is returned unchanged.
func ResolveOption(options []string, input string) string {
	in := strings.TrimSpace(input)
	if n, err := strconv.Atoi(in); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	if in == "" {
		return input
	}
	match := ""
	for _, o := range options {
		if strings.EqualFold(o, in) {
			return o
		}
		if strings.HasPrefix(strings.ToLower(o), strings.ToLower(in)) {
			if match != "" {
				return input
			}
			match = o
		}
	}
	if match != "" {
		return match
	}
	return input
}

// ParseYesNo accepts yes/no, y/n, true/false, on/off and 1/0.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "on", "1":
		return true, nil
	case "no", "n", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected yes or no, got %q", s)
}
