package worksheet

import "slices"

// Patch is a partial update. Nil fields are left untouched; nested records
// merge one level deep.
type Patch struct {
	Name                *string
	ProblemType         []string
	Constraints         *ConstraintsPatch
	CanSimulate         *string
	WhySimulate         *string
	DPDefinition        *string
	Decisions           *DecisionsPatch
	Transition          *string
	BaseCases           *BaseCasesPatch
	ComputationOrder    *string
	WhyOrder            *string
	DPOptimization      *string
	OptimizationDetails *string
	GreedyLocal         *string
	GreedyFuture        *string
	FinalAnswer         *string
	Intuition           *string
}

type ConstraintsPatch struct {
	N            *string
	RangeN       *string
	ValuesRange  *string
	TimePressure *bool
}

type DecisionsPatch struct {
	Option1 *string
	Option2 *string
	Option3 *string
}

type BaseCasesPatch struct {
	DP0 *string
	DP1 *string
}

// Text returns a pointer to s, for building patches inline.
func Text(s string) *string { return &s }

// Flag returns a pointer to b, for building patches inline.
func Flag(b bool) *bool { return &b }

// Apply merges p into w.
func (p Patch) Apply(w *Worksheet) {
	set(&w.Name, p.Name)
	if p.ProblemType != nil {
		w.ProblemType = slices.Clone(p.ProblemType)
	}
	if c := p.Constraints; c != nil {
		set(&w.Constraints.N, c.N)
		set(&w.Constraints.RangeN, c.RangeN)
		set(&w.Constraints.ValuesRange, c.ValuesRange)
		if c.TimePressure != nil {
			w.Constraints.TimePressure = *c.TimePressure
		}
	}
	set(&w.CanSimulate, p.CanSimulate)
	set(&w.WhySimulate, p.WhySimulate)
	set(&w.DPDefinition, p.DPDefinition)
	if d := p.Decisions; d != nil {
		set(&w.Decisions.Option1, d.Option1)
		set(&w.Decisions.Option2, d.Option2)
		set(&w.Decisions.Option3, d.Option3)
	}
	set(&w.Transition, p.Transition)
	if b := p.BaseCases; b != nil {
		set(&w.BaseCases.DP0, b.DP0)
		set(&w.BaseCases.DP1, b.DP1)
	}
	set(&w.ComputationOrder, p.ComputationOrder)
	set(&w.WhyOrder, p.WhyOrder)
	set(&w.DPOptimization, p.DPOptimization)
	set(&w.OptimizationDetails, p.OptimizationDetails)
	set(&w.GreedyLocal, p.GreedyLocal)
	set(&w.GreedyFuture, p.GreedyFuture)
	set(&w.FinalAnswer, p.FinalAnswer)
	set(&w.Intuition, p.Intuition)
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
