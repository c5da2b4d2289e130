package conditional

import (
	"strings"

	"github.com/dinesharanathunga/mgtoolkit/core"
)

// Assignment is one proposition's truth value within an Interpretation.
type Assignment struct {
	Proposition core.Element
	Value       bool
}

// Interpretation is an ordered list of proposition assignments,
// partitioning cm's propositions into a true set and a false set.
type Interpretation []Assignment

func (in Interpretation) split() (trueProps, falseProps core.Set) {
	trueProps, falseProps = core.NewSet(), core.NewSet()
	for _, a := range in {
		if a.Value {
			trueProps.Add(a.Proposition)
		} else {
			falseProps.Add(a.Proposition)
		}
	}
	return trueProps, falseProps
}

// validateExpressions tokenizes each expression on '.', '|', '!', '(',
// ')' and requires every non-empty token to name a proposition.
func (cm *ConditionalMetagraph) validateExpressions(expressions []string) error {
	if len(expressions) == 0 {
		return core.NewError(core.InvalidArgument, "logicalExpressions", "value_null")
	}
	replacer := strings.NewReplacer(".", " ", "|", " ", "!", " ", "(", " ", ")", " ")
	for _, expr := range expressions {
		for _, token := range strings.Fields(replacer.Replace(expr)) {
			if !cm.Propositions.Contains(core.Element(token)) {
				return core.NewError(core.RangeViolation, "logicalExpression", "arguments_invalid")
			}
		}
	}
	return nil
}

func (cm *ConditionalMetagraph) validateInterpretations(interpretations []Interpretation) error {
	if len(interpretations) == 0 {
		return core.NewError(core.InvalidArgument, "interpretations", "value_null")
	}
	for _, in := range interpretations {
		for _, a := range in {
			if !cm.Propositions.Contains(a.Proposition) {
				return core.NewError(core.RangeViolation, "interpretations", "arguments_invalid")
			}
		}
	}
	return nil
}

func (cm *ConditionalMetagraph) validateSourceTarget(source, target core.Set) error {
	if source == nil || source.Len() == 0 {
		return core.NewError(core.InvalidArgument, "source", "value_null")
	}
	if target == nil || target.Len() == 0 {
		return core.NewError(core.InvalidArgument, "target", "value_null")
	}
	if !source.IsSubsetOf(cm.Variables) {
		return core.NewError(core.Inconsistency, "source", "not_a_subset")
	}
	if !target.IsSubsetOf(cm.Variables) {
		return core.NewError(core.Inconsistency, "target", "not_a_subset")
	}
	return nil
}

// IsConnected reports whether some interpretation's context metagraph has
// at least one metapath from source to target.
func (cm *ConditionalMetagraph) IsConnected(source, target core.Set, expressions []string, interpretations []Interpretation) (bool, error) {
	if err := cm.validateSourceTarget(source, target); err != nil {
		return false, err
	}
	if err := cm.validateExpressions(expressions); err != nil {
		return false, err
	}
	if err := cm.validateInterpretations(interpretations); err != nil {
		return false, err
	}

	for _, in := range interpretations {
		trueProps, falseProps := in.split()
		context, err := cm.GetContext(trueProps, falseProps)
		if err != nil {
			return false, err
		}
		mps, err := context.GetAllMetapathsFrom(source, target)
		if err != nil {
			return false, err
		}
		if len(mps) >= 1 {
			return true, nil
		}
	}
	return false, nil
}

// IsFullyConnected reports whether every interpretation's context
// metagraph has at least one metapath from source to target.
func (cm *ConditionalMetagraph) IsFullyConnected(source, target core.Set, expressions []string, interpretations []Interpretation) (bool, error) {
	if err := cm.validateSourceTarget(source, target); err != nil {
		return false, err
	}
	if err := cm.validateExpressions(expressions); err != nil {
		return false, err
	}
	if err := cm.validateInterpretations(interpretations); err != nil {
		return false, err
	}

	for _, in := range interpretations {
		trueProps, falseProps := in.split()
		context, err := cm.GetContext(trueProps, falseProps)
		if err != nil {
			return false, err
		}
		mps, err := context.GetAllMetapathsFrom(source, target)
		if err != nil {
			return false, err
		}
		if len(mps) == 0 {
			return false, nil
		}
	}
	return true, nil
}

// IsRedundantlyConnected reports whether every interpretation yields at
// most one metapath from source to target.
//
// The name inverts what it tests: "redundantly connected" returns false
// the moment any single interpretation yields more than one metapath,
// and true otherwise. That is the original toolkit's rule verbatim — not
// "true iff redundant" — preserved here rather than renamed, since
// callers already built against the original's polarity.
func (cm *ConditionalMetagraph) IsRedundantlyConnected(source, target core.Set, expressions []string, interpretations []Interpretation) (bool, error) {
	if err := cm.validateSourceTarget(source, target); err != nil {
		return false, err
	}
	if err := cm.validateExpressions(expressions); err != nil {
		return false, err
	}
	if err := cm.validateInterpretations(interpretations); err != nil {
		return false, err
	}

	for _, in := range interpretations {
		trueProps, falseProps := in.split()
		context, err := cm.GetContext(trueProps, falseProps)
		if err != nil {
			return false, err
		}
		mps, err := context.GetAllMetapathsFrom(source, target)
		if err != nil {
			return false, err
		}
		if len(mps) > 1 {
			return false, nil
		}
	}
	return true, nil
}

// IsNonRedundant reports whether, for every interpretation, no variable
// is the outvertex target of more than one edge in the resulting context.
func (cm *ConditionalMetagraph) IsNonRedundant(expressions []string, interpretations []Interpretation) (bool, error) {
	if err := cm.validateExpressions(expressions); err != nil {
		return false, err
	}
	if err := cm.validateInterpretations(interpretations); err != nil {
		return false, err
	}

	for _, in := range interpretations {
		trueProps, falseProps := in.split()
		context, err := cm.GetContext(trueProps, falseProps)
		if err != nil {
			return false, err
		}
		for x := range cm.Variables {
			count := 0
			for _, e := range context.Edges() {
				if e.Outvertex.Contains(x) {
					count++
				}
			}
			if count > 1 {
				return false, nil
			}
		}
	}
	return true, nil
}
