// Package solution decides whether a traced path solves the puzzle.
package solution

import "chosenoffset.com/mirrormaze/internal/core/trace"

// Verdict is the result of evaluating one trace.
type Verdict struct {
	Solved   bool
	Solution string // path tokens joined by ";"
}

// Evaluate reports the puzzle as solved when the ray ended on the receptor
// after touching exactly expected tracked objects.
func Evaluate(p trace.Path, expected int) Verdict {
	return Verdict{
		Solved:   len(p.Tokens) == expected && p.Outcome.ReachedReceptor(),
		Solution: p.Solution(),
	}
}
