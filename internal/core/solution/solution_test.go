package solution

import (
	"testing"

	"chosenoffset.com/mirrormaze/internal/core/shapes"
	"chosenoffset.com/mirrormaze/internal/core/trace"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		path     trace.Path
		expected int
		want     Verdict
	}{
		{
			name:     "direct hit with no mirrors",
			path:     trace.Path{Outcome: trace.AbsorbedBy(shapes.Receptor)},
			expected: 0,
			want:     Verdict{Solved: true, Solution: ""},
		},
		{
			name:     "one mirror",
			path:     trace.Path{Tokens: []string{"A,2,4"}, Outcome: trace.AbsorbedBy(shapes.Receptor)},
			expected: 1,
			want:     Verdict{Solved: true, Solution: "A,2,4"},
		},
		{
			name:     "too few mirrors",
			path:     trace.Path{Tokens: []string{"A,2,4"}, Outcome: trace.AbsorbedBy(shapes.Receptor)},
			expected: 2,
			want:     Verdict{Solved: false, Solution: "A,2,4"},
		},
		{
			name:     "joined in order",
			path:     trace.Path{Tokens: []string{"B,1,1", "A,2,4"}, Outcome: trace.AbsorbedBy(shapes.Receptor)},
			expected: 2,
			want:     Verdict{Solved: true, Solution: "B,1,1;A,2,4"},
		},
		{
			name:     "blocked",
			path:     trace.Path{Outcome: trace.AbsorbedBy(shapes.Blocker)},
			expected: 0,
			want:     Verdict{Solved: false},
		},
		{
			name:     "escaped",
			path:     trace.Path{Outcome: trace.Outcome{Terminal: trace.Escaped}},
			expected: 0,
			want:     Verdict{Solved: false},
		},
		{
			name:     "bounce limit",
			path:     trace.Path{Tokens: []string{"A,0,0"}, Outcome: trace.Outcome{Terminal: trace.BounceLimitReached}},
			expected: 1,
			want:     Verdict{Solved: false, Solution: "A,0,0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.path, tt.expected); got != tt.want {
				t.Errorf("Evaluate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
