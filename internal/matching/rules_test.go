package matching

import "testing"

func TestSubstringRule(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "exact", a: "Python", b: "python", want: true},
		{name: "requirement inside candidate", a: "AWS", b: "aws lambda", want: true},
		{name: "candidate inside requirement", a: "React.js", b: "react", want: true},
		{name: "unrelated", a: "Go", b: "Rust", want: false},
		{name: "empty requirement", a: "", b: "python", want: false},
		{name: "empty candidate", a: "python", b: "", want: false},
		{name: "whitespace only", a: "  ", b: "python", want: false},
	}

	rule := SubstringRule{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rule.Match(tc.a, tc.b); got != tc.want {
				t.Fatalf("Match(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestTokenOverlapRule(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "paraphrased leadership", a: "Leadership", b: "people leadership and coaching", want: true},
		{name: "identical phrase", a: "Complex Problem Solving", b: "complex problem solving", want: true},
		{name: "no shared tokens", a: "Time Management", b: "Client Relations", want: false},
		{name: "single shared token below ratio", a: "management of distributed remote teams", b: "stakeholder management communication planning", want: false},
		{name: "empty phrase", a: "", b: "leadership", want: false},
	}

	rule := TokenOverlapRule{Threshold: DefaultTokenOverlapThreshold}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rule.Match(tc.a, tc.b); got != tc.want {
				t.Fatalf("Match(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// An overlap ratio of exactly the threshold must not match: the comparator
// is strictly greater-than.
func TestTokenOverlapRuleBoundaryIsExclusive(t *testing.T) {
	rule := TokenOverlapRule{Threshold: 0.5}

	// Intersection {leadership}, min set size 2, ratio exactly 0.5.
	if rule.Match("Team Leadership", "leadership of engineering teams") {
		t.Fatalf("ratio exactly at threshold must not match")
	}

	// Intersection {team, leadership}, min set size 2, ratio 1.0.
	if !rule.Match("Team Leadership", "leadership across every team") {
		t.Fatalf("ratio above threshold must match")
	}
}
