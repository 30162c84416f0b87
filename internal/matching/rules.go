package matching

import "strings"

// EquivalenceRule decides whether two item names refer to the same
// technology or skill. Implementations must be symmetric and pure.
type EquivalenceRule interface {
	Match(a, b string) bool
}

// SubstringRule matches when either case-folded name contains the other, so
// "AWS" satisfies "AWS Lambda" and "React.js" satisfies "React". Permissive
// on purpose: results always carry attribution for human review, so recall
// is favored over precision.
type SubstringRule struct{}

func (SubstringRule) Match(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// DefaultTokenOverlapThreshold is the strict lower bound on the overlap
// ratio. A ratio of exactly 0.5 does not match.
const DefaultTokenOverlapThreshold = 0.5

// TokenOverlapRule matches multi-word skill phrases by word-set overlap:
// the phrases are equivalent when they share at least one token and the
// intersection covers more than Threshold of the smaller token set. This
// tolerates paraphrasing ("Team Leadership" vs "Leadership of
// cross-functional teams"). Stop words are not stripped, a known source of
// false positives.
type TokenOverlapRule struct {
	Threshold float64
}

func (r TokenOverlapRule) Match(a, b string) bool {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}

	shared := 0
	for tok := range ta {
		if tb[tok] {
			shared++
		}
	}
	if shared == 0 {
		return false
	}

	smaller := len(ta)
	if len(tb) < smaller {
		smaller = len(tb)
	}

	return float64(shared)/float64(smaller) > r.Threshold
}

func tokenSet(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		tokens[tok] = true
	}
	return tokens
}
