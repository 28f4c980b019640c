package importer

import "strings"

// NameSimilarity scores how alike two person names are, in [0,1]. It is a
// review-surfacing heuristic, not an identity resolver: exact match scores
// 1.0, containment 0.9, and otherwise tokens longer than two characters are
// matched one-to-one by containment in either direction.
func NameSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}

	tokensA := nameTokens(a)
	tokensB := nameTokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	used := make([]bool, len(tokensB))
	matched := 0
	for _, ta := range tokensA {
		for i, tb := range tokensB {
			if used[i] {
				continue
			}
			if strings.Contains(ta, tb) || strings.Contains(tb, ta) {
				used[i] = true
				matched++
				break
			}
		}
	}

	longest := len(tokensA)
	if len(tokensB) > longest {
		longest = len(tokensB)
	}
	return float64(matched) / float64(longest)
}

// nameTokens drops tokens of length <= 2 (initials and connective noise).
func nameTokens(s string) []string {
	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}
