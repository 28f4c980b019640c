package importer

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

// Suggest ranks existing members against a partial name query, best match
// first. Used by the review screen to let an operator re-point a duplicate
// candidate at a different member.
func Suggest(q string, existing []member.Member, limit int) []member.Member {
	if q == "" || len(existing) == 0 {
		return nil
	}

	words := make([]string, len(existing))
	for i, m := range existing {
		words[i] = m.Name()
	}
	ranks := fuzzy.RankFindNormalizedFold(q, words)
	sort.Sort(ranks)

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	result := make([]member.Member, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, existing[rank.OriginalIndex])
	}
	return result
}
