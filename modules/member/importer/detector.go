package importer

import (
	"fmt"
	"math"
	"strings"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

// Signal weights for the multi-signal scan (tier 3).
const (
	weightName      = 40
	weightLocalPart = 20
	weightCity      = 10
	weightBirthDate = 20

	scoreExactEmail  = 100
	scoreExactMobile = 95

	// A record is a duplicate at or above this score; 80 and up is high
	// confidence.
	duplicateThreshold      = 50
	highConfidenceThreshold = 80

	nameReasonThreshold = 0.8
)

type Detection struct {
	IsDuplicate bool
	Matched     member.Member
	Score       int
	Reasons     []string
	Confidence  ConfidenceLevel
}

// DetectDuplicate compares one normalized import row against the existing
// member snapshot. Exact email and exact mobile are short-circuit tiers;
// otherwise every existing member is scored and the best match wins.
func DetectDuplicate(f member.Fields, existing []member.Member) Detection {
	email := strings.ToLower(strings.TrimSpace(f.Email))
	if email != "" {
		for _, m := range existing {
			if m.Email() != "" && m.Email() == email {
				return Detection{
					IsDuplicate: true,
					Matched:     m,
					Score:       scoreExactEmail,
					Reasons:     []string{"Exact email match"},
					Confidence:  ConfidenceHigh,
				}
			}
		}
	}

	mobile := member.NormalizeMobile(f.Mobile)
	if mobile != "" {
		for _, m := range existing {
			if m.Mobile() != "" && m.Mobile() == mobile {
				return Detection{
					IsDuplicate: true,
					Matched:     m,
					Score:       scoreExactMobile,
					Reasons:     []string{"Exact mobile number match"},
					Confidence:  ConfidenceHigh,
				}
			}
		}
	}

	var best Detection
	for _, m := range existing {
		score, reasons := scoreAgainst(f, m)
		if score > best.Score {
			best = Detection{Matched: m, Score: score, Reasons: reasons}
		}
	}

	best.Confidence = classify(best.Score)
	best.IsDuplicate = best.Score >= duplicateThreshold
	return best
}

func scoreAgainst(f member.Fields, m member.Member) (int, []string) {
	score := 0
	var reasons []string

	if sim := NameSimilarity(f.Name, m.Name()); sim > 0 {
		score += int(math.Round(sim * weightName))
		if sim > nameReasonThreshold {
			reasons = append(reasons, fmt.Sprintf("Name similarity %d%%", int(math.Round(sim*100))))
		}
	}

	// Local-part comparison is deliberately case-sensitive; only the domain
	// side of an address is case-insensitive per RFC.
	if lp := emailLocalPart(f.Email); lp != "" && lp == emailLocalPart(m.Email()) {
		score += weightLocalPart
		reasons = append(reasons, "Same email username")
	}

	if city := strings.TrimSpace(f.Postal.City); city != "" &&
		strings.EqualFold(city, m.PostalAddress().City) && m.PostalAddress().City != "" {
		score += weightCity
		reasons = append(reasons, "Same city")
	}

	if f.DateOfBirth != nil && m.DateOfBirth() != nil &&
		FormatDate(*f.DateOfBirth) == FormatDate(*m.DateOfBirth()) {
		score += weightBirthDate
		reasons = append(reasons, "Same date of birth")
	}

	return score, reasons
}

func classify(score int) ConfidenceLevel {
	switch {
	case score >= highConfidenceThreshold:
		return ConfidenceHigh
	case score >= duplicateThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func emailLocalPart(email string) string {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 {
		return ""
	}
	return email[:at]
}
