package importer

import (
	"regexp"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate applies the row-level rules independently and collects every
// violation; it never short-circuits. A row is usable by the duplicate
// detector only when Valid is true.
func Validate(raw RawRecord) ValidationResult {
	var errs []string
	var warnings []string

	if !raw.Has(ColName) {
		errs = append(errs, "name is required")
	}

	email := raw.Get(ColEmail)
	mobile := member.NormalizeMobile(raw.Get(ColMobile))
	if email == "" && mobile == "" {
		errs = append(errs, "either email or mobile is required")
	}
	if email != "" && !emailPattern.MatchString(email) {
		errs = append(errs, "email is not a valid address")
	}
	if raw.Has(ColMobile) && len(mobile) != 10 {
		errs = append(errs, "mobile must contain exactly 10 digits")
	}

	for _, col := range []string{ColJoinDate, ColDateOfBirth} {
		if !raw.Has(col) {
			continue
		}
		parsed := ParseFlexibleDate(raw.Get(col))
		if !parsed.Valid {
			errs = append(errs, col+" is not a recognizable date")
		} else if parsed.Ambiguous {
			warnings = append(warnings, col+" has an ambiguous day/month order; month-first was assumed")
		}
	}

	return ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}
