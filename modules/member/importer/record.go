package importer

import (
	"strings"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

// Canonical column names. These are the schema contract between the export
// template and the validator/detector; renaming one breaks uploaded files.
const (
	ColName        = "name"
	ColEmail       = "email"
	ColMobile      = "mobile"
	ColDateOfBirth = "date_of_birth"
	ColJoinDate    = "join_date"
	ColOccupation  = "occupation"

	ColPostalLine1   = "postal_line1"
	ColPostalLine2   = "postal_line2"
	ColPostalCity    = "postal_city"
	ColPostalState   = "postal_state"
	ColPostalPincode = "postal_pincode"

	ColResidentialLine1   = "residential_line1"
	ColResidentialLine2   = "residential_line2"
	ColResidentialCity    = "residential_city"
	ColResidentialState   = "residential_state"
	ColResidentialPincode = "residential_pincode"
)

// Columns lists the canonical schema in template order.
var Columns = []string{
	ColName, ColEmail, ColMobile, ColDateOfBirth, ColJoinDate, ColOccupation,
	ColPostalLine1, ColPostalLine2, ColPostalCity, ColPostalState, ColPostalPincode,
	ColResidentialLine1, ColResidentialLine2, ColResidentialCity, ColResidentialState, ColResidentialPincode,
}

// headerAliases maps common caption variants onto canonical column names.
var headerAliases = map[string]string{
	"full_name":     ColName,
	"member_name":   ColName,
	"email_address": ColEmail,
	"e_mail":        ColEmail,
	"phone":         ColMobile,
	"phone_number":  ColMobile,
	"mobile_number": ColMobile,
	"dob":           ColDateOfBirth,
	"birth_date":    ColDateOfBirth,
	"joining_date":  ColJoinDate,
	"date_of_join":  ColJoinDate,
}

// NormalizeHeader lowercases a column caption and squeezes separators to
// underscores, then resolves known aliases.
func NormalizeHeader(caption string) string {
	s := strings.ToLower(strings.TrimSpace(caption))
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '/':
			return '_'
		}
		return r
	}, s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "_")
	if canonical, ok := headerAliases[s]; ok {
		return canonical
	}
	return s
}

func (r RawRecord) Get(col string) string {
	return strings.TrimSpace(r.Fields[col])
}

func (r RawRecord) Has(col string) bool {
	return r.Get(col) != ""
}

// MemberFields normalizes a raw row into the fixed internal schema. Dates that
// fail to parse come out nil; the validator reports them separately.
func (r RawRecord) MemberFields() member.Fields {
	f := member.Fields{
		Name:       r.Get(ColName),
		Email:      strings.ToLower(r.Get(ColEmail)),
		Mobile:     member.NormalizeMobile(r.Get(ColMobile)),
		Occupation: r.Get(ColOccupation),
		Postal: member.Address{
			Line1:   r.Get(ColPostalLine1),
			Line2:   r.Get(ColPostalLine2),
			City:    r.Get(ColPostalCity),
			State:   r.Get(ColPostalState),
			Pincode: r.Get(ColPostalPincode),
		},
		Residential: member.Address{
			Line1:   r.Get(ColResidentialLine1),
			Line2:   r.Get(ColResidentialLine2),
			City:    r.Get(ColResidentialCity),
			State:   r.Get(ColResidentialState),
			Pincode: r.Get(ColResidentialPincode),
		},
	}

	if dob := ParseFlexibleDate(r.Get(ColDateOfBirth)); dob.Valid {
		t := dob.Value
		f.DateOfBirth = &t
	}
	if jd := ParseFlexibleDate(r.Get(ColJoinDate)); jd.Valid {
		t := jd.Value
		f.JoinDate = &t
	}

	return f
}
