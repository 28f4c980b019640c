package member

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Address is a postal or residential address attached to a member.
type Address struct {
	Line1   string
	Line2   string
	City    string
	State   string
	Pincode string
}

func (a Address) IsZero() bool {
	return a.Line1 == "" && a.Line2 == "" && a.City == "" && a.State == "" && a.Pincode == ""
}

type Member struct {
	id          uuid.UUID
	name        string
	email       string
	mobile      string
	occupation  string
	dateOfBirth *time.Time
	joinDate    *time.Time
	postal      Address
	residential Address
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

type Fields struct {
	Name        string
	Email       string
	Mobile      string
	Occupation  string
	DateOfBirth *time.Time
	JoinDate    *time.Time
	Postal      Address
	Residential Address
}

func New(f Fields) Member {
	return Member{
		name:        strings.TrimSpace(f.Name),
		email:       normalizeEmail(f.Email),
		mobile:      NormalizeMobile(f.Mobile),
		occupation:  strings.TrimSpace(f.Occupation),
		dateOfBirth: f.DateOfBirth,
		joinDate:    f.JoinDate,
		postal:      f.Postal,
		residential: f.Residential,
		status:      StatusActive,
	}
}

func Hydrate(
	id uuid.UUID,
	f Fields,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) Member {
	m := New(f)
	m.id = id
	m.status = status
	m.createdAt = createdAt
	m.updatedAt = updatedAt
	return m
}

func (m Member) ID() uuid.UUID           { return m.id }
func (m Member) Name() string            { return m.name }
func (m Member) Email() string           { return m.email }
func (m Member) Mobile() string          { return m.mobile }
func (m Member) Occupation() string      { return m.occupation }
func (m Member) DateOfBirth() *time.Time { return m.dateOfBirth }
func (m Member) JoinDate() *time.Time    { return m.joinDate }
func (m Member) PostalAddress() Address  { return m.postal }
func (m Member) ResidentialAddress() Address {
	return m.residential
}
func (m Member) Status() Status       { return m.status }
func (m Member) CreatedAt() time.Time { return m.createdAt }
func (m Member) UpdatedAt() time.Time { return m.updatedAt }
func (m Member) IsZero() bool         { return m.id == uuid.Nil && m.name == "" }

// WithFields returns a copy of m carrying the new field values, keeping
// identity and timestamps. Used by the import pipeline's update path.
func (m Member) WithFields(f Fields) Member {
	updated := New(f)
	updated.id = m.id
	updated.status = m.status
	updated.createdAt = m.createdAt
	updated.updatedAt = m.updatedAt
	return updated
}

func normalizeEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// NormalizeMobile strips every non-digit character.
func NormalizeMobile(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
