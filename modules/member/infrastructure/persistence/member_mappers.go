package persistence

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
	"github.com/samajseva/trust-console/modules/member/infrastructure/persistence/models"
)

func toDBMember(m member.Member) models.Member {
	return models.Member{
		ID:                 m.ID(),
		Name:               m.Name(),
		Email:              m.Email(),
		Mobile:             m.Mobile(),
		Occupation:         m.Occupation(),
		DateOfBirth:        pgDate(m.DateOfBirth()),
		JoinDate:           pgDate(m.JoinDate()),
		PostalLine1:        m.PostalAddress().Line1,
		PostalLine2:        m.PostalAddress().Line2,
		PostalCity:         m.PostalAddress().City,
		PostalState:        m.PostalAddress().State,
		PostalPincode:      m.PostalAddress().Pincode,
		ResidentialLine1:   m.ResidentialAddress().Line1,
		ResidentialLine2:   m.ResidentialAddress().Line2,
		ResidentialCity:    m.ResidentialAddress().City,
		ResidentialState:   m.ResidentialAddress().State,
		ResidentialPincode: m.ResidentialAddress().Pincode,
		Status:             string(m.Status()),
		CreatedAt:          m.CreatedAt(),
		UpdatedAt:          m.UpdatedAt(),
	}
}

func toDomainMember(row models.Member) member.Member {
	return member.Hydrate(
		row.ID,
		member.Fields{
			Name:        row.Name,
			Email:       row.Email,
			Mobile:      row.Mobile,
			Occupation:  row.Occupation,
			DateOfBirth: goDate(row.DateOfBirth),
			JoinDate:    goDate(row.JoinDate),
			Postal: member.Address{
				Line1:   row.PostalLine1,
				Line2:   row.PostalLine2,
				City:    row.PostalCity,
				State:   row.PostalState,
				Pincode: row.PostalPincode,
			},
			Residential: member.Address{
				Line1:   row.ResidentialLine1,
				Line2:   row.ResidentialLine2,
				City:    row.ResidentialCity,
				State:   row.ResidentialState,
				Pincode: row.ResidentialPincode,
			},
		},
		member.Status(row.Status),
		row.CreatedAt,
		row.UpdatedAt,
	)
}

func pgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func goDate(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
