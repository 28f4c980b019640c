package persistence

import (
	"context"
	"errors"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
	"github.com/samajseva/trust-console/modules/member/infrastructure/persistence/models"
	"github.com/samajseva/trust-console/pkg/composables"
)

const memberColumns = `
	id, name, email, mobile, occupation, date_of_birth, join_date,
	postal_line1, postal_line2, postal_city, postal_state, postal_pincode,
	residential_line1, residential_line2, residential_city, residential_state, residential_pincode,
	status, created_at, updated_at`

type MemberRepository struct{}

func NewMemberRepository() member.Repository {
	return &MemberRepository{}
}

func (r *MemberRepository) GetPaginated(ctx context.Context, params *member.FindParams) ([]member.Member, int64, error) {
	if params == nil {
		params = &member.FindParams{}
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	pattern := "%" + params.Q + "%"
	rows, err := tx.Query(ctx, `
		SELECT `+memberColumns+`
		FROM members
		WHERE $1 = '' OR name ILIKE $2 OR email ILIKE $2 OR mobile ILIKE $2
		ORDER BY name, id
		LIMIT $3 OFFSET $4`,
		params.Q, pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	out, err := scanMembers(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM members
		WHERE $1 = '' OR name ILIKE $2 OR email ILIKE $2 OR mobile ILIKE $2`,
		params.Q, pattern,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (member.Member, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return member.Member{}, err
	}

	row := tx.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.Member{}, member.ErrNotFound
		}
		return member.Member{}, err
	}
	return m, nil
}

// List loads the full member set for duplicate detection and suggestions.
func (r *MemberRepository) List(ctx context.Context) ([]member.Member, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	return scanMembers(rows)
}

func (r *MemberRepository) Create(ctx context.Context, m member.Member) (member.Member, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return member.Member{}, err
	}

	row := toDBMember(m)
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	now := time.Now()

	res := tx.QueryRow(ctx, `
		INSERT INTO members (`+memberColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING `+memberColumns,
		row.ID, row.Name, row.Email, row.Mobile, row.Occupation, row.DateOfBirth, row.JoinDate,
		row.PostalLine1, row.PostalLine2, row.PostalCity, row.PostalState, row.PostalPincode,
		row.ResidentialLine1, row.ResidentialLine2, row.ResidentialCity, row.ResidentialState, row.ResidentialPincode,
		row.Status, now, now,
	)
	created, err := scanMember(res)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return member.Member{}, member.ErrEmailTaken
		}
		return member.Member{}, gerrors.Wrap(err, "create member")
	}
	return created, nil
}

func (r *MemberRepository) Update(ctx context.Context, m member.Member) (member.Member, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return member.Member{}, err
	}

	row := toDBMember(m)
	res := tx.QueryRow(ctx, `
		UPDATE members SET
			name = $2, email = $3, mobile = $4, occupation = $5,
			date_of_birth = $6, join_date = $7,
			postal_line1 = $8, postal_line2 = $9, postal_city = $10, postal_state = $11, postal_pincode = $12,
			residential_line1 = $13, residential_line2 = $14, residential_city = $15,
			residential_state = $16, residential_pincode = $17,
			status = $18, updated_at = $19
		WHERE id = $1
		RETURNING `+memberColumns,
		row.ID, row.Name, row.Email, row.Mobile, row.Occupation,
		row.DateOfBirth, row.JoinDate,
		row.PostalLine1, row.PostalLine2, row.PostalCity, row.PostalState, row.PostalPincode,
		row.ResidentialLine1, row.ResidentialLine2, row.ResidentialCity,
		row.ResidentialState, row.ResidentialPincode,
		row.Status, time.Now(),
	)
	updated, err := scanMember(res)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.Member{}, member.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return member.Member{}, member.ErrEmailTaken
		}
		return member.Member{}, gerrors.Wrap(err, "update member")
	}
	return updated, nil
}

func scanMember(row pgx.Row) (member.Member, error) {
	var m models.Member
	if err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Mobile, &m.Occupation, &m.DateOfBirth, &m.JoinDate,
		&m.PostalLine1, &m.PostalLine2, &m.PostalCity, &m.PostalState, &m.PostalPincode,
		&m.ResidentialLine1, &m.ResidentialLine2, &m.ResidentialCity, &m.ResidentialState, &m.ResidentialPincode,
		&m.Status, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return member.Member{}, err
	}
	return toDomainMember(m), nil
}

func scanMembers(rows pgx.Rows) ([]member.Member, error) {
	defer rows.Close()

	var out []member.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
