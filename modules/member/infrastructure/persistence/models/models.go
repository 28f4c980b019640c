package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Member struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	Mobile             string
	Occupation         string
	DateOfBirth        pgtype.Date
	JoinDate           pgtype.Date
	PostalLine1        string
	PostalLine2        string
	PostalCity         string
	PostalState        string
	PostalPincode      string
	ResidentialLine1   string
	ResidentialLine2   string
	ResidentialCity    string
	ResidentialState   string
	ResidentialPincode string
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
