package member

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/samajseva/trust-console/pkg/constants"
)

type AddressDTO struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

func (d AddressDTO) toAddress() Address {
	return Address{
		Line1:   strings.TrimSpace(d.Line1),
		Line2:   strings.TrimSpace(d.Line2),
		City:    strings.TrimSpace(d.City),
		State:   strings.TrimSpace(d.State),
		Pincode: strings.TrimSpace(d.Pincode),
	}
}

type CreateDTO struct {
	Name        string     `json:"name" validate:"required"`
	Email       string     `json:"email" validate:"omitempty,email"`
	Mobile      string     `json:"mobile" validate:"omitempty"`
	Occupation  string     `json:"occupation"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	JoinDate    *time.Time `json:"join_date"`
	Postal      AddressDTO `json:"postal_address"`
	Residential AddressDTO `json:"residential_address"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Mobile = NormalizeMobile(d.Mobile)
	d.Occupation = strings.TrimSpace(d.Occupation)
}

// Ok validates the DTO and returns field error messages keyed by field name.
// A member must carry at least one contact channel.
func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	out := map[string]string{}
	if errs := constants.Validate.Struct(d); errs != nil {
		for _, fieldErr := range errs.(validator.ValidationErrors) {
			out[fieldErr.Field()] = validationMessage(fieldErr)
		}
	}
	if d.Email == "" && d.Mobile == "" {
		out["Email"] = "either email or mobile is required"
	}
	if d.Mobile != "" && len(d.Mobile) != 10 {
		out["Mobile"] = "mobile must contain exactly 10 digits"
	}

	return out, len(out) == 0
}

func (d *CreateDTO) Fields() Fields {
	return Fields{
		Name:        d.Name,
		Email:       d.Email,
		Mobile:      d.Mobile,
		Occupation:  d.Occupation,
		DateOfBirth: d.DateOfBirth,
		JoinDate:    d.JoinDate,
		Postal:      d.Postal.toAddress(),
		Residential: d.Residential.toAddress(),
	}
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
