package service

import (
	"errors"
	"strings"

	"bukutamu/internal/domain"

	"github.com/go-playground/validator/v10"
)

// RegistrationForm is what the kiosk submits. Empty optional fields are stored as NULL.
type RegistrationForm struct {
	RegNumber     string `json:"regNumber"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	NIK           string `json:"nik"`
	Origin        string `json:"origin" validate:"required"`
	Position      string `json:"position"`
	Department    string `json:"bidang" validate:"omitempty,department"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Purpose       string `json:"purpose" validate:"required,purpose"`
	Satisfaction  string `json:"satisfaction" validate:"omitempty,satisfaction"`
}

var formValidate = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("purpose", oneOf(domain.PurposeOptions))
	_ = v.RegisterValidation("department", oneOf(domain.DepartmentOptions))
	_ = v.RegisterValidation("satisfaction", oneOf(domain.SatisfactionLevels))
	return v
}

func oneOf(options []string) validator.Func {
	set := make(map[string]struct{}, len(options))
	for _, o := range options {
		set[o] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}

// Normalize trims surrounding whitespace from every field.
func (f RegistrationForm) Normalize() RegistrationForm {
	f.RegNumber = strings.TrimSpace(f.RegNumber)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.NIK = strings.TrimSpace(f.NIK)
	f.Origin = strings.TrimSpace(f.Origin)
	f.Position = strings.TrimSpace(f.Position)
	f.Department = strings.TrimSpace(f.Department)
	f.ContactNumber = strings.TrimSpace(f.ContactNumber)
	f.Purpose = strings.TrimSpace(f.Purpose)
	f.Satisfaction = strings.TrimSpace(f.Satisfaction)
	return f
}

// Validate returns ErrIncompleteForm when any required field is empty and
// ErrInvalidOption when a select value is unknown. Field names are not reported.
func (f RegistrationForm) Validate() error {
	err := formValidate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return ErrIncompleteForm
		}
	}
	return ErrInvalidOption
}

// ToGuest builds the record to insert under regNumber.
func (f RegistrationForm) ToGuest(regNumber string) *domain.Guest {
	return &domain.Guest{
		RegNumber:     regNumber,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		NationalID:    optional(f.NIK),
		Origin:        f.Origin,
		Position:      optional(f.Position),
		Department:    optional(f.Department),
		ContactNumber: f.ContactNumber,
		Purpose:       f.Purpose,
		Satisfaction:  optional(f.Satisfaction),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
