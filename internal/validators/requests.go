package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-medlux/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserID  = "user_id"
	FieldNome    = "nome"
	FieldPIN     = "pin"
	FieldEquipID = "equip_id"
	FieldLocal   = "local"
	FieldRole    = "role"
)

// pinPattern accepts exactly four ASCII digits.
var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// ValidPIN reports whether pin is exactly four ASCII digits.
func ValidPIN(pin string) bool {
	return pinPattern.MatchString(pin)
}

// RequestValidator implements [Validator] for the suite request models.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Unknown types yield ErrUnsupportedType.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.CreateUserRequest:
		return v.validateCreateUser(value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUser(*value, fields...)

	case models.ResetPINRequest:
		return check(fieldsOr(fields, FieldPIN), map[string]func() error{
			FieldPIN: pinRule(value.PIN),
		})
	case *models.ResetPINRequest:
		return v.Validate(ctx, *value, fields...)

	case models.SaveEquipmentRequest:
		return check(fieldsOr(fields, FieldEquipID), map[string]func() error{
			FieldEquipID: required(value.ID, ErrEmptyEquipID),
		})
	case *models.SaveEquipmentRequest:
		return v.Validate(ctx, *value, fields...)

	case models.CreateAssignmentRequest:
		return check(fieldsOr(fields, FieldUserID, FieldEquipID), map[string]func() error{
			FieldUserID:  required(value.UserID, ErrEmptyUserID),
			FieldEquipID: required(value.EquipID, ErrEmptyEquipID),
		})
	case *models.CreateAssignmentRequest:
		return v.Validate(ctx, *value, fields...)

	case models.SaveMeasurementRequest:
		return check(fieldsOr(fields, FieldEquipID, FieldLocal), map[string]func() error{
			FieldEquipID: required(value.EquipID, ErrEmptyEquipID),
			FieldLocal:   required(value.Local, ErrEmptyLocal),
		})
	case *models.SaveMeasurementRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateLogin checks the PIN format only by default: an empty or unknown
// user id is reported by the lookup, not here.
func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	return check(fieldsOr(fields, FieldPIN), map[string]func() error{
		FieldPIN:    pinRule(req.PIN),
		FieldUserID: required(req.UserID, ErrEmptyUserID),
	})
}

func (v *RequestValidator) validateCreateUser(req models.CreateUserRequest, fields ...string) error {
	return check(fieldsOr(fields, FieldUserID, FieldNome, FieldPIN), map[string]func() error{
		FieldUserID: required(req.UserID, ErrEmptyUserID),
		FieldNome:   required(req.Nome, ErrEmptyNome),
		FieldPIN:    pinRule(req.PIN),
		FieldRole: func() error {
			if req.Role != "" && !req.Role.Valid() {
				return ErrInvalidRole
			}
			return nil
		},
	})
}

// check runs the rules named by fields in order and returns the first error.
func check(fields []string, rules map[string]func() error) error {
	for _, f := range fields {
		rule, ok := rules[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err := rule(); err != nil {
			return err
		}
	}
	return nil
}

func fieldsOr(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func required(value string, err error) func() error {
	return func() error {
		if strings.TrimSpace(value) == "" {
			return err
		}
		return nil
	}
}

func pinRule(pin string) func() error {
	return func() error {
		if !ValidPIN(pin) {
			return ErrInvalidPIN
		}
		return nil
	}
}
