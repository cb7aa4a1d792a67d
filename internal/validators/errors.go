package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidPIN is returned for a PIN that is not exactly four ASCII digits.
	ErrInvalidPIN = errors.New("pin must be exactly 4 digits")

	ErrEmptyUserID  = errors.New("user id is required")
	ErrEmptyNome    = errors.New("name is required")
	ErrEmptyEquipID = errors.New("equipment id is required")
	ErrEmptyLocal   = errors.New("measurement location is required")
	ErrInvalidRole  = errors.New("invalid role")
)

// IsMissingField reports whether err names an absent required field.
func IsMissingField(err error) bool {
	return errors.Is(err, ErrEmptyUserID) ||
		errors.Is(err, ErrEmptyNome) ||
		errors.Is(err, ErrEmptyEquipID) ||
		errors.Is(err, ErrEmptyLocal)
}
