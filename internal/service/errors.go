package service

import "errors"

var (
	// ErrUnauthenticated is returned when the context carries no identity.
	ErrUnauthenticated = errors.New("no authenticated identity")

	// ErrAdminOnly is matched by every [AdminOnlyError].
	ErrAdminOnly = errors.New("operation requires the admin role")

	ErrInvalidPIN   = errors.New("invalid pin")
	ErrUserNotFound = errors.New("user not found")
	ErrWrongPIN     = errors.New("wrong pin")
	ErrUserExists   = errors.New("user already exists")

	ErrUserFieldsRequired = errors.New("user id and name are required")

	ErrEquipmentIDRequired = errors.New("equipment id is required")
	ErrEquipmentExists     = errors.New("equipment already exists")
	ErrEquipmentIDInUse    = errors.New("equipment id already in use")
	ErrRenameNotConfirmed  = errors.New("equipment rename not confirmed")
	ErrEquipmentNotFound   = errors.New("equipment not found")

	ErrAssignmentFieldsRequired = errors.New("user and equipment are required")
	ErrAssignmentActive         = errors.New("assignment already active")
	ErrAssignmentNotFound       = errors.New("assignment not found")

	ErrMeasurementFieldsRequired = errors.New("equipment and location are required")
	ErrNoVisibleEquipment        = errors.New("no equipment available to the user")
	ErrEquipmentNotVisible       = errors.New("equipment not available to the user")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// AdminOnlyError is returned when a non-admin identity calls an admin-only
// operation. Message is the localized text shown to the user.
type AdminOnlyError struct {
	Message string
}

func (e *AdminOnlyError) Error() string {
	return ErrAdminOnly.Error()
}

// Unwrap lets errors.Is match [ErrAdminOnly].
func (e *AdminOnlyError) Unwrap() error {
	return ErrAdminOnly
}
