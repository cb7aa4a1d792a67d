package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	UserID string `json:"user_id"`
	PIN    string `json:"pin"`
}

// CreateUserRequest is the body of POST /api/usuarios.
// An empty Role creates an operator.
type CreateUserRequest struct {
	UserID string `json:"user_id"`
	Nome   string `json:"nome"`
	PIN    string `json:"pin"`
	Role   Role   `json:"role,omitempty"`
}

// ResetPINRequest is the body of PUT /api/usuarios/{id}/pin.
type ResetPINRequest struct {
	PIN string `json:"pin"`
}

// SaveEquipmentRequest is the body of POST and PUT /api/equipamentos.
//
// ConfirmRename must be true when Equipment.ID differs from the id in the
// URL; otherwise the rename is refused.
type SaveEquipmentRequest struct {
	Equipment
	ConfirmRename bool `json:"confirmar_renomeio"`
}

// CreateAssignmentRequest is the body of POST /api/vinculos.
type CreateAssignmentRequest struct {
	UserID     string `json:"user_id"`
	EquipID    string `json:"equip_id"`
	Observacao string `json:"observacao"`
}

// SaveMeasurementRequest is the body of POST /api/medicoes.
type SaveMeasurementRequest struct {
	EquipID     string `json:"equip_id"`
	TipoMedicao string `json:"tipo_medicao"`
	Local       string `json:"local"`
	Observacao  string `json:"observacao"`
	RL          string `json:"rl"`
}

// MessageResponse carries a localized status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a localized error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
