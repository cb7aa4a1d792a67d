package models

import "time"

// AssignmentKeySeparator joins user and equipment ids in an assignment key.
const AssignmentKeySeparator = "|"

// AssignmentKey builds the composite key of the (user, equipment) pair.
func AssignmentKey(userID, equipID string) string {
	return userID + AssignmentKeySeparator + equipID
}

// Assignment (vínculo) links one user to one piece of equipment.
// There is at most one record per pair; ending it flips Ativo and sets
// DataFim, and a later activation reuses the same record.
type Assignment struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	EquipID    string     `json:"equip_id"`
	Ativo      bool       `json:"ativo"`
	DataInicio time.Time  `json:"data_inicio"`
	DataFim    *time.Time `json:"data_fim"`
	Observacao string     `json:"observacao"`
}

// TableName returns the name of the database table
// associated with the Assignment model.
func (a Assignment) TableName() string {
	return "vinculos"
}

// AssignmentPeriod is an archived, ended assignment period. A row is
// appended every time an ended assignment is activated again.
type AssignmentPeriod struct {
	ID         int64     `json:"id"`
	VinculoID  string    `json:"vinculo_id"`
	UserID     string    `json:"user_id"`
	EquipID    string    `json:"equip_id"`
	DataInicio time.Time `json:"data_inicio"`
	DataFim    time.Time `json:"data_fim"`
	Observacao string    `json:"observacao"`
	ArchivedAt time.Time `json:"archived_at"`
}

// TableName returns the name of the database table
// associated with the AssignmentPeriod model.
func (p AssignmentPeriod) TableName() string {
	return "vinculo_periodos"
}

// AssignmentView is an assignment joined with the display names of the
// records it points to. Missing targets are rendered as placeholders.
type AssignmentView struct {
	Assignment
	UserNome     string `json:"user_nome"`
	EquipModelo  string `json:"equip_modelo"`
	UserMissing  bool   `json:"user_missing"`
	EquipMissing bool   `json:"equip_missing"`
}

// AssignmentOptions are the selection lists offered when creating an
// assignment: operators only, and every piece of equipment.
type AssignmentOptions struct {
	Operators []User      `json:"operators"`
	Equipment []Equipment `json:"equipamentos"`
}
