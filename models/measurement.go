package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultMeasurementType is used when a measurement is captured without
// an explicit type.
const DefaultMeasurementType = "RL"

// Measurement (medição) is an append-only reading taken against a piece of
// equipment. ID is assigned by the store.
type Measurement struct {
	ID          int64              `json:"id"`
	UserID      string             `json:"user_id"`
	EquipID     string             `json:"equip_id"`
	DataHora    time.Time          `json:"data_hora"`
	TipoMedicao string             `json:"tipo_medicao"`
	Payload     MeasurementPayload `json:"payload"`
	// Aprovado is reserved for an approval flow and stays nil.
	Aprovado  *bool     `json:"aprovado"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Measurement model.
func (m Measurement) TableName() string {
	return "medicoes"
}

// MeasurementPayload holds the free-form fields captured with a reading.
// It is persisted as a JSON document in a single column.
type MeasurementPayload struct {
	Local      string `json:"local"`
	Observacao string `json:"observacao"`
	RL         string `json:"rl"`
}

// RLValue parses the retroreflection reading. Both "123.4" and "123,4"
// are accepted.
func (p MeasurementPayload) RLValue() (float64, bool) {
	raw := strings.ReplaceAll(strings.TrimSpace(p.RL), ",", ".")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Value implements [driver.Valuer].
func (p MeasurementPayload) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error marshaling measurement payload: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (p *MeasurementPayload) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = MeasurementPayload{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for measurement payload")
	}

	if len(raw) == 0 {
		*p = MeasurementPayload{}
		return nil
	}
	return json.Unmarshal(raw, p)
}
