package models

import "time"

// Equipment is a measuring instrument tracked by the suite.
// Its ID is chosen by an admin and stored upper-cased.
type Equipment struct {
	ID                   string    `json:"id"`
	Tipo                 string    `json:"tipo"`
	Modelo               string    `json:"modelo"`
	NumeroSerie          string    `json:"numeroSerie"`
	Fabricante           string    `json:"fabricante"`
	ResponsavelAtual     string    `json:"responsavelAtual"`
	DataUltimaCalibracao string    `json:"dataUltimaCalibracao"`
	Observacoes          string    `json:"observacoes"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Equipment model.
func (e Equipment) TableName() string {
	return "equipamentos"
}

// Label is the short "ID • modelo" text used in selection lists.
func (e Equipment) Label() string {
	modelo := e.Modelo
	if modelo == "" {
		modelo = PlaceholderModel
	}
	return e.ID + " • " + modelo
}

// Placeholders rendered when a weak reference cannot be resolved.
const (
	PlaceholderUser      = "Usuário"
	PlaceholderEquipment = "Equipamento"
	PlaceholderModel     = "Sem modelo"
)
