package models

import "fmt"

// Criterion is a norm-derived minimum threshold used by the report.
type Criterion struct {
	ID    string  `json:"id" yaml:"id"`
	Norm  string  `json:"norm" yaml:"norm"`
	Type  string  `json:"type" yaml:"type"`
	Color string  `json:"color" yaml:"color"`
	Min   float64 `json:"min" yaml:"min"`
}

// TableName returns the name of the database table
// associated with the Criterion model.
func (c Criterion) TableName() string {
	return "criteria"
}

// DefaultCriterionID builds the id given to a criterion saved without one.
func DefaultCriterionID(typ, color string, index int) string {
	return fmt.Sprintf("%s-%s-%d", typ, color, index)
}
