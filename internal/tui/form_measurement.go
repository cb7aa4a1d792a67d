package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-medlux/models"
)

// measurement form fields; fieldEquipment is the selector, the rest are inputs.
const (
	fieldEquipment = iota
	fieldTipo
	fieldLocal
	fieldRL
	fieldObservacao
	fieldCount
)

type measurementForm struct {
	equipment []models.Equipment
	equipIdx  int

	// inputs are indexed by field-1
	inputs     []textinput.Model
	focus      int
	submitting bool
	loading    bool
}

func newMeasurementForm() measurementForm {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		return in
	}

	tipo := newInput(models.DefaultMeasurementType, 16)
	tipo.SetValue(models.DefaultMeasurementType)

	return measurementForm{
		inputs: []textinput.Model{
			tipo,
			newInput("local da medição", 120),
			newInput("valor RL (ex.: 123,4)", 16),
			newInput("observação", 240),
		},
		loading: true,
	}
}

func (f *measurementForm) setEquipment(items []models.Equipment) {
	f.loading = false
	f.equipment = items
	if f.equipIdx >= len(items) {
		f.equipIdx = 0
	}
}

func (f *measurementForm) selected() (models.Equipment, bool) {
	if len(f.equipment) == 0 {
		return models.Equipment{}, false
	}
	return f.equipment[f.equipIdx], true
}

// preselect moves the selector to equipID when it is offered.
func (f *measurementForm) preselect(equipID string) {
	for i, e := range f.equipment {
		if e.ID == equipID {
			f.equipIdx = i
			return
		}
	}
}

func (f *measurementForm) cycle(delta int) {
	n := len(f.equipment)
	if n == 0 {
		return
	}
	f.equipIdx = (f.equipIdx + delta + n) % n
}

func (f *measurementForm) focusNext() {
	f.setFocus((f.focus + 1) % fieldCount)
}

func (f *measurementForm) focusPrev() {
	f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
}

func (f *measurementForm) setFocus(field int) {
	if f.focus != fieldEquipment {
		f.inputs[f.focus-1].Blur()
	}
	f.focus = field
	if f.focus != fieldEquipment {
		f.inputs[f.focus-1].Focus()
	}
}

func (f measurementForm) request() models.SaveMeasurementRequest {
	e, _ := f.selected()
	return models.SaveMeasurementRequest{
		EquipID:     e.ID,
		TipoMedicao: strings.TrimSpace(f.inputs[fieldTipo-1].Value()),
		Local:       strings.TrimSpace(f.inputs[fieldLocal-1].Value()),
		RL:          strings.TrimSpace(f.inputs[fieldRL-1].Value()),
		Observacao:  strings.TrimSpace(f.inputs[fieldObservacao-1].Value()),
	}
}

func (f measurementForm) View() string {
	var b strings.Builder

	marker := func(field int) string {
		if f.focus == field {
			return "> "
		}
		return "  "
	}

	b.WriteString(marker(fieldEquipment))
	b.WriteString("Equipamento │ ")
	switch {
	case f.loading:
		b.WriteString("carregando...")
	case len(f.equipment) == 0:
		b.WriteString("nenhum equipamento disponível")
	default:
		e, _ := f.selected()
		b.WriteString("◀ " + e.Label() + " ▶")
	}
	b.WriteString("\n")

	labels := []string{"Tipo       ", "Local      ", "RL         ", "Observação "}
	for i, in := range f.inputs {
		b.WriteString(marker(i + 1))
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if f.submitting {
		b.WriteString("\n[Salvando...]")
	} else {
		b.WriteString("\n[Salvar]")
	}
	return b.String()
}
