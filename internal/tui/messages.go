package tui

import (
	"github.com/MKhiriev/go-medlux/models"
)

// LoginResult is produced by the login command.
type LoginResult struct {
	Session models.Session
	Err     error
}

type equipmentLoadedMsg struct {
	items []models.Equipment
	err   error
}

type assignmentsLoadedMsg struct {
	items []models.AssignmentView
	err   error
}

type measurementsLoadedMsg struct {
	items []models.Measurement
	err   error
}

// visibleLoadedMsg carries the equipment offered by the measurement form.
type visibleLoadedMsg struct {
	items []models.Equipment
	err   error
}

type measurementSavedMsg struct {
	item models.Measurement
	err  error
}

type assignmentEndedMsg struct {
	item models.Assignment
	err  error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
