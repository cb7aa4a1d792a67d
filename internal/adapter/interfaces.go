// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the terminal client's view of the suite HTTP API.
//
// [SuiteAdapter] hides the transport from the client; [NewHTTPSuiteAdapter]
// implements it over REST. Error responses are mapped to the sentinels in
// errors.go, wrapped in an [*APIError] carrying the server's localized
// message, so callers can both match with [errors.Is] and show the message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-medlux/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/suite_adapter_mock.go -package=mock

// SuiteAdapter is the set of suite operations the terminal client uses.
// Every call after Login carries the stored session token.
type SuiteAdapter interface {
	// SetToken stores the bearer token attached to later requests.
	SetToken(token string)
	Token() string

	// Login opens a session and stores its token.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)
	// Logout closes the session and forgets the token, even when the
	// server call fails.
	Logout(ctx context.Context) error

	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	ListAssignments(ctx context.Context) ([]models.AssignmentView, error)
	EndAssignment(ctx context.Context, id string) (models.Assignment, error)

	VisibleEquipment(ctx context.Context) ([]models.Equipment, error)
	SaveMeasurement(ctx context.Context, req models.SaveMeasurementRequest) (models.Measurement, error)
	RecentMeasurements(ctx context.Context, limit int) ([]models.Measurement, error)

	// ReportURL returns the address of the printable report of equipID,
	// with the session token in the query string.
	ReportURL(equipID string) string

	Version(ctx context.Context) (models.VersionInfo, error)
}
