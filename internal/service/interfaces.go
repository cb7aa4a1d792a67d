package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-medlux/internal/report"
	"github.com/MKhiriev/go-medlux/models"
)

// Every operation taking a context reads the caller identity from it
// (see session.WithIdentity). Admin-only operations fail with an
// [*AdminOnlyError] for any other identity.

type AuthService interface {
	// Login opens a session for the user whose PIN matches.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)
	Logout(ctx context.Context, token string) error
	// Session returns the identity of token or a *session.RedirectError.
	Session(ctx context.Context, token string) (models.Identity, error)
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	ResetPIN(ctx context.Context, userID string, req models.ResetPINRequest) error
	Operators(ctx context.Context) ([]models.User, error)
}

type EquipmentService interface {
	List(ctx context.Context) ([]models.Equipment, error)
	Get(ctx context.Context, id string) (models.Equipment, error)
	Create(ctx context.Context, req models.SaveEquipmentRequest) (models.Equipment, error)
	// Update saves the record stored under originalID. A different
	// req.ID renames it and needs req.ConfirmRename.
	Update(ctx context.Context, originalID string, req models.SaveEquipmentRequest) (models.Equipment, error)
	Delete(ctx context.Context, id string) error
}

type AssignmentService interface {
	List(ctx context.Context) ([]models.AssignmentView, error)
	Create(ctx context.Context, req models.CreateAssignmentRequest) (models.Assignment, error)
	End(ctx context.Context, id string) (models.Assignment, error)
	Options(ctx context.Context) (models.AssignmentOptions, error)
	History(ctx context.Context, id string) ([]models.AssignmentPeriod, error)
}

type MeasurementService interface {
	VisibleEquipment(ctx context.Context) ([]models.Equipment, error)
	Save(ctx context.Context, req models.SaveMeasurementRequest) (models.Measurement, error)
	// Recent returns up to limit measurements, newest first. A limit below
	// one uses the configured default.
	Recent(ctx context.Context, limit int) ([]models.Measurement, error)
}

type CriteriaService interface {
	// Load returns every criterion, seeding the defaults into an empty store.
	Load(ctx context.Context) ([]models.Criterion, error)
	ByNorm(ctx context.Context, norm string) ([]models.Criterion, error)
	Save(ctx context.Context, items []models.Criterion) ([]models.Criterion, error)
}

type ReportService interface {
	Build(ctx context.Context, equipID string) (report.Report, error)
	Render(ctx context.Context, w io.Writer, equipID string) error
}

type AppInfoService interface {
	Version(ctx context.Context) models.VersionInfo
}

type HealthService interface {
	Check(ctx context.Context) error
}
