package service

import (
	"github.com/MKhiriev/go-medlux/internal/config"
	"github.com/MKhiriev/go-medlux/internal/crypto"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/session"
	"github.com/MKhiriev/go-medlux/internal/store"
	"github.com/MKhiriev/go-medlux/internal/validators"
	"github.com/MKhiriev/go-medlux/models"
)

type Services struct {
	AuthService        AuthService
	UserService        UserService
	EquipmentService   EquipmentService
	AssignmentService  AssignmentService
	MeasurementService MeasurementService
	CriteriaService    CriteriaService
	ReportService      ReportService
	AppInfoService     AppInfoService
	HealthService      HealthService
}

func NewServices(
	gw *store.Gateway,
	sessions *session.Manager,
	hasher crypto.CredentialHasher,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Services {
	validator := validators.NewRequestValidator()
	criteria := NewCriteriaService(gw, logger)
	users := NewUserService(gw, hasher, validator, logger)

	return &Services{
		AuthService:        NewAuthService(gw, sessions, hasher, validator, logger),
		UserService:        users,
		EquipmentService:   NewEquipmentService(gw, validator, logger),
		AssignmentService:  NewAssignmentService(gw, users, validator, logger),
		MeasurementService: NewMeasurementService(gw, validator, cfg.App, logger),
		CriteriaService:    criteria,
		ReportService:      NewReportService(gw, criteria, logger),
		AppInfoService:     NewAppInfoService(cfg.App, buildInfo, logger),
		HealthService:      NewHealthService(gw.DB(), logger),
	}
}
