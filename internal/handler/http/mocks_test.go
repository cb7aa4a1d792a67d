package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-medlux/internal/config"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/report"
	"github.com/MKhiriev/go-medlux/internal/service"
	"github.com/MKhiriev/go-medlux/internal/session"
	"github.com/MKhiriev/go-medlux/models"
)

// Service mocks. Each method delegates to a function field that tests set
// as needed; an unset field panics, which flags an unexpected call.

type mockAuthService struct {
	loginFn   func(ctx context.Context, req models.LoginRequest) (models.Session, error)
	logoutFn  func(ctx context.Context, token string) error
	sessionFn func(ctx context.Context, token string) (models.Identity, error)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}

func (m *mockAuthService) Session(ctx context.Context, token string) (models.Identity, error) {
	return m.sessionFn(ctx, token)
}

type mockUserService struct {
	listFn      func(ctx context.Context) ([]models.User, error)
	createFn    func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	resetPINFn  func(ctx context.Context, userID string, req models.ResetPINRequest) error
	operatorsFn func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) { return m.listFn(ctx) }

func (m *mockUserService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return m.createFn(ctx, req)
}

func (m *mockUserService) ResetPIN(ctx context.Context, userID string, req models.ResetPINRequest) error {
	return m.resetPINFn(ctx, userID, req)
}

func (m *mockUserService) Operators(ctx context.Context) ([]models.User, error) {
	return m.operatorsFn(ctx)
}

type mockEquipmentService struct {
	listFn   func(ctx context.Context) ([]models.Equipment, error)
	getFn    func(ctx context.Context, id string) (models.Equipment, error)
	createFn func(ctx context.Context, req models.SaveEquipmentRequest) (models.Equipment, error)
	updateFn func(ctx context.Context, originalID string, req models.SaveEquipmentRequest) (models.Equipment, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockEquipmentService) List(ctx context.Context) ([]models.Equipment, error) {
	return m.listFn(ctx)
}

func (m *mockEquipmentService) Get(ctx context.Context, id string) (models.Equipment, error) {
	return m.getFn(ctx, id)
}

func (m *mockEquipmentService) Create(ctx context.Context, req models.SaveEquipmentRequest) (models.Equipment, error) {
	return m.createFn(ctx, req)
}

func (m *mockEquipmentService) Update(ctx context.Context, originalID string, req models.SaveEquipmentRequest) (models.Equipment, error) {
	return m.updateFn(ctx, originalID, req)
}

func (m *mockEquipmentService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockAssignmentService struct {
	listFn    func(ctx context.Context) ([]models.AssignmentView, error)
	createFn  func(ctx context.Context, req models.CreateAssignmentRequest) (models.Assignment, error)
	endFn     func(ctx context.Context, id string) (models.Assignment, error)
	optionsFn func(ctx context.Context) (models.AssignmentOptions, error)
	historyFn func(ctx context.Context, id string) ([]models.AssignmentPeriod, error)
}

func (m *mockAssignmentService) List(ctx context.Context) ([]models.AssignmentView, error) {
	return m.listFn(ctx)
}

func (m *mockAssignmentService) Create(ctx context.Context, req models.CreateAssignmentRequest) (models.Assignment, error) {
	return m.createFn(ctx, req)
}

func (m *mockAssignmentService) End(ctx context.Context, id string) (models.Assignment, error) {
	return m.endFn(ctx, id)
}

func (m *mockAssignmentService) Options(ctx context.Context) (models.AssignmentOptions, error) {
	return m.optionsFn(ctx)
}

func (m *mockAssignmentService) History(ctx context.Context, id string) ([]models.AssignmentPeriod, error) {
	return m.historyFn(ctx, id)
}

type mockMeasurementService struct {
	visibleFn func(ctx context.Context) ([]models.Equipment, error)
	saveFn    func(ctx context.Context, req models.SaveMeasurementRequest) (models.Measurement, error)
	recentFn  func(ctx context.Context, limit int) ([]models.Measurement, error)
}

func (m *mockMeasurementService) VisibleEquipment(ctx context.Context) ([]models.Equipment, error) {
	return m.visibleFn(ctx)
}

func (m *mockMeasurementService) Save(ctx context.Context, req models.SaveMeasurementRequest) (models.Measurement, error) {
	return m.saveFn(ctx, req)
}

func (m *mockMeasurementService) Recent(ctx context.Context, limit int) ([]models.Measurement, error) {
	return m.recentFn(ctx, limit)
}

type mockCriteriaService struct {
	loadFn   func(ctx context.Context) ([]models.Criterion, error)
	byNormFn func(ctx context.Context, norm string) ([]models.Criterion, error)
	saveFn   func(ctx context.Context, items []models.Criterion) ([]models.Criterion, error)
}

func (m *mockCriteriaService) Load(ctx context.Context) ([]models.Criterion, error) {
	return m.loadFn(ctx)
}

func (m *mockCriteriaService) ByNorm(ctx context.Context, norm string) ([]models.Criterion, error) {
	return m.byNormFn(ctx, norm)
}

func (m *mockCriteriaService) Save(ctx context.Context, items []models.Criterion) ([]models.Criterion, error) {
	return m.saveFn(ctx, items)
}

type mockReportService struct {
	buildFn  func(ctx context.Context, equipID string) (report.Report, error)
	renderFn func(ctx context.Context, w io.Writer, equipID string) error
}

func (m *mockReportService) Build(ctx context.Context, equipID string) (report.Report, error) {
	return m.buildFn(ctx, equipID)
}

func (m *mockReportService) Render(ctx context.Context, w io.Writer, equipID string) error {
	return m.renderFn(ctx, w, equipID)
}

type mockAppInfoService struct {
	info models.VersionInfo
}

func (m *mockAppInfoService) Version(context.Context) models.VersionInfo {
	return m.info
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(context.Context) error {
	return m.err
}

// Fixtures.

var (
	adminIdentity    = models.Identity{UserID: "RANIERI", Nome: "Ranieri", Role: models.RoleAdmin}
	operatorIdentity = models.Identity{UserID: "ANA", Nome: "Ana", Role: models.RoleOperator}
)

const (
	adminToken    = "admin-token"
	operatorToken = "operator-token"
)

// sessionAuth resolves adminToken and operatorToken; any other token is
// anonymous.
func sessionAuth() *mockAuthService {
	return &mockAuthService{
		sessionFn: func(_ context.Context, token string) (models.Identity, error) {
			switch token {
			case adminToken:
				return adminIdentity, nil
			case operatorToken:
				return operatorIdentity, nil
			}
			return models.Identity{}, &session.RedirectError{Target: service.LoginPath}
		},
	}
}

// newTestHandler fills the unset services of svcs with defaults so the
// router can be built.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AuthService == nil {
		svcs.AuthService = sessionAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{info: models.VersionInfo{Version: "test"}}
	}
	if svcs.HealthService == nil {
		svcs.HealthService = &mockHealthService{}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// serve sends a request through the full router. A non-empty token is sent
// as a bearer token.
func serve(t *testing.T, h *Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// withIdentity returns r carrying identity, as the auth middleware leaves it.
func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	return r.WithContext(session.WithIdentity(r.Context(), identity))
}
