package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-medlux/internal/config"
	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/internal/utils"
	"github.com/MKhiriev/go-medlux/models"
)

type httpSuiteAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSuiteAdapter returns a REST [SuiteAdapter] for the server at
// cfg.HTTPAddress. An address without a scheme is taken as http.
func NewHTTPSuiteAdapter(cfg config.Adapter, logger *logger.Logger) (SuiteAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpSuiteAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSuiteAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpSuiteAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpSuiteAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	var s models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&s).
		Post("/api/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		// the body carries the same token
		token = s.Token
	}
	if token == "" {
		return models.Session{}, fmt.Errorf("login response without token")
	}

	s.Token = token
	h.SetToken(token)
	h.logger.Debug().Str("user_id", s.Identity.UserID).Msg("session opened")
	return s, nil
}

func (h *httpSuiteAdapter) Logout(ctx context.Context) error {
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpSuiteAdapter) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	var list []models.Equipment
	return list, h.getJSON(ctx, "/api/equipamentos", &list)
}

func (h *httpSuiteAdapter) ListAssignments(ctx context.Context) ([]models.AssignmentView, error) {
	var list []models.AssignmentView
	return list, h.getJSON(ctx, "/api/vinculos", &list)
}

func (h *httpSuiteAdapter) EndAssignment(ctx context.Context, id string) (models.Assignment, error) {
	var a models.Assignment

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&a).
		Post("/api/vinculos/{id}/encerrar")
	if err != nil {
		return models.Assignment{}, fmt.Errorf("end assignment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}

func (h *httpSuiteAdapter) VisibleEquipment(ctx context.Context) ([]models.Equipment, error) {
	var list []models.Equipment
	return list, h.getJSON(ctx, "/api/medicoes/equipamentos", &list)
}

func (h *httpSuiteAdapter) SaveMeasurement(ctx context.Context, req models.SaveMeasurementRequest) (models.Measurement, error) {
	var m models.Measurement

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&m).
		Post("/api/medicoes")
	if err != nil {
		return models.Measurement{}, fmt.Errorf("save measurement request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Measurement{}, err
	}
	return m, nil
}

func (h *httpSuiteAdapter) RecentMeasurements(ctx context.Context, limit int) ([]models.Measurement, error) {
	var list []models.Measurement

	req := h.authedRequest(ctx).SetResult(&list)
	if limit > 0 {
		req.SetQueryParam("limite", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/medicoes")
	if err != nil {
		return nil, fmt.Errorf("recent measurements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return list, nil
}

func (h *httpSuiteAdapter) ReportURL(equipID string) string {
	q := url.Values{}
	if token := h.Token(); token != "" {
		q.Set("token", token)
	}

	u := h.baseURL + "/relatorio/" + url.PathEscape(equipID)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (h *httpSuiteAdapter) Version(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo

	resp, err := h.client.R().SetContext(ctx).SetResult(&info).Get("/api/version")
	if err != nil {
		return models.VersionInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionInfo{}, err
	}
	return info, nil
}

func (h *httpSuiteAdapter) getJSON(ctx context.Context, path string, dst any) error {
	resp, err := h.authedRequest(ctx).SetResult(dst).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpSuiteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
