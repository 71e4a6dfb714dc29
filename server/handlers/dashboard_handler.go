package handlers

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"

	"eating-helper/api"
	"eating-helper/models"
	"eating-helper/nutrition"
	"eating-helper/util"

	"go.uber.org/zap"
)

const (
	SORT_QUERY_ARG  = "sort"
	ORDER_QUERY_ARG = "order"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").Funcs(template.FuncMap{
		"round":   func(v float64) int64 { return int64(math.Round(v)) },
		"percent": func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) },
	}).ParseFS(templatesFS, "templates/dashboard.html"),
)

// DashboardBuilder is the service the handler renders from.
type DashboardBuilder interface {
	BuildDashboard(ctx context.Context) (*models.Dashboard, error)
	WeeklyNutrition(ctx context.Context) ([]models.DailyNutrition, error)
}

type summaryItem struct {
	Item   string
	Weekly float64
	Daily  float64
}

type dashboardPage struct {
	Dashboard *models.Dashboard
	Summary   []summaryItem
	Rows      []models.NamedNutritionRow
	NextOrder string
}

type DashboardHandler struct {
	service DashboardBuilder
	logger  *zap.Logger
}

func NewDashboardHandler(service DashboardBuilder, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger.Named("dashboard_handler")}
}

// GetIndex handles GET / with the HTML dashboard.
func (h *DashboardHandler) GetIndex(w http.ResponseWriter, r *http.Request) {
	dashboard, rows, status, err := h.load(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	order := ORDER_ASC
	if r.URL.Query().Get(ORDER_QUERY_ARG) != ORDER_DESC && r.URL.Query().Get(SORT_QUERY_ARG) != "" {
		order = ORDER_DESC
	}
	page := dashboardPage{
		Dashboard: dashboard,
		Summary:   weeklySummary(dashboard),
		Rows:      rows,
		NextOrder: order,
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		h.logger.Error("failed to render dashboard template", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetDashboard handles GET /v1/dashboard with the same data as JSON.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, rows, status, err := h.load(r)
	if err != nil {
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	out := *dashboard
	out.Rows = rows
	writeJSON(w, http.StatusOK, out)
}

// GetWeeklyChart handles GET /v1/charts/weekly.
func (h *DashboardHandler) GetWeeklyChart(w http.ResponseWriter, r *http.Request) {
	days, err := h.service.WeeklyNutrition(r.Context())
	if err != nil {
		status := statusForError(err)
		h.logger.Warn("failed to load weekly nutrition", zap.Int("status", status), zap.Error(err))
		http.Error(w, err.Error(), status)
		return
	}

	var buf bytes.Buffer
	if err := util.RenderWeeklyChart(&buf, days); err != nil {
		h.logger.Error("failed to render weekly chart", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Ping handles GET /ping
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// load builds the dashboard and applies the requested sort to a copy of its rows.
func (h *DashboardHandler) load(r *http.Request) (*models.Dashboard, []models.NamedNutritionRow, int, error) {
	vals := r.URL.Query()

	dashboard, err := h.service.BuildDashboard(r.Context())
	if err != nil {
		status := statusForError(err)
		h.logger.Warn("failed to build dashboard", zap.Int("status", status), zap.Error(err))
		return nil, nil, status, err
	}

	rows, err := sortRows(dashboard.Rows, vals.Get(SORT_QUERY_ARG), vals.Get(ORDER_QUERY_ARG))
	if err != nil {
		return nil, nil, http.StatusBadRequest, err
	}
	return dashboard, rows, http.StatusOK, nil
}

func weeklySummary(d *models.Dashboard) []summaryItem {
	return []summaryItem{
		{"Calories", d.WeeklyTotals.Calories, d.AverageDaily.Calories},
		{"Protein", d.WeeklyTotals.Protein, d.AverageDaily.Protein},
		{"Carbohydrates", d.WeeklyTotals.Carbohydrates, d.AverageDaily.Carbohydrates},
		{"Fat", d.WeeklyTotals.Fat, d.AverageDaily.Fat},
	}
}

// statusForError maps upstream failures and upstream contract violations to 502.
func statusForError(err error) int {
	var fetchErr *api.UpstreamFetchError
	var sizeErr *nutrition.InvalidWindowSizeError
	switch {
	case errors.As(err, &fetchErr), errors.As(err, &sizeErr), errors.Is(err, nutrition.ErrEmptyInput):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
