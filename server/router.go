package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NutritionHandler is implemented by handlers.DashboardHandler.
type NutritionHandler interface {
	GetIndex(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetWeeklyChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	handler NutritionHandler
	router  *mux.Router
	logger  *zap.Logger
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	handler NutritionHandler,
	router *mux.Router,
	logger *zap.Logger) *Router {
	return &Router{
		handler: handler,
		router:  router,
		logger:  logger,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestIDMiddleware, AccessLogMiddleware(r.logger))

	// all dashboard routes accept ?sort={name|calories|protein|carbohydrates|fat}&order={asc|desc}
	r.router.HandleFunc("/", r.handler.GetIndex).Methods("GET")
	r.router.HandleFunc("/v1/dashboard", r.handler.GetDashboard).Methods("GET")
	r.router.HandleFunc("/v1/charts/weekly", r.handler.GetWeeklyChart).Methods("GET")

	r.router.HandleFunc("/ping", r.handler.Ping).Methods("GET")
}
