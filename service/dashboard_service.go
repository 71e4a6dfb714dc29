package services

import (
	"context"
	"errors"

	"eating-helper/models"
	"eating-helper/nutrition"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DashboardService assembles the rows and aggregates shown on the dashboard.
type DashboardService struct {
	provider NutritionProvider
	logger   *zap.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(provider NutritionProvider, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		provider: provider,
		logger:   logger.Named("dashboard_service"),
	}
}

// FetchAll issues both fetches concurrently and waits for both. The first
// failure is returned as is.
func (ds *DashboardService) FetchAll(ctx context.Context) ([]models.DailyNutrition, []models.Recipe, error) {
	var (
		days    []models.DailyNutrition
		recipes []models.Recipe
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		days, err = ds.provider.WeeklyNutrition(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recipes, err = ds.provider.Recipes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return days, recipes, nil
}

// BuildDashboard fetches, projects and aggregates.
func (ds *DashboardService) BuildDashboard(ctx context.Context) (*models.Dashboard, error) {
	days, recipes, err := ds.FetchAll(ctx)
	if err != nil {
		ds.logger.Error("failed to fetch nutrition data", zap.Error(err))
		return nil, err
	}

	dashboard, err := Summarize(days, recipes)
	if err != nil {
		ds.logger.Error("failed to build dashboard", zap.Int("days", len(days)), zap.Error(err))
		return nil, err
	}

	ds.logger.Debug("dashboard built",
		zap.Int("rows", len(dashboard.Rows)),
		zap.Float64("total_calories", dashboard.TotalCalories),
	)
	return dashboard, nil
}

// WeeklyNutrition returns only the daily window, validated.
func (ds *DashboardService) WeeklyNutrition(ctx context.Context) ([]models.DailyNutrition, error) {
	days, err := ds.provider.WeeklyNutrition(ctx)
	if err != nil {
		return nil, err
	}
	if err := nutrition.ValidateWindow(days); err != nil {
		return nil, err
	}
	return days, nil
}

// Summarize is the pure part of BuildDashboard.
func Summarize(days []models.DailyNutrition, recipes []models.Recipe) (*models.Dashboard, error) {
	rows, err := nutrition.Project(days, recipes)
	if err != nil {
		return nil, err
	}

	total, err := nutrition.TotalCalories(days)
	if err != nil {
		return nil, err
	}
	average, err := nutrition.AverageDailyCalories(days)
	if err != nil {
		return nil, err
	}
	weeklyTotals, err := nutrition.WeeklyTotals(days)
	if err != nil {
		return nil, err
	}
	averageDaily, err := nutrition.AverageDaily(days)
	if err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		Rows:                 rows,
		TotalCalories:        total,
		AverageDailyCalories: average,
		WeeklyTotals:         weeklyTotals,
		AverageDaily:         averageDaily,
	}

	split, err := nutrition.MacroRatios(weeklyTotals)
	switch {
	case err == nil:
		dashboard.MacroRatios = &split
	case !errors.Is(err, nutrition.ErrZeroCalories):
		return nil, err
	}
	return dashboard, nil
}
