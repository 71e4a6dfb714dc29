package services

import (
	"context"
	"errors"

	"eating-helper/api/eatinghelper"
	"eating-helper/db"
	"eating-helper/models"
	"eating-helper/nutrition"

	"go.uber.org/zap"
)

// NutritionProvider supplies the two datasets a dashboard is built from.
type NutritionProvider interface {
	WeeklyNutrition(ctx context.Context) ([]models.DailyNutrition, error)
	Recipes(ctx context.Context) ([]models.Recipe, error)
}

// NutritionCache is the storage used by NutritionSource and the refresher.
type NutritionCache interface {
	GetWeeklyNutrition(ctx context.Context) ([]models.DailyNutrition, error)
	SetWeeklyNutrition(ctx context.Context, days []models.DailyNutrition) error
	GetRecipes(ctx context.Context) ([]models.Recipe, error)
	SetRecipes(ctx context.Context, recipes []models.Recipe) error
	Invalidate(ctx context.Context) error
}

// NutritionSource reads through an optional cache to the eating helper API.
type NutritionSource struct {
	api    eatinghelper.EatingHelperAPI
	cache  NutritionCache
	logger *zap.Logger
}

// NewNutritionSource builds a NutritionSource. cache may be nil to always hit the API.
func NewNutritionSource(api eatinghelper.EatingHelperAPI, cache NutritionCache, logger *zap.Logger) *NutritionSource {
	return &NutritionSource{
		api:    api,
		cache:  cache,
		logger: logger.Named("nutrition_source"),
	}
}

func (s *NutritionSource) WeeklyNutrition(ctx context.Context) ([]models.DailyNutrition, error) {
	if s.cache != nil {
		days, err := s.cache.GetWeeklyNutrition(ctx)
		if err == nil {
			s.logger.Debug("weekly nutrition served from cache")
			return days, nil
		}
		s.logCacheReadError("weekly nutrition", err)
	}

	days, err := s.api.GetWeeklyNutrition(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// A malformed window is returned to the caller but not kept.
		if verr := nutrition.ValidateWindow(days); verr != nil {
			s.logger.Warn("not caching invalid weekly window", zap.Int("days", len(days)))
		} else if err := s.cache.SetWeeklyNutrition(ctx, days); err != nil {
			s.logger.Warn("failed to cache weekly nutrition", zap.Error(err))
		}
	}
	return days, nil
}

func (s *NutritionSource) Recipes(ctx context.Context) ([]models.Recipe, error) {
	if s.cache != nil {
		recipes, err := s.cache.GetRecipes(ctx)
		if err == nil {
			s.logger.Debug("recipes served from cache", zap.Int("recipes", len(recipes)))
			return recipes, nil
		}
		s.logCacheReadError("recipes", err)
	}

	recipes, err := s.api.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRecipes(ctx, recipes); err != nil {
			s.logger.Warn("failed to cache recipes", zap.Error(err))
		}
	}
	return recipes, nil
}

func (s *NutritionSource) logCacheReadError(what string, err error) {
	if errors.Is(err, db.ErrCacheMiss) {
		s.logger.Debug("cache miss", zap.String("dataset", what))
		return
	}
	s.logger.Warn("cache read failed, falling back to upstream", zap.String("dataset", what), zap.Error(err))
}
