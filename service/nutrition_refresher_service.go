package services

import (
	"context"
	"fmt"
	"time"

	"eating-helper/api/eatinghelper"
	"eating-helper/nutrition"

	"go.uber.org/zap"
)

// NutritionRefresherService periodically overwrites the cache with fresh upstream data.
type NutritionRefresherService struct {
	api    eatinghelper.EatingHelperAPI
	cache  NutritionCache
	logger *zap.Logger
}

// NewNutritionRefresherService constructs a new refresher with dependencies.
func NewNutritionRefresherService(
	api eatinghelper.EatingHelperAPI,
	cache NutritionCache,
	logger *zap.Logger,
) *NutritionRefresherService {
	return &NutritionRefresherService{
		api:    api,
		cache:  cache,
		logger: logger.Named("nutrition_refresher"),
	}
}

// StartPeriodicJob runs Refresh every interval until ctx is cancelled.
// The returned channel is closed once the loop has exited.
func (nr *NutritionRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		nr.startPeriodicJob(ctx, interval)
	}()
	return done
}

func (nr *NutritionRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			nr.logger.Info("stopping periodic nutrition refresher")
			return
		case <-ticker.C:
			nr.logger.Info("running periodic nutrition refresher job")
			if err := nr.Refresh(ctx); err != nil {
				nr.logger.Warn("refresh returned error", zap.Error(err))
			} else {
				nr.logger.Info("refresh completed successfully")
			}
		}
	}
}

// Refresh fetches both datasets from upstream and caches them. A failure of
// one dataset does not stop the other from being refreshed; the first error
// is returned.
func (nr *NutritionRefresherService) Refresh(ctx context.Context) error {
	weeklyErr := nr.refreshWeeklyNutrition(ctx)
	recipesErr := nr.refreshRecipes(ctx)
	if weeklyErr != nil {
		return weeklyErr
	}
	return recipesErr
}

func (nr *NutritionRefresherService) refreshWeeklyNutrition(ctx context.Context) error {
	days, err := nr.api.GetWeeklyNutrition(ctx)
	if err != nil {
		return err
	}

	// if upstream broke the window contract, drop stale snapshots
	if err := nutrition.ValidateWindow(days); err != nil {
		nr.logger.Warn("upstream returned invalid weekly window, removing cache", zap.Int("days", len(days)))
		if ierr := nr.cache.Invalidate(ctx); ierr != nil {
			nr.logger.Warn("failed to invalidate cache", zap.Error(ierr))
		}
		return err
	}

	if err := nr.cache.SetWeeklyNutrition(ctx, days); err != nil {
		return fmt.Errorf("failed to cache weekly nutrition: %w", err)
	}
	nr.logger.Info("weekly nutrition cached", zap.Int("days", len(days)))
	return nil
}

func (nr *NutritionRefresherService) refreshRecipes(ctx context.Context) error {
	recipes, err := nr.api.GetRecipes(ctx)
	if err != nil {
		return err
	}
	if err := nr.cache.SetRecipes(ctx, recipes); err != nil {
		return fmt.Errorf("failed to cache recipes: %w", err)
	}
	nr.logger.Info("recipes cached", zap.Int("recipes", len(recipes)))
	return nil
}
