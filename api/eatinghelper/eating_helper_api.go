package eatinghelper

import (
	"context"

	"eating-helper/models"
)

const (
	WEEKLY_NUTRITION_ENDPOINT = "/api/nutrition"
	RECIPES_ENDPOINT          = "/api/recipes"
)

// EatingHelperAPI defines the read-only operations offered by the eating helper backend.
type EatingHelperAPI interface {
	// GetWeeklyNutrition returns the ordered daily window.
	GetWeeklyNutrition(ctx context.Context) ([]models.DailyNutrition, error)
	GetRecipes(ctx context.Context) ([]models.Recipe, error)
}
