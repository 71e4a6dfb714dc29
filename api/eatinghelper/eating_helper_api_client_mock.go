package eatinghelper

import (
	"context"

	"eating-helper/api"
	"eating-helper/models"
	"eating-helper/util"
)

// EatingHelperApiClientMock serves the upstream responses from JSON files on disk.
type EatingHelperApiClientMock struct {
	weeklyNutritionPath string
	recipesPath         string
}

// NewEatingHelperApiClientMock creates a new instance of EatingHelperApiClientMock
func NewEatingHelperApiClientMock(weeklyNutritionPath, recipesPath string) *EatingHelperApiClientMock {
	return &EatingHelperApiClientMock{
		weeklyNutritionPath: weeklyNutritionPath,
		recipesPath:         recipesPath,
	}
}

func (c *EatingHelperApiClientMock) GetWeeklyNutrition(ctx context.Context) ([]models.DailyNutrition, error) {
	if err := ctx.Err(); err != nil {
		return nil, &api.UpstreamFetchError{Endpoint: WEEKLY_NUTRITION_ENDPOINT, Err: err}
	}
	days, err := util.ReadWeeklyNutritionFromJSON(c.weeklyNutritionPath)
	if err != nil {
		return nil, &api.UpstreamFetchError{Endpoint: WEEKLY_NUTRITION_ENDPOINT, Err: err}
	}
	return days, nil
}

func (c *EatingHelperApiClientMock) GetRecipes(ctx context.Context) ([]models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, &api.UpstreamFetchError{Endpoint: RECIPES_ENDPOINT, Err: err}
	}
	recipes, err := util.ReadRecipesFromJSON(c.recipesPath)
	if err != nil {
		return nil, &api.UpstreamFetchError{Endpoint: RECIPES_ENDPOINT, Err: err}
	}
	return recipes, nil
}
