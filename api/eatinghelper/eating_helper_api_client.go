package eatinghelper

import (
	"context"

	"eating-helper/api"
	"eating-helper/models"
)

// EatingHelperApiClient embeds the common HTTPClient
type EatingHelperApiClient struct {
	*api.HTTPClient
}

// NewEatingHelperApiClient creates a new instance of EatingHelperApiClient
func NewEatingHelperApiClient(httpClient *api.HTTPClient) *EatingHelperApiClient {
	return &EatingHelperApiClient{
		HTTPClient: httpClient,
	}
}

// GetWeeklyNutrition retrieves the daily nutrition window.
func (c *EatingHelperApiClient) GetWeeklyNutrition(ctx context.Context) ([]models.DailyNutrition, error) {
	var response []models.DailyNutrition
	if err := c.Request(ctx, "GET", WEEKLY_NUTRITION_ENDPOINT, nil, nil, &response); err != nil {
		return nil, &api.UpstreamFetchError{Endpoint: WEEKLY_NUTRITION_ENDPOINT, Err: err}
	}
	return response, nil
}

// GetRecipes retrieves every recipe with its nutrition.
func (c *EatingHelperApiClient) GetRecipes(ctx context.Context) ([]models.Recipe, error) {
	var response []models.Recipe
	if err := c.Request(ctx, "GET", RECIPES_ENDPOINT, nil, nil, &response); err != nil {
		return nil, &api.UpstreamFetchError{Endpoint: RECIPES_ENDPOINT, Err: err}
	}
	return response, nil
}
