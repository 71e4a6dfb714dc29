package util

import (
	"encoding/json"
	"fmt"
	"os"

	"eating-helper/models"
)

// ReadWeeklyNutritionFromJSON loads the daily nutrition window from JSON on disk.
func ReadWeeklyNutritionFromJSON(filePath string) ([]models.DailyNutrition, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var days []models.DailyNutrition
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weekly nutrition: %w", err)
	}
	return days, nil
}

// ReadRecipesFromJSON loads a recipe list from JSON on disk.
func ReadRecipesFromJSON(filePath string) ([]models.Recipe, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipes: %w", err)
	}
	return recipes, nil
}
