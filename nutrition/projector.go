package nutrition

import "eating-helper/models"

// DayRow builds the row for the day at position index of the window.
func DayRow(index int, day models.DailyNutrition) models.NamedNutritionRow {
	return models.NamedNutritionRow{
		Name:            WeekdayLabel(index),
		NutritionRecord: day.NutritionRecord,
	}
}

// RecipeRow builds the row for a recipe, title-casing its name.
func RecipeRow(recipe models.Recipe) models.NamedNutritionRow {
	return models.NamedNutritionRow{
		Name:            TitleCase(recipe.Name),
		NutritionRecord: recipe.Nutrition,
	}
}

// Project merges the weekly window and the recipes into one table: days
// first in window order, then recipes in input order. Nothing is sorted,
// merged or dropped.
func Project(days []models.DailyNutrition, recipes []models.Recipe) ([]models.NamedNutritionRow, error) {
	if err := ValidateWindow(days); err != nil {
		return nil, err
	}

	rows := make([]models.NamedNutritionRow, 0, len(days)+len(recipes))
	for i, d := range days {
		rows = append(rows, DayRow(i, d))
	}
	for _, r := range recipes {
		rows = append(rows, RecipeRow(r))
	}
	return rows, nil
}
