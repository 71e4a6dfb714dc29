package nutrition

import "eating-helper/models"

// TotalCalories sums calories over days.
func TotalCalories(days []models.DailyNutrition) (float64, error) {
	if len(days) == 0 {
		return 0, ErrEmptyInput
	}
	var total float64
	for _, d := range days {
		total += d.Calories
	}
	return total, nil
}

// AverageDailyCalories is TotalCalories divided by the number of days. No rounding.
func AverageDailyCalories(days []models.DailyNutrition) (float64, error) {
	total, err := TotalCalories(days)
	if err != nil {
		return 0, err
	}
	return total / float64(len(days)), nil
}

// WeeklyTotals sums every nutrient over days.
func WeeklyTotals(days []models.DailyNutrition) (models.NutritionRecord, error) {
	if len(days) == 0 {
		return models.NutritionRecord{}, ErrEmptyInput
	}
	var total models.NutritionRecord
	for _, d := range days {
		total = total.Add(d.NutritionRecord)
	}
	return total, nil
}

// AverageDaily is WeeklyTotals divided by the number of days, per nutrient.
func AverageDaily(days []models.DailyNutrition) (models.NutritionRecord, error) {
	total, err := WeeklyTotals(days)
	if err != nil {
		return models.NutritionRecord{}, err
	}
	return total.Scale(1 / float64(len(days))), nil
}
