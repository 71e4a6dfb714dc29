package models

// DailyNutrition is one day of the weekly window. Its position in the
// window is implicit in the slice order returned by the API.
type DailyNutrition struct {
	NutritionRecord
}

// NewDailyNutrition is a shorthand used by fixtures and tests.
func NewDailyNutrition(calories, protein, carbohydrates, fat float64) DailyNutrition {
	return DailyNutrition{NutritionRecord{
		Calories:      calories,
		Protein:       protein,
		Carbohydrates: carbohydrates,
		Fat:           fat,
	}}
}
