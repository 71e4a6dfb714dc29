package models

// MacroSplit is the share of total calories contributed by each macro.
type MacroSplit struct {
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// Dashboard is everything the presentation layer needs for one render.
type Dashboard struct {
	Rows                 []NamedNutritionRow `json:"rows"`
	TotalCalories        float64             `json:"total_calories"`
	AverageDailyCalories float64             `json:"average_daily_calories"`
	WeeklyTotals         NutritionRecord     `json:"weekly_totals"`
	AverageDaily         NutritionRecord     `json:"average_daily"`
	// MacroRatios is nil when the week has no calories.
	MacroRatios *MacroSplit `json:"macro_ratios,omitempty"`
}
