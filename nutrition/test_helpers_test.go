package nutrition

import "eating-helper/models"

// sampleWeek has calories 2000, 2100, 1900, 2200, 2050, 1800, 2500.
func sampleWeek() []models.DailyNutrition {
	return []models.DailyNutrition{
		models.NewDailyNutrition(2000, 120, 220, 70),
		models.NewDailyNutrition(2100, 130, 230, 72),
		models.NewDailyNutrition(1900, 110, 210, 65),
		models.NewDailyNutrition(2200, 140, 240, 75),
		models.NewDailyNutrition(2050, 125, 225, 71),
		models.NewDailyNutrition(1800, 100, 200, 60),
		models.NewDailyNutrition(2500, 150, 280, 90),
	}
}
