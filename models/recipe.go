package models

// Recipe matches one element of the GET /api/recipes response.
type Recipe struct {
	Name      string          `json:"name"`
	Nutrition NutritionRecord `json:"nutrition"`
}
