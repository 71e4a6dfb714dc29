package models

// NamedNutritionRow is the flattened table row shared by days and recipes.
type NamedNutritionRow struct {
	Name string `json:"name"`
	NutritionRecord
}
