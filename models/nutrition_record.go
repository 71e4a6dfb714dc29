package models

// NutritionRecord is one nutrition snapshot. Calories are kcal, the rest grams.
type NutritionRecord struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// Add returns the field-wise sum of r and other.
func (r NutritionRecord) Add(other NutritionRecord) NutritionRecord {
	return NutritionRecord{
		Calories:      r.Calories + other.Calories,
		Protein:       r.Protein + other.Protein,
		Carbohydrates: r.Carbohydrates + other.Carbohydrates,
		Fat:           r.Fat + other.Fat,
	}
}

// Scale returns r with every field multiplied by factor.
func (r NutritionRecord) Scale(factor float64) NutritionRecord {
	return NutritionRecord{
		Calories:      r.Calories * factor,
		Protein:       r.Protein * factor,
		Carbohydrates: r.Carbohydrates * factor,
		Fat:           r.Fat * factor,
	}
}
