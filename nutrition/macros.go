package nutrition

import "eating-helper/models"

// Energy per gram of each macro, in kcal.
const (
	KcalPerGramProtein       = 4
	KcalPerGramCarbohydrates = 4
	KcalPerGramFat           = 9
)

// MacroRatios returns the fraction of r's calories coming from each macro.
func MacroRatios(r models.NutritionRecord) (models.MacroSplit, error) {
	if r.Calories == 0 {
		return models.MacroSplit{}, ErrZeroCalories
	}
	return models.MacroSplit{
		Protein:       r.Protein * KcalPerGramProtein / r.Calories,
		Carbohydrates: r.Carbohydrates * KcalPerGramCarbohydrates / r.Calories,
		Fat:           r.Fat * KcalPerGramFat / r.Calories,
	}, nil
}
