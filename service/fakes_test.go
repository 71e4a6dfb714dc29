package services

import (
	"context"
	"sync"
	"sync/atomic"

	"eating-helper/models"
)

// fakeAPI implements eatinghelper.EatingHelperAPI with canned responses.
type fakeAPI struct {
	mu         sync.Mutex
	days       []models.DailyNutrition
	recipes    []models.Recipe
	daysErr    error
	recipesErr error

	weeklyCalls  atomic.Int32
	recipesCalls atomic.Int32
}

func (f *fakeAPI) GetWeeklyNutrition(ctx context.Context) ([]models.DailyNutrition, error) {
	f.weeklyCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.daysErr != nil {
		return nil, f.daysErr
	}
	return f.days, nil
}

func (f *fakeAPI) GetRecipes(ctx context.Context) ([]models.Recipe, error) {
	f.recipesCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recipesErr != nil {
		return nil, f.recipesErr
	}
	return f.recipes, nil
}

func sampleWeek() []models.DailyNutrition {
	calories := []float64{2000, 2100, 1900, 2200, 2050, 1800, 2500}
	days := make([]models.DailyNutrition, len(calories))
	for i, c := range calories {
		days[i] = models.NewDailyNutrition(c, 120, 220, 70)
	}
	return days
}

func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		{Name: "chicken stir fry", Nutrition: models.NutritionRecord{Calories: 650, Protein: 45, Carbohydrates: 60, Fat: 20}},
		{Name: "overnight oats", Nutrition: models.NutritionRecord{Calories: 400, Protein: 20, Carbohydrates: 55, Fat: 10}},
	}
}
