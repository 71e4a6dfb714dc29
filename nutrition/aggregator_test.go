package nutrition

import (
	"errors"
	"testing"

	"eating-helper/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalCalories_SampleWeek(t *testing.T) {
	total, err := TotalCalories(sampleWeek())

	require.NoError(t, err)
	assert.Equal(t, 14550.0, total)
}

func TestAverageDailyCalories_SampleWeek(t *testing.T) {
	avg, err := AverageDailyCalories(sampleWeek())

	require.NoError(t, err)
	assert.InDelta(t, 2078.5714285714, avg, 1e-9)
}

func TestAggregates_MatchDefinition(t *testing.T) {
	tests := []struct {
		name     string
		calories []float64
	}{
		{"single day", []float64{1234.5}},
		{"two days", []float64{1000, 3000}},
		{"zero calories", []float64{0, 0, 0}},
		{"fractional", []float64{0.1, 0.2, 0.3, 0.4}},
		{"longer than a week", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			days := make([]models.DailyNutrition, len(test.calories))
			var want float64
			for i, c := range test.calories {
				days[i] = models.NewDailyNutrition(c, 0, 0, 0)
				want += c
			}

			total, err := TotalCalories(days)
			require.NoError(t, err)
			assert.Equal(t, want, total)

			avg, err := AverageDailyCalories(days)
			require.NoError(t, err)
			assert.Equal(t, total/float64(len(days)), avg)
		})
	}
}

func TestAggregates_EmptyInput(t *testing.T) {
	_, err := TotalCalories(nil)
	assert.True(t, errors.Is(err, ErrEmptyInput), "TotalCalories: got %v", err)

	_, err = AverageDailyCalories([]models.DailyNutrition{})
	assert.True(t, errors.Is(err, ErrEmptyInput), "AverageDailyCalories: got %v", err)

	_, err = WeeklyTotals(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = AverageDaily(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestWeeklyTotalsAndAverageDaily(t *testing.T) {
	totals, err := WeeklyTotals(sampleWeek())
	require.NoError(t, err)
	assert.Equal(t, models.NutritionRecord{
		Calories:      14550,
		Protein:       875,
		Carbohydrates: 1605,
		Fat:           503,
	}, totals)

	avg, err := AverageDaily(sampleWeek())
	require.NoError(t, err)
	assert.InDelta(t, 14550.0/7, avg.Calories, 1e-9)
	assert.InDelta(t, 125.0, avg.Protein, 1e-9)
	assert.InDelta(t, 1605.0/7, avg.Carbohydrates, 1e-9)
	assert.InDelta(t, 503.0/7, avg.Fat, 1e-9)
}

func TestMacroRatios(t *testing.T) {
	split, err := MacroRatios(models.NutritionRecord{Calories: 2000, Protein: 150, Carbohydrates: 200, Fat: 60})

	require.NoError(t, err)
	assert.InDelta(t, 0.30, split.Protein, 1e-9)
	assert.InDelta(t, 0.40, split.Carbohydrates, 1e-9)
	assert.InDelta(t, 0.27, split.Fat, 1e-9)
}

func TestMacroRatios_ZeroCalories(t *testing.T) {
	_, err := MacroRatios(models.NutritionRecord{Protein: 10})

	assert.ErrorIs(t, err, ErrZeroCalories)
}
