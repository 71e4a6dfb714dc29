package handlers

import (
	"testing"

	"eating-helper/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsNamed(names ...string) []models.NamedNutritionRow {
	rows := make([]models.NamedNutritionRow, len(names))
	for i, n := range names {
		rows[i] = models.NamedNutritionRow{Name: n, NutritionRecord: models.NutritionRecord{Calories: float64(len(n))}}
	}
	return rows
}

func names(rows []models.NamedNutritionRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestSortRows(t *testing.T) {
	rows := rowsNamed("Sat", "Chicken Stir Fry", "apple", "Oats")

	tests := []struct {
		key, order string
		want       []string
	}{
		{"", "", []string{"Sat", "Chicken Stir Fry", "apple", "Oats"}},
		{"name", "asc", []string{"apple", "Chicken Stir Fry", "Oats", "Sat"}},
		{"name", "desc", []string{"Sat", "Oats", "Chicken Stir Fry", "apple"}},
		// ties keep input order
		{"calories", "", []string{"Sat", "Oats", "apple", "Chicken Stir Fry"}},
		{"calories", "desc", []string{"Chicken Stir Fry", "apple", "Oats", "Sat"}},
	}

	for _, test := range tests {
		t.Run(test.key+"_"+test.order, func(t *testing.T) {
			got, err := sortRows(rows, test.key, test.order)
			require.NoError(t, err)
			assert.Equal(t, test.want, names(got))
		})
	}

	assert.Equal(t, []string{"Sat", "Chicken Stir Fry", "apple", "Oats"}, names(rows))
}

func TestSortRows_Invalid(t *testing.T) {
	_, err := sortRows(rowsNamed("a"), "sodium", "")
	assert.Error(t, err)

	_, err = sortRows(rowsNamed("a"), "fat", "sideways")
	assert.Error(t, err)
}
