package handlers

import (
	"fmt"
	"sort"
	"strings"

	"eating-helper/models"
)

const (
	ORDER_ASC  = "asc"
	ORDER_DESC = "desc"
)

var rowSortKeys = map[string]func(a, b models.NamedNutritionRow) bool{
	"name":          func(a, b models.NamedNutritionRow) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	"calories":      func(a, b models.NamedNutritionRow) bool { return a.Calories < b.Calories },
	"protein":       func(a, b models.NamedNutritionRow) bool { return a.Protein < b.Protein },
	"carbohydrates": func(a, b models.NamedNutritionRow) bool { return a.Carbohydrates < b.Carbohydrates },
	"fat":           func(a, b models.NamedNutritionRow) bool { return a.Fat < b.Fat },
}

// sortRows returns a sorted copy of rows. An empty key keeps the input order.
func sortRows(rows []models.NamedNutritionRow, key, order string) ([]models.NamedNutritionRow, error) {
	out := make([]models.NamedNutritionRow, len(rows))
	copy(out, rows)
	if key == "" {
		return out, nil
	}

	less, ok := rowSortKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown sort key %q", key)
	}
	switch order {
	case "", ORDER_ASC:
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	case ORDER_DESC:
		sort.SliceStable(out, func(i, j int) bool { return less(out[j], out[i]) })
	default:
		return nil, fmt.Errorf("unknown sort order %q", order)
	}
	return out, nil
}
