package nutrition

import (
	"errors"
	"fmt"

	"eating-helper/models"
)

// ErrEmptyInput is returned when an aggregate is requested over zero days.
var ErrEmptyInput = errors.New("nutrition: empty daily nutrition input")

// ErrZeroCalories is returned by MacroRatios for a record without calories.
var ErrZeroCalories = errors.New("nutrition: record has zero calories")

// InvalidWindowSizeError reports a daily window that is not exactly WeekWindowSize long.
type InvalidWindowSizeError struct {
	Got int
}

func (e *InvalidWindowSizeError) Error() string {
	return fmt.Sprintf("nutrition: daily window has %d records, want %d", e.Got, WeekWindowSize)
}

// ValidateWindow checks that days holds exactly one full week.
func ValidateWindow(days []models.DailyNutrition) error {
	if len(days) != WeekWindowSize {
		return &InvalidWindowSizeError{Got: len(days)}
	}
	return nil
}
