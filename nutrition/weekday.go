package nutrition

// WeekWindowSize is the number of daily records in one window.
const WeekWindowSize = 7

// WeekWindowStartOffset rotates window positions onto WeekdayNames.
// The upstream window starts on Saturday, so position 0 is WeekdayNames[5].
const WeekWindowStartOffset = 5

// WeekdayNames starts on Monday.
var WeekdayNames = [WeekWindowSize]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayLabel returns the display label for a position in the daily window.
func WeekdayLabel(index int) string {
	i := (index + WeekWindowStartOffset) % WeekWindowSize
	if i < 0 {
		i += WeekWindowSize
	}
	return WeekdayNames[i]
}
