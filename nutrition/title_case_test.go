package nutrition

import "testing"

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chicken stir fry", "Chicken Stir Fry"},
		{"Chicken Stir Fry", "Chicken Stir Fry"},
		{"BBQ ribs", "Bbq Ribs"},
		{"pad-thai", "Pad-Thai"},
		{"overnight_oats", "Overnight_Oats"},
		{"  double  space ", "  Double  Space "},
		{"crème brûlée", "Crème Brûlée"},
		{"eat out", "Eat Out"},
		{"7 layer dip", "7 Layer Dip"},
		{"", ""},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			if got := TitleCase(test.in); got != test.want {
				t.Errorf("TitleCase(%q) = %q; want %q", test.in, got, test.want)
			}
		})
	}
}

func TestTitleCase_Idempotent(t *testing.T) {
	inputs := []string{
		"chicken stir fry",
		"mIxEd CaSe-words_here",
		"\ttabbed\nlines",
		"ǆungla",
		"already Title Case",
	}

	for _, in := range inputs {
		once := TitleCase(in)
		if twice := TitleCase(once); twice != once {
			t.Errorf("TitleCase not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
