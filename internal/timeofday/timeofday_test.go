package timeofday

import "testing"

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"06:35:00-07:00", 6*60 + 35, false},
		{"23:05:00+09:00", 23*60 + 5, false},
		{"14:10:00Z", 14*60 + 10, false},
		{"14:10:00+0100", 14*60 + 10, false},
		{"08:00:00", 8 * 60, false},
		{"08:15", 8*60 + 15, false},
		{"2026-03-01T17:45:00+01:00", 17*60 + 45, false},
		{"2026-03-01T17:45:00", 17*60 + 45, false},
		{"N/A", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := MinuteOfDay(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("MinuteOfDay(%q) expected error, got %d", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("MinuteOfDay(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("MinuteOfDay(%q) = %d, expected %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	if got, err := ParseClock("09:30"); err != nil || got != 570 {
		t.Errorf("ParseClock(09:30) = %d, %v; expected 570, nil", got, err)
	}
	for _, bad := range []string{"9h30", "25:00", "", "09:30:00"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) expected error", bad)
		}
	}
}
