package password

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		pass string
		want bool
	}{
		{"many special chars", "$%$$&AA99", true},
		{"many special chars 2", "$%$$&AA99-*+", true},
		{"forbidden char", "a%AA$123<4567", false},
		{"forbidden char fixed", "a%AA$1234567", true},
		{"at least one digit missing", "A%AABBBCC", false},
		{"at least one digit present", "A%AABBBCC1", true},
		{"at least one upper missing", "a%aaabbcc1", false},
		{"at least one upper present", "a%aaAbbcC1", true},
		{"at least one symbol missing", "aaaAbbcC1", false},
		{"too short", "%23456A", false},
		{"long enough", "%23456AB", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.pass); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.pass, got, tt.want)
			}
		})
	}
}
