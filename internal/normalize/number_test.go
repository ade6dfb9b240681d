package normalize

import "testing"

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"₹1,23,456.00", 123456},
		{"1,00,000", 100000},
		{"100000", 100000},
		{"Rs 2,500", 2500},
		{"-250.75", -250.75},
		{"  42  ", 42},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"N/A", 0},
	}
	for _, c := range cases {
		if got := ParseNumber(c.in); got != c.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseNumber_NeverPanics(t *testing.T) {
	// Junk with stray sign/point characters must degrade to 0, not fail.
	for _, in := range []string{"--", "..", "1.2.3-", "-.", "₹₹₹"} {
		got := ParseNumber(in)
		if got != 0 {
			t.Errorf("ParseNumber(%q) = %v, want 0", in, got)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"12", true},
		{"0", true},
		{"₹500", true},
		{"", false},
		{"abc", false},
		{"--", false},
	}
	for _, c := range cases {
		if got := IsNumeric(c.in); got != c.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
