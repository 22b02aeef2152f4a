package cases

import (
	"strconv"
	"strings"
	"testing"
)

func TestFormatWithCommas(t *testing.T) {
	tests := map[int]string{
		0:          "0",
		7:          "7",
		999:        "999",
		1000:       "1,000",
		12345:      "12,345",
		123456:     "123,456",
		1234567:    "1,234,567",
		1000000000: "1,000,000,000",
	}
	for in, want := range tests {
		if got := FormatWithCommas(in); got != want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatWithCommasRoundTrip(t *testing.T) {
	for n := 0; n < 2000000; n += 7919 {
		s := FormatWithCommas(n)
		if strings.HasPrefix(s, ",") {
			t.Fatalf("%d: leading separator in %q", n, s)
		}
		groups := strings.Split(s, ",")
		for i, g := range groups[1:] {
			if len(g) != 3 {
				t.Fatalf("%d: group %d of %q is not 3 digits", n, i+1, s)
			}
		}
		back, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
		if err != nil || back != n {
			t.Fatalf("%d: digits of %q do not round trip", n, s)
		}
	}
}

func TestFormatDateLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2020-3-1", "March 1, 2020"},
		{"2020-12-31", "December 31, 2020"},
		{"2021-01-05", "January 05, 2021"},
		{"2020-13-1", "Bad Number Given 1, 2020"},
		{"2020-0-1", "Bad Number Given 1, 2020"},
		{"2020-x-1", "Bad Number Given 1, 2020"},
		{"2020-7", "Bad Number Given 7, 2020"},
		{"yesterday", "yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatDateLabel(tt.in); got != tt.want {
				t.Errorf("FormatDateLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMonthName(t *testing.T) {
	if MonthName(1) != "January" || MonthName(12) != "December" {
		t.Error("month bounds not mapped")
	}
	if MonthName(13) != BadMonth {
		t.Errorf("MonthName(13) = %q, want sentinel", MonthName(13))
	}
}
