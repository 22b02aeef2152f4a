package cases

import (
	"strconv"
	"strings"
)

// BadMonth is shown in place of a month name that cannot be resolved
const BadMonth = "Bad Number Given"

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatWithCommas renders n with a comma every three digits from the right
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	return sign + addCommas(s)
}

// addCommas adds commas to a string of digits
func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}

// MonthName maps 1-12 to the English month name, anything else to BadMonth
func MonthName(month int) string {
	if month < 1 || month > len(monthNames) {
		return BadMonth
	}
	return monthNames[month-1]
}

// FormatDateLabel turns a YYYY-M-D date into "<Month> <Day>, <Year>".
// The year runs to the first hyphen and the day starts after the last one.
// A month that is not a number in 1-12 renders as BadMonth.
func FormatDateLabel(date string) string {
	first := strings.IndexByte(date, '-')
	if first < 0 {
		return date
	}
	last := strings.LastIndexByte(date, '-')

	year := date[:first]
	day := date[last+1:]

	month := BadMonth
	if first < last {
		if n, err := strconv.Atoi(date[first+1 : last]); err == nil {
			month = MonthName(n)
		}
	}

	return month + " " + day + ", " + year
}
