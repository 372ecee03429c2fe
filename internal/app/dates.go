package app

import "time"

// monthDays holds standard month lengths, February as in a common year.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1-12) of the given year
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// IsValidDate reports whether s denotes a real calendar date in strict
// YYYY-MM-DD form: 4-digit year, zero-padded month and day, '-' separators.
// No looser separators or missing padding are accepted.
func IsValidDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}

	year, ok := parseDigits(s[:4])
	if !ok {
		return false
	}
	month, ok := parseDigits(s[5:7])
	if !ok {
		return false
	}
	day, ok := parseDigits(s[8:])
	if !ok {
		return false
	}

	if year < 1 || month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

// parseDigits parses an all-digit string as a decimal integer
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// Today returns the current local date as YYYY-MM-DD
func Today() string {
	return time.Now().Format(DateLayout)
}
