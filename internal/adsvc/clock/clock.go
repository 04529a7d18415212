package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat reports input that is not a well formed clock string
// or weekday list.
var ErrInvalidFormat = errors.New("invalid format")

// Clock is a minute-of-day offset in [0, 1439]. Availability windows are
// stored as Clock values, never as strings.
type Clock int

const MinutesPerDay = 24 * 60

// Parse converts a zero-padded 24-hour "HH:MM" string to a Clock.
func Parse(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidFormat, s)
	}

	// all four positions must be ASCII digits; Atoi is too lenient here,
	// it accepts signed tokens like "-0"
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidFormat, s)
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidFormat, s)
	}

	return Clock(hours*60 + minutes), nil
}

// String renders the Clock back to zero-padded "HH:MM". It is the exact
// inverse of Parse for every value in [0, 1439].
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Minutes returns the raw minute-of-day offset for storage.
func (c Clock) Minutes() int {
	return int(c)
}

// JoinWeekDays flattens a weekday list (0=Sunday..6=Saturday) into the
// comma-delimited form the store keeps.
func JoinWeekDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

// SplitWeekDays expands the stored comma-delimited form back to the
// weekday list, preserving order.
func SplitWeekDays(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}

	parts := strings.Split(s, ",")
	days := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: weekday token %q", ErrInvalidFormat, p)
		}
		days[i] = d
	}
	return days, nil
}
