package sctime

import "fmt"

// Clock is a time of day with minute precision, stored as minutes from
// midnight (0 .. 1439).
type Clock int

const (
	// Midnight is the first minute of a day.
	Midnight Clock = 0
	// LastMinute is the final minute of a day, 23:59.
	LastMinute Clock = 24*60 - 1

	minutesPerDay = 24 * 60
)

// ParseClock parses an HH:MM string between 00:00 and 23:59.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	return Clock(h*60 + m), nil
}

// MustClock is ParseClock for literals in tests and fixtures.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// AddMinutes adds n minutes, wrapping across the 24h boundary in either
// direction.
func (c Clock) AddMinutes(n int) Clock {
	v := (int(c) + n) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return Clock(v)
}

func (c Clock) Before(other Clock) bool { return c < other }
func (c Clock) After(other Clock) bool  { return c > other }

// Compare returns -1, 0 or +1.
func (c Clock) Compare(other Clock) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	}
	return 0
}
