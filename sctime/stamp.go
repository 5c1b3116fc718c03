package sctime

import "fmt"

// Stamp combines a Date and a Clock, written YYYY-MM-DDTHH:MM. It carries no
// timezone; the schedule's timezone applies to every stamp uniformly.
type Stamp struct {
	date  Date
	clock Clock
}

// ParseStamp parses a YYYY-MM-DDTHH:MM string.
func ParseStamp(s string) (Stamp, error) {
	if len(s) != 16 || s[10] != 'T' {
		return Stamp{}, fmt.Errorf("invalid timestamp %q: want YYYY-MM-DDTHH:MM", s)
	}
	d, err := ParseDate(s[:10])
	if err != nil {
		return Stamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	c, err := ParseClock(s[11:])
	if err != nil {
		return Stamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Stamp{date: d, clock: c}, nil
}

// MustStamp is ParseStamp for literals in tests and fixtures.
func MustStamp(s string) Stamp {
	st, err := ParseStamp(s)
	if err != nil {
		panic(err)
	}
	return st
}

// NewStamp combines a date and a time of day.
func NewStamp(d Date, c Clock) Stamp {
	return Stamp{date: d, clock: c}
}

func (s Stamp) Date() Date   { return s.date }
func (s Stamp) Clock() Clock { return s.clock }

func (s Stamp) String() string {
	return s.date.String() + "T" + s.clock.String()
}

// AddMinutes adds n minutes, carrying across calendar days.
func (s Stamp) AddMinutes(n int) Stamp {
	total := int(s.clock) + n
	days := total / minutesPerDay
	rem := total % minutesPerDay
	if rem < 0 {
		rem += minutesPerDay
		days--
	}
	return Stamp{date: s.date.AddDays(days), clock: Clock(rem)}
}

func (s Stamp) Before(other Stamp) bool { return s.Compare(other) < 0 }
func (s Stamp) After(other Stamp) bool  { return s.Compare(other) > 0 }
func (s Stamp) Equal(other Stamp) bool  { return s.Compare(other) == 0 }

// Compare returns -1, 0 or +1.
func (s Stamp) Compare(other Stamp) int {
	if c := s.date.Compare(other.date); c != 0 {
		return c
	}
	return s.clock.Compare(other.clock)
}
