package sctime

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a Monday-first day of week (Monday = 0 .. Sunday = 6).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func (w Weekday) String() string {
	return weekdayNames[w]
}

// Prev returns the preceding weekday, wrapping from Monday to Sunday.
func (w Weekday) Prev() Weekday {
	return (w + 6) % 7
}

// Next returns the following weekday, wrapping from Sunday to Monday.
func (w Weekday) Next() Weekday {
	return (w + 1) % 7
}

func fromTimeWeekday(w time.Weekday) Weekday {
	return Weekday((int(w) + 6) % 7)
}

// maskLetters is the Monday-first flag alphabet for the 7-char mask.
var maskLetters = [7]byte{'M', 'T', 'W', 'T', 'F', 'S', 'S'}

// Weekdays is a set of weekdays, written as a 7-character Monday-first mask
// such as "MTWTF--" (Mon-Fri). Position i carries either its letter or '-'.
type Weekdays uint8

// AllWeekdays has every weekday selected ("MTWTFSS").
const AllWeekdays Weekdays = 1<<7 - 1

// ParseWeekdays parses the 7-character mask. Each position must hold either
// that position's letter or '-'.
func ParseWeekdays(s string) (Weekdays, error) {
	if len(s) != 7 {
		return 0, fmt.Errorf("invalid weekday mask %q: want 7 characters", s)
	}
	var w Weekdays
	for i := 0; i < 7; i++ {
		switch s[i] {
		case maskLetters[i]:
			w |= 1 << i
		case '-':
		default:
			return 0, fmt.Errorf("invalid weekday mask %q: position %d must be %q or '-'", s, i, string(maskLetters[i]))
		}
	}
	return w, nil
}

// MustWeekdays is ParseWeekdays for literals in tests and fixtures.
func MustWeekdays(s string) Weekdays {
	w, err := ParseWeekdays(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Weekdays) String() string {
	var b strings.Builder
	for i := 0; i < 7; i++ {
		if w&(1<<i) != 0 {
			b.WriteByte(maskLetters[i])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func (w Weekdays) Has(day Weekday) bool {
	return w&(1<<day) != 0
}

func (w Weekdays) Empty() bool {
	return w == 0
}

// With returns a copy with day selected.
func (w Weekdays) With(day Weekday) Weekdays {
	return w | 1<<day
}

// Without returns a copy with day cleared.
func (w Weekdays) Without(day Weekday) Weekdays {
	return w &^ (1 << day)
}

func (w Weekdays) Union(other Weekdays) Weekdays {
	return w | other
}

// FilterRange keeps only the weekdays that occur at least once between from
// and to inclusive. Spans of a week or more keep every selected weekday.
func (w Weekdays) FilterRange(from, to Date) Weekdays {
	days := DaysBetween(from, to)
	if days < 0 {
		return 0
	}
	if days >= 6 {
		return w
	}
	var present Weekdays
	day := from.Weekday()
	for i := 0; i <= days; i++ {
		present = present.With(day)
		day = day.Next()
	}
	return w & present
}
