// Package schedule holds the availability schedule model: recurring weekly
// rules, date-range overrides that replace them, and the resolution and
// time-interval logic the availability and validation packages build on.
package schedule

import "github.com/openhours/openhours/sctime"

// TimeRange is a closed [From, To] time-of-day interval. To < From denotes a
// range crossing midnight, spilling into the following calendar day.
type TimeRange struct {
	From sctime.Clock
	To   sctime.Clock
}

// Crosses reports whether the range crosses midnight.
func (r TimeRange) Crosses() bool {
	return r.To.Before(r.From)
}

// WeeklyRule opens the listed time ranges on every weekday in the set.
type WeeklyRule struct {
	Weekdays sctime.Weekdays
	Times    []TimeRange
}

// Override replaces the weekly rules for a span of dates. A nil To makes the
// override indefinite: it extends forward forever. An empty rule list closes
// the span entirely.
type Override struct {
	From  sctime.Date
	To    *sctime.Date
	Rules []WeeklyRule
}

// Specific reports whether the override has a bounded span.
func (o Override) Specific() bool {
	return o.To != nil
}

// Contains reports whether date falls inside the override's span.
func (o Override) Contains(date sctime.Date) bool {
	if date.Before(o.From) {
		return false
	}
	return o.To == nil || !date.After(*o.To)
}

// SpanDays is the inclusive day count of a specific override's span.
func (o Override) SpanDays() int {
	return sctime.DaysBetween(o.From, *o.To) + 1
}

// Schedule is the compiled, immutable schedule document. Always set means
// "open around the clock unless overridden" (the weekly:true sentinel);
// otherwise Weekly lists the recurring rules, and an empty Weekly means
// closed by default.
type Schedule struct {
	Always    bool
	Weekly    []WeeklyRule
	Overrides []Override
	Timezone  string
}
