package schedule

import "github.com/openhours/openhours/sctime"

// FullDay covers an entire calendar day in same-day form.
var FullDay = TimeRange{From: sctime.Midnight, To: sctime.LastMinute}

// Split normalizes a range into one or two same-day ranges. A range that
// crosses midnight becomes [From, 23:59] plus [00:00, To]; everything
// downstream that compares ranges assumes this same-day form.
func (r TimeRange) Split() []TimeRange {
	if !r.Crosses() {
		return []TimeRange{r}
	}
	return []TimeRange{
		{From: r.From, To: sctime.LastMinute},
		{From: sctime.Midnight, To: r.To},
	}
}

// Contains reports whether the same-day range covers c, boundaries included.
func (r TimeRange) Contains(c sctime.Clock) bool {
	return !c.Before(r.From) && !c.After(r.To)
}

// Overlaps reports whether two ranges share at least one minute. Boundaries
// are inclusive, so touching endpoints count. The midnight-crossing cases are
// deliberately separate branches: raw endpoint comparison is wrong as soon as
// one side wraps.
func Overlaps(a, b TimeRange) bool {
	switch {
	case a.Crosses() && b.Crosses():
		// Both cover the midnight minute.
		return true
	case a.Crosses():
		return overlapsCrossing(a, b)
	case b.Crosses():
		return overlapsCrossing(b, a)
	default:
		return !a.From.After(b.To) && !b.From.After(a.To)
	}
}

// overlapsCrossing compares a midnight-crossing range c against a same-day
// range s. c occupies [c.From, 23:59] and [00:00, c.To]; s meets the evening
// part iff s ends at or after c.From, and the morning part iff s starts at or
// before c.To.
func overlapsCrossing(c, s TimeRange) bool {
	return !s.To.Before(c.From) || !s.From.After(c.To)
}

// AnyOverlap reports whether any range in a overlaps any range in b.
func AnyOverlap(a, b []TimeRange) bool {
	for _, ra := range a {
		for _, rb := range b {
			if Overlaps(ra, rb) {
				return true
			}
		}
	}
	return false
}

// DirectTimes returns the same-day parts a rule opens on day itself: the
// first split part of each range, when day is in the rule's weekday set.
func DirectTimes(rule WeeklyRule, day sctime.Weekday) []TimeRange {
	if !rule.Weekdays.Has(day) {
		return nil
	}
	out := make([]TimeRange, 0, len(rule.Times))
	for _, r := range rule.Times {
		out = append(out, r.Split()[0])
	}
	return out
}

// SpilloverTimes returns the post-midnight parts a rule active on day pushes
// into the following calendar day.
func SpilloverTimes(rule WeeklyRule, day sctime.Weekday) []TimeRange {
	if !rule.Weekdays.Has(day) {
		return nil
	}
	var out []TimeRange
	for _, r := range rule.Times {
		if parts := r.Split(); len(parts) == 2 {
			out = append(out, parts[1])
		}
	}
	return out
}

// EffectiveTimes returns every same-day range a rule contributes to day: its
// direct parts plus the spillover inherited from the previous weekday. A
// single day can receive both an evening range and an early-morning
// spillover range.
func EffectiveTimes(rule WeeklyRule, day sctime.Weekday) []TimeRange {
	return append(DirectTimes(rule, day), SpilloverTimes(rule, day.Prev())...)
}
