package schedule

// Normalize returns a copy of the schedule in which every specific override's
// rule weekday-sets are restricted to the weekdays actually occurring within
// the override's span. A Mon-Sun rule inside a two-day override then covers
// exactly the two weekdays present, which removes a whole class of
// false-positive overlap findings. Indefinite overrides are left untouched:
// with no end date every weekday eventually recurs. Normalizing twice is a
// no-op.
func Normalize(s *Schedule) *Schedule {
	out := &Schedule{
		Always:   s.Always,
		Weekly:   copyRules(s.Weekly),
		Timezone: s.Timezone,
	}
	for _, o := range s.Overrides {
		c := Override{From: o.From, To: o.To, Rules: copyRules(o.Rules)}
		if o.Specific() {
			for i := range c.Rules {
				c.Rules[i].Weekdays = c.Rules[i].Weekdays.FilterRange(o.From, *o.To)
			}
		}
		out.Overrides = append(out.Overrides, c)
	}
	return out
}

func copyRules(rules []WeeklyRule) []WeeklyRule {
	if rules == nil {
		return nil
	}
	out := make([]WeeklyRule, len(rules))
	for i, r := range rules {
		out[i] = WeeklyRule{Weekdays: r.Weekdays, Times: append([]TimeRange(nil), r.Times...)}
	}
	return out
}
