// Package availability answers point, forward-search and range queries
// against a compiled schedule. All functions are pure: they resolve the
// governing rule set per date and reason over same-day time ranges only.
package availability

import (
	"github.com/openhours/openhours/schedule"
	"github.com/openhours/openhours/sctime"
)

// Interval is a closed [From, To] span of instants.
type Interval struct {
	From sctime.Stamp
	To   sctime.Stamp
}

// directRanges returns the same-day parts the resolution opens on day.
// The always-open sentinel contributes the whole day.
func directRanges(res schedule.Resolution, day sctime.Weekday) []schedule.TimeRange {
	if res.Always {
		return []schedule.TimeRange{schedule.FullDay}
	}
	var out []schedule.TimeRange
	for _, rule := range res.Rules {
		out = append(out, schedule.DirectTimes(rule, day)...)
	}
	return out
}

// spilloverRanges returns the post-midnight parts that the resolution's
// rules, active on day, push into the following date. Always-open days have
// no cross-midnight ranges and spill nothing.
func spilloverRanges(res schedule.Resolution, day sctime.Weekday) []schedule.TimeRange {
	if res.Always {
		return nil
	}
	var out []schedule.TimeRange
	for _, rule := range res.Rules {
		out = append(out, schedule.SpilloverTimes(rule, day)...)
	}
	return out
}

// effectiveRanges materializes every same-day range open on date: the direct
// parts from the date's own governing rules plus the spillover inherited from
// the previous date's governing rules. The two dates are resolved separately,
// so spillover is honored across override boundaries as well.
func effectiveRanges(s *schedule.Schedule, date sctime.Date) []schedule.TimeRange {
	prev := date.AddDays(-1)
	out := directRanges(schedule.Resolve(s, date), date.Weekday())
	return append(out, spilloverRanges(schedule.Resolve(s, prev), prev.Weekday())...)
}

// IsAvailable reports whether the schedule is open at the given instant.
// Range boundaries are inclusive on both ends.
func IsAvailable(s *schedule.Schedule, at sctime.Stamp) bool {
	for _, r := range effectiveRanges(s, at.Date()) {
		if r.Contains(at.Clock()) {
			return true
		}
	}
	return false
}
