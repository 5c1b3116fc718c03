package availability

import (
	"github.com/openhours/openhours/schedule"
	"github.com/openhours/openhours/sctime"
)

// AvailableRanges materializes every open interval between start and end
// inclusive. Each date is resolved on its own; every (rule, time range) pair
// active on a date emits one interval, with cross-midnight ranges extending
// onto the following date. Overlapping rules emit overlapping intervals:
// nothing is merged or deduplicated, that is the caller's call. Spillover
// from the day before start is likewise not emitted; it belongs to the day
// that opened it.
func AvailableRanges(s *schedule.Schedule, start, end sctime.Date) []Interval {
	var out []Interval
	for date := start; !date.After(end); date = date.AddDays(1) {
		res := schedule.Resolve(s, date)
		if res.Always {
			out = append(out, Interval{
				From: sctime.NewStamp(date, sctime.Midnight),
				To:   sctime.NewStamp(date, sctime.LastMinute),
			})
			continue
		}
		for _, rule := range res.Rules {
			if !rule.Weekdays.Has(date.Weekday()) {
				continue
			}
			for _, r := range rule.Times {
				to := sctime.NewStamp(date, r.To)
				if r.Crosses() {
					to = sctime.NewStamp(date.AddDays(1), r.To)
				}
				out = append(out, Interval{From: sctime.NewStamp(date, r.From), To: to})
			}
		}
	}
	return out
}
