package availability

import (
	"sort"

	"github.com/openhours/openhours/schedule"
	"github.com/openhours/openhours/sctime"
)

// Slots returns slot start times within [windowStart, windowEnd] where a
// booking of duration minutes fits entirely inside the schedule's open hours
// and would not overlap any of the busy intervals. Slot starts advance by
// step minutes from the start of each open stretch; starts before now are
// skipped. Open intervals are merged first so overlapping rules cannot emit
// the same slot twice.
func Slots(s *schedule.Schedule, windowStart, windowEnd sctime.Stamp, duration, step int, busy []Interval, now sctime.Stamp) []sctime.Stamp {
	if duration <= 0 || step <= 0 {
		return nil
	}
	if windowEnd.Before(windowStart) {
		return nil
	}

	open := mergeIntervals(clipIntervals(
		AvailableRanges(s, windowStart.Date(), windowEnd.Date()),
		windowStart, windowEnd,
	))

	var slots []sctime.Stamp
	for _, iv := range open {
		for t := iv.From; ; t = t.AddMinutes(step) {
			last := t.AddMinutes(duration - 1)
			if last.After(iv.To) || last.After(windowEnd) {
				break
			}
			if t.Before(now) {
				continue
			}
			if !overlapsAny(t, last, busy) {
				slots = append(slots, t)
			}
		}
	}
	return slots
}

func clipIntervals(intervals []Interval, from, to sctime.Stamp) []Interval {
	var out []Interval
	for _, iv := range intervals {
		if iv.To.Before(from) || iv.From.After(to) {
			continue
		}
		if iv.From.Before(from) {
			iv.From = from
		}
		if iv.To.After(to) {
			iv.To = to
		}
		out = append(out, iv)
	}
	return out
}

// mergeIntervals coalesces overlapping and back-to-back closed intervals.
func mergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].From.Before(intervals[j].From)
	})
	merged := []Interval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if !iv.From.After(last.To.AddMinutes(1)) {
			if iv.To.After(last.To) {
				last.To = iv.To
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

func overlapsAny(start, last sctime.Stamp, busy []Interval) bool {
	for _, b := range busy {
		// Closed intervals: [start,last] meets [b.From,b.To] iff neither
		// ends before the other starts.
		if !start.After(b.To) && !b.From.After(last) {
			return true
		}
	}
	return false
}
