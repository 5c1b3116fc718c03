package availability

import (
	"sort"

	"github.com/openhours/openhours/schedule"
	"github.com/openhours/openhours/sctime"
)

// DefaultMaxScanDays bounds the forward scan of NextAvailable.
const DefaultMaxScanDays = 365

// NextAvailable returns the first available instant at or after from. The
// scan covers the query date and at most maxDays days beyond it
// (DefaultMaxScanDays when maxDays <= 0). If from is already available it is
// returned unchanged. The scan is a flat loop; stack use does not grow with
// maxDays.
func NextAvailable(s *schedule.Schedule, from sctime.Stamp, maxDays int) (sctime.Stamp, bool) {
	if IsAvailable(s, from) {
		return from, true
	}
	if maxDays <= 0 {
		maxDays = DefaultMaxScanDays
	}

	for i := 0; i <= maxDays; i++ {
		date := from.Date().AddDays(i)
		var best sctime.Clock
		found := false
		for _, r := range effectiveRanges(s, date) {
			// On the query day only starts strictly after the query time
			// qualify; an enclosing range would have been caught above.
			if i == 0 && !r.From.After(from.Clock()) {
				continue
			}
			if !found || r.From.Before(best) {
				best, found = r.From, true
			}
		}
		if found {
			return sctime.NewStamp(date, best), true
		}
	}
	return sctime.Stamp{}, false
}

// NextUnavailable returns the first unavailable instant at or after from. If
// from is already unavailable it is returned unchanged. Otherwise the
// candidates are every range end plus one minute, drawn from yesterday's
// spillover ending today, today's same-day ranges and today's cross-midnight
// ranges ending tomorrow; the first candidate that is genuinely unavailable
// wins, since a later range may immediately re-open availability. Once
// ranges are split at midnight an availability window spans at most two
// days, so no day-by-day loop is needed. An always-open schedule with no
// closing boundary reports not found.
func NextUnavailable(s *schedule.Schedule, from sctime.Stamp) (sctime.Stamp, bool) {
	if !IsAvailable(s, from) {
		return from, true
	}

	date := from.Date()
	prev := date.AddDays(-1)
	var candidates []sctime.Stamp

	for _, r := range spilloverRanges(schedule.Resolve(s, prev), prev.Weekday()) {
		candidates = append(candidates, sctime.NewStamp(date, r.To).AddMinutes(1))
	}

	res := schedule.Resolve(s, date)
	if res.Always {
		candidates = append(candidates, sctime.NewStamp(date, sctime.LastMinute).AddMinutes(1))
	}
	for _, rule := range res.Rules {
		if !rule.Weekdays.Has(date.Weekday()) {
			continue
		}
		for _, r := range rule.Times {
			if r.Crosses() {
				candidates = append(candidates, sctime.NewStamp(date.AddDays(1), r.To).AddMinutes(1))
			} else {
				candidates = append(candidates, sctime.NewStamp(date, r.To).AddMinutes(1))
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Before(candidates[j])
	})
	for _, c := range candidates {
		// Boundaries of ranges already closed before from are in the past.
		if c.Before(from) {
			continue
		}
		if !IsAvailable(s, c) {
			return c, true
		}
	}
	return sctime.Stamp{}, false
}
