package schedule

import "github.com/openhours/openhours/sctime"

// SourceKind tags where a resolved rule set came from.
type SourceKind int

const (
	// SourceWeekly marks the weekly fallback.
	SourceWeekly SourceKind = iota
	// SourceOverride marks one of the schedule's overrides.
	SourceOverride
)

// Source identifies the rule set chosen for a date: the weekly fallback or a
// single override by index.
type Source struct {
	Kind     SourceKind
	Override int
}

// Resolution is the rule set governing one date. Always is only set when the
// weekly sentinel applies, never for overrides.
type Resolution struct {
	Rules  []WeeklyRule
	Always bool
	Source Source
}

// Resolve picks the rule set governing date. Precedence: the shortest
// specific override containing the date, then the indefinite override with
// the latest start at or before the date, then the weekly rules. Ties on
// either comparison keep the earliest-declared override. O(len(overrides)).
func Resolve(s *Schedule, date sctime.Date) Resolution {
	best := -1
	bestSpan := 0
	for i, o := range s.Overrides {
		if !o.Specific() || !o.Contains(date) {
			continue
		}
		if span := o.SpanDays(); best < 0 || span < bestSpan {
			best, bestSpan = i, span
		}
	}
	if best >= 0 {
		return overrideResolution(s, best)
	}

	for i, o := range s.Overrides {
		if o.Specific() || date.Before(o.From) {
			continue
		}
		if best < 0 || o.From.After(s.Overrides[best].From) {
			best = i
		}
	}
	if best >= 0 {
		return overrideResolution(s, best)
	}

	return Resolution{
		Rules:  s.Weekly,
		Always: s.Always,
		Source: Source{Kind: SourceWeekly, Override: -1},
	}
}

func overrideResolution(s *Schedule, i int) Resolution {
	return Resolution{
		Rules:  s.Overrides[i].Rules,
		Source: Source{Kind: SourceOverride, Override: i},
	}
}
