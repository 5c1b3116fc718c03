package validate

import (
	"github.com/openhours/openhours/schedule"
	"github.com/openhours/openhours/sctime"
)

// Phase-2 checks run against the compiled and normalized schedule.

// checkTimesWithinRules flags a rule whose own time ranges overlap each
// other, midnight crossings included.
func checkTimesWithinRules(s *schedule.Schedule) []Error {
	var errs []Error
	check := func(rule schedule.WeeklyRule, override *int, ruleIdx int) {
		for a := 0; a < len(rule.Times); a++ {
			for b := a + 1; b < len(rule.Times); b++ {
				if rangesTouch(rule.Times[a], rule.Times[b]) {
					errs = append(errs, Error{Issue: IssueOverlappingTimesInRule, Override: override, Rule: intp(ruleIdx)})
					return
				}
			}
		}
	}
	for i, rule := range s.Weekly {
		check(rule, nil, i)
	}
	for i, o := range s.Overrides {
		for j, rule := range o.Rules {
			check(rule, intp(i), j)
		}
	}
	return errs
}

// rangesTouch compares two raw ranges after midnight splitting.
func rangesTouch(a, b schedule.TimeRange) bool {
	return schedule.AnyOverlap(a.Split(), b.Split())
}

// checkRuleOverlaps flags two rules at the same level whose effective ranges
// collide on some weekday. Going weekday by weekday through EffectiveTimes
// catches collisions between an evening range and the next day's inherited
// spillover, not just same-day clashes.
func checkRuleOverlaps(s *schedule.Schedule) []Error {
	errs := ruleOverlapErrors(s.Weekly, IssueOverlappingRulesInWeekly, nil)
	for i, o := range s.Overrides {
		errs = append(errs, ruleOverlapErrors(o.Rules, IssueOverlappingRulesInOverride, intp(i))...)
	}
	return errs
}

func ruleOverlapErrors(rules []schedule.WeeklyRule, issue Issue, override *int) []Error {
	var errs []Error
	for a := 0; a < len(rules); a++ {
		for b := a + 1; b < len(rules); b++ {
			for day := sctime.Monday; day <= sctime.Sunday; day++ {
				if schedule.AnyOverlap(schedule.EffectiveTimes(rules[a], day), schedule.EffectiveTimes(rules[b], day)) {
					errs = append(errs, Error{
						Issue:     issue,
						Override:  override,
						Rule:      intp(a),
						OtherRule: intp(b),
						Weekday:   day.String(),
					})
					break
				}
			}
		}
	}
	return errs
}

// checkOverridePairs flags specific overrides that duplicate or partially
// overlap each other's spans. Full containment is exempt: a one-day closure
// nested inside a month-long override is how holiday-inside-a-season
// schedules are written.
func checkOverridePairs(s *schedule.Schedule) []Error {
	var errs []Error
	for a := 0; a < len(s.Overrides); a++ {
		oa := s.Overrides[a]
		if !oa.Specific() {
			continue
		}
		for b := a + 1; b < len(s.Overrides); b++ {
			ob := s.Overrides[b]
			if !ob.Specific() {
				continue
			}
			switch {
			case oa.From.Equal(ob.From) && oa.To.Equal(*ob.To):
				errs = append(errs, Error{
					Issue:         IssueDuplicateOverrides,
					Override:      intp(a),
					OtherOverride: intp(b),
					Date:          oa.From.String(),
				})
			case spansOverlap(oa, ob) && !spanContains(oa, ob) && !spanContains(ob, oa):
				errs = append(errs, Error{
					Issue:         IssueOverlappingSpecificOverrides,
					Override:      intp(a),
					OtherOverride: intp(b),
				})
			}
		}
	}
	return errs
}

func spansOverlap(a, b schedule.Override) bool {
	return !a.From.After(*b.To) && !b.From.After(*a.To)
}

// spanContains reports whether inner lies fully within outer, inclusive.
func spanContains(outer, inner schedule.Override) bool {
	return !inner.From.Before(outer.From) && !inner.To.After(*outer.To)
}

// checkSpillover walks every override boundary and flags cross-midnight
// spillover that collides with the adjoining day's explicit ranges. Spillover
// into a closed (empty-rules) day only adds availability and is allowed.
func checkSpillover(s *schedule.Schedule) []Error {
	var errs []Error
	for i, o := range s.Overrides {
		errs = append(errs, spilloverIntoFirstDay(s, i, o)...)
		if o.Specific() {
			errs = append(errs, spilloverOutOfLastDay(s, i, o)...)
		}
	}
	return errs
}

// spilloverIntoFirstDay: whatever governs the day before the override may
// push a post-midnight range onto the override's first day; that range must
// not overlap the override's own ranges on that day.
func spilloverIntoFirstDay(s *schedule.Schedule, i int, o schedule.Override) []Error {
	firstDay := directTimes(o.Rules, o.From.Weekday())
	if len(firstDay) == 0 {
		return nil
	}
	prev := o.From.AddDays(-1)
	res := schedule.Resolve(s, prev)
	if res.Always {
		return nil // the sentinel opens whole days, nothing crosses midnight
	}
	if !schedule.AnyOverlap(spillTimes(res.Rules, prev.Weekday()), firstDay) {
		return nil
	}
	e := Error{
		Issue:    IssueSpilloverIntoOverride,
		Override: intp(i),
		Date:     o.From.String(),
	}
	if res.Source.Kind == schedule.SourceOverride {
		e.OtherOverride = intp(res.Source.Override)
	}
	return []Error{e}
}

// spilloverOutOfLastDay: the override's own rules on its last day may cross
// midnight into whatever governs the following day; the spilled range must
// not overlap that day's explicit ranges.
func spilloverOutOfLastDay(s *schedule.Schedule, i int, o schedule.Override) []Error {
	spill := spillTimes(o.Rules, o.To.Weekday())
	if len(spill) == 0 {
		return nil
	}
	next := o.To.AddDays(1)
	res := schedule.Resolve(s, next)
	nextDay := directTimes(res.Rules, next.Weekday())
	if res.Always {
		nextDay = []schedule.TimeRange{schedule.FullDay}
	}
	if !schedule.AnyOverlap(spill, nextDay) {
		return nil
	}
	e := Error{
		Issue:    IssueSpilloverOutOfOverride,
		Override: intp(i),
		Date:     next.String(),
	}
	if res.Source.Kind == schedule.SourceOverride {
		e.OtherOverride = intp(res.Source.Override)
	}
	return []Error{e}
}

func directTimes(rules []schedule.WeeklyRule, day sctime.Weekday) []schedule.TimeRange {
	var out []schedule.TimeRange
	for _, rule := range rules {
		out = append(out, schedule.DirectTimes(rule, day)...)
	}
	return out
}

func spillTimes(rules []schedule.WeeklyRule, day sctime.Weekday) []schedule.TimeRange {
	var out []schedule.TimeRange
	for _, rule := range rules {
		out = append(out, schedule.SpilloverTimes(rule, day)...)
	}
	return out
}
