package validate

import (
	"fmt"

	"github.com/openhours/openhours/schedule"
	"github.com/openhours/openhours/sctime"
)

// Phase-1 checks operate on the raw string-typed document so every malformed
// field becomes a finding rather than a decode failure.

func checkTimezone(doc *schedule.Document) []Error {
	if doc.Timezone == "" || sctime.ValidZone(doc.Timezone) {
		return nil
	}
	return []Error{{Issue: IssueInvalidTimezone, Field: "timezone"}}
}

func checkFormats(doc *schedule.Document) []Error {
	var errs []Error
	for i, rule := range doc.Weekly {
		errs = append(errs, ruleFormatErrors(rule, fmt.Sprintf("weekly[%d]", i), nil, i)...)
	}
	for i, o := range doc.Overrides {
		prefix := fmt.Sprintf("overrides[%d]", i)
		if _, err := sctime.ParseDate(o.From); err != nil {
			errs = append(errs, Error{Issue: IssueInvalidDateFormat, Field: prefix + ".from", Override: intp(i)})
		}
		if o.To != nil {
			if _, err := sctime.ParseDate(*o.To); err != nil {
				errs = append(errs, Error{Issue: IssueInvalidDateFormat, Field: prefix + ".to", Override: intp(i)})
			}
		}
		for j, rule := range o.Rules {
			errs = append(errs, ruleFormatErrors(rule, fmt.Sprintf("%s.rules[%d]", prefix, j), intp(i), j)...)
		}
	}
	return errs
}

func ruleFormatErrors(rule schedule.RuleDoc, prefix string, override *int, ruleIdx int) []Error {
	var errs []Error
	if _, err := sctime.ParseWeekdays(rule.Weekdays); err != nil {
		errs = append(errs, Error{Issue: IssueInvalidDateFormat, Field: prefix + ".weekdays", Override: override, Rule: intp(ruleIdx)})
	}
	for k, tr := range rule.Times {
		if _, err := sctime.ParseClock(tr.From); err != nil {
			errs = append(errs, Error{Issue: IssueInvalidDateFormat, Field: fmt.Sprintf("%s.times[%d].from", prefix, k), Override: override, Rule: intp(ruleIdx)})
		}
		if _, err := sctime.ParseClock(tr.To); err != nil {
			errs = append(errs, Error{Issue: IssueInvalidDateFormat, Field: fmt.Sprintf("%s.times[%d].to", prefix, k), Override: override, Rule: intp(ruleIdx)})
		}
	}
	return errs
}

func checkOverrideDateOrder(doc *schedule.Document) []Error {
	var errs []Error
	for i, o := range doc.Overrides {
		if o.To == nil {
			continue
		}
		from, errFrom := sctime.ParseDate(o.From)
		to, errTo := sctime.ParseDate(*o.To)
		if errFrom != nil || errTo != nil {
			continue // reported by checkFormats
		}
		if to.Before(from) {
			errs = append(errs, Error{
				Issue:    IssueInvalidOverrideDateOrder,
				Field:    fmt.Sprintf("overrides[%d]", i),
				Override: intp(i),
			})
		}
	}
	return errs
}

func checkEmptyWeekdays(doc *schedule.Document) []Error {
	var errs []Error
	check := func(rule schedule.RuleDoc, field string, override *int, ruleIdx int) {
		w, err := sctime.ParseWeekdays(rule.Weekdays)
		if err == nil && w.Empty() {
			errs = append(errs, Error{Issue: IssueEmptyWeekdays, Field: field, Override: override, Rule: intp(ruleIdx)})
		}
	}
	for i, rule := range doc.Weekly {
		check(rule, fmt.Sprintf("weekly[%d].weekdays", i), nil, i)
	}
	for i, o := range doc.Overrides {
		for j, rule := range o.Rules {
			check(rule, fmt.Sprintf("overrides[%d].rules[%d].weekdays", i, j), intp(i), j)
		}
	}
	return errs
}

func checkEmptyTimes(doc *schedule.Document) []Error {
	var errs []Error
	for i, rule := range doc.Weekly {
		if len(rule.Times) == 0 {
			errs = append(errs, Error{Issue: IssueEmptyTimes, Field: fmt.Sprintf("weekly[%d].times", i), Rule: intp(i)})
		}
	}
	for i, o := range doc.Overrides {
		for j, rule := range o.Rules {
			if len(rule.Times) == 0 {
				errs = append(errs, Error{Issue: IssueEmptyTimes, Field: fmt.Sprintf("overrides[%d].rules[%d].times", i, j), Override: intp(i), Rule: intp(j)})
			}
		}
	}
	return errs
}

// checkOverrideWeekdayCoverage flags rules inside a specific override whose
// weekday pattern never occurs within the override's span. Such a rule is a
// de-facto closure; a closed span should say rules: [] instead. Reported as a
// likely-unintended configuration and, like every phase-1 finding, it halts
// the semantic phase.
func checkOverrideWeekdayCoverage(doc *schedule.Document) []Error {
	var errs []Error
	for i, o := range doc.Overrides {
		if o.To == nil {
			continue // every weekday eventually recurs
		}
		from, errFrom := sctime.ParseDate(o.From)
		to, errTo := sctime.ParseDate(*o.To)
		if errFrom != nil || errTo != nil || to.Before(from) {
			continue // reported elsewhere
		}
		for j, rule := range o.Rules {
			w, err := sctime.ParseWeekdays(rule.Weekdays)
			if err != nil || w.Empty() {
				continue // reported elsewhere
			}
			if w.FilterRange(from, to).Empty() {
				errs = append(errs, Error{
					Issue:    IssueOverrideWeekdaysMismatch,
					Field:    fmt.Sprintf("overrides[%d].rules[%d].weekdays", i, j),
					Override: intp(i),
					Rule:     intp(j),
					Date:     from.String(),
				})
			}
		}
	}
	return errs
}
