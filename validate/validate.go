// Package validate checks schedule documents for structural and semantic
// problems. Findings are returned as data, never as errors: a schedule
// editor needs every problem at once, and re-running the whole pipeline on
// each keystroke is safe because every check is a pure function.
package validate

import "github.com/openhours/openhours/schedule"

var structuralChecks = []func(*schedule.Document) []Error{
	checkTimezone,
	checkFormats,
	checkOverrideDateOrder,
	checkEmptyWeekdays,
	checkEmptyTimes,
	checkOverrideWeekdayCoverage,
}

var semanticChecks = []func(*schedule.Schedule) []Error{
	checkTimesWithinRules,
	checkRuleOverlaps,
	checkOverridePairs,
	checkSpillover,
}

// Validate runs the two-phase pipeline over a document. Phase 1 inspects the
// raw strings; any finding short-circuits phase 2, which assumes a
// compilable schedule. Phase 2 runs against the normalized schedule so that
// override rules only claim weekdays their span actually contains.
func Validate(doc *schedule.Document) Result {
	var errs []Error
	for _, check := range structuralChecks {
		errs = append(errs, check(doc)...)
	}
	if len(errs) > 0 {
		return Result{Valid: false, Errors: errs}
	}

	s, err := doc.Compile()
	if err != nil {
		// Unreachable after a clean phase 1; surfaced as a format finding
		// rather than a panic so callers always get a Result.
		return Result{Valid: false, Errors: []Error{{Issue: IssueInvalidDateFormat}}}
	}
	s = schedule.Normalize(s)

	for _, check := range semanticChecks {
		errs = append(errs, check(s)...)
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}
