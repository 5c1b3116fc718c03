package validate

import (
	"fmt"
	"strings"
)

// Issue is the closed taxonomy of validation findings.
type Issue string

const (
	IssueDuplicateOverrides           Issue = "duplicate-overrides"
	IssueOverlappingSpecificOverrides Issue = "overlapping-specific-overrides"
	IssueInvalidDateFormat            Issue = "invalid-scdate-format"
	IssueEmptyWeekdays                Issue = "empty-weekdays"
	IssueEmptyTimes                   Issue = "empty-times"
	IssueOverrideWeekdaysMismatch     Issue = "override-weekdays-mismatch"
	IssueOverlappingRulesInWeekly     Issue = "overlapping-rules-in-weekly"
	IssueOverlappingRulesInOverride   Issue = "overlapping-rules-in-override"
	IssueOverlappingTimesInRule       Issue = "overlapping-times-in-rule"
	IssueSpilloverIntoOverride        Issue = "spillover-conflict-into-override-first-day"
	IssueSpilloverOutOfOverride       Issue = "spillover-conflict-override-into-next"
	IssueInvalidOverrideDateOrder     Issue = "invalid-override-date-order"
	IssueInvalidTimezone              Issue = "invalid-timezone"
)

// Error is a single validation finding. The location fields pinpoint the
// offending element without re-scanning the document; pair findings carry
// both sides.
type Error struct {
	Issue         Issue  `json:"issue"`
	Field         string `json:"field,omitempty"`
	Override      *int   `json:"override,omitempty"`
	OtherOverride *int   `json:"otherOverride,omitempty"`
	Rule          *int   `json:"rule,omitempty"`
	OtherRule     *int   `json:"otherRule,omitempty"`
	Weekday       string `json:"weekday,omitempty"`
	Date          string `json:"date,omitempty"`
}

func (e Error) String() string {
	var b strings.Builder
	b.WriteString(string(e.Issue))
	var loc []string
	if e.Field != "" {
		loc = append(loc, e.Field)
	}
	if e.Override != nil {
		loc = append(loc, fmt.Sprintf("override %d", *e.Override))
	}
	if e.OtherOverride != nil {
		loc = append(loc, fmt.Sprintf("override %d", *e.OtherOverride))
	}
	if e.Rule != nil {
		loc = append(loc, fmt.Sprintf("rule %d", *e.Rule))
	}
	if e.OtherRule != nil {
		loc = append(loc, fmt.Sprintf("rule %d", *e.OtherRule))
	}
	if e.Weekday != "" {
		loc = append(loc, e.Weekday)
	}
	if e.Date != "" {
		loc = append(loc, e.Date)
	}
	if len(loc) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(loc, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// Result is the outcome of validating one document.
type Result struct {
	Valid  bool    `json:"valid"`
	Errors []Error `json:"errors"`
}

func intp(i int) *int { return &i }
