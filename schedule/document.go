package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/openhours/openhours/sctime"
)

// Document is the wire form of a schedule. Every field stays a string so the
// validation engine can report malformed values as findings instead of
// failing the decode.
type Document struct {
	// Weekly holds the recurring rules. Always is set instead when the JSON
	// carries the `weekly: true` sentinel.
	Weekly    []RuleDoc     `json:"-"`
	Always    bool          `json:"-"`
	Overrides []OverrideDoc `json:"overrides,omitempty"`
	Timezone  string        `json:"timezone,omitempty"`
}

// RuleDoc is the wire form of a weekly rule.
type RuleDoc struct {
	Weekdays string         `json:"weekdays"`
	Times    []TimeRangeDoc `json:"times"`
}

// TimeRangeDoc is the wire form of a time range.
type TimeRangeDoc struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// OverrideDoc is the wire form of an override. To is a pointer so an absent
// end date (an indefinite override) is distinguishable from an empty string.
type OverrideDoc struct {
	From  string    `json:"from"`
	To    *string   `json:"to,omitempty"`
	Rules []RuleDoc `json:"rules"`
}

type documentShadow struct {
	Weekly    json.RawMessage `json:"weekly"`
	Overrides []OverrideDoc   `json:"overrides,omitempty"`
	Timezone  string          `json:"timezone,omitempty"`
}

// UnmarshalJSON decodes the schedule document, accepting both forms of the
// weekly field: the literal true sentinel or a rule array.
func (d *Document) UnmarshalJSON(data []byte) error {
	var shadow documentShadow
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	*d = Document{Overrides: shadow.Overrides, Timezone: shadow.Timezone}

	raw := bytes.TrimSpace(shadow.Weekly)
	switch {
	case len(raw) == 0:
		return fmt.Errorf("weekly is required")
	case bytes.Equal(raw, []byte("true")):
		d.Always = true
		return nil
	case raw[0] == '[':
		return json.Unmarshal(raw, &d.Weekly)
	default:
		return fmt.Errorf("weekly must be true or an array of rules")
	}
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (d Document) MarshalJSON() ([]byte, error) {
	shadow := documentShadow{Overrides: d.Overrides, Timezone: d.Timezone}
	if d.Always {
		shadow.Weekly = json.RawMessage("true")
	} else {
		weekly, err := json.Marshal(ruleDocsOrEmpty(d.Weekly))
		if err != nil {
			return nil, err
		}
		shadow.Weekly = weekly
	}
	return json.Marshal(shadow)
}

func ruleDocsOrEmpty(rules []RuleDoc) []RuleDoc {
	if rules == nil {
		return []RuleDoc{}
	}
	return rules
}

// Compile parses every field of the document into the typed model. The first
// malformed value aborts with a hard error; callers wanting every problem
// reported run the validation engine instead.
func (d *Document) Compile() (*Schedule, error) {
	s := &Schedule{Always: d.Always, Timezone: d.Timezone}

	if d.Timezone != "" && !sctime.ValidZone(d.Timezone) {
		return nil, fmt.Errorf("timezone: unknown IANA identifier %q", d.Timezone)
	}

	for i, rd := range d.Weekly {
		rule, err := compileRule(rd)
		if err != nil {
			return nil, fmt.Errorf("weekly[%d]: %w", i, err)
		}
		s.Weekly = append(s.Weekly, rule)
	}

	for i, od := range d.Overrides {
		o := Override{}
		from, err := sctime.ParseDate(od.From)
		if err != nil {
			return nil, fmt.Errorf("overrides[%d].from: %w", i, err)
		}
		o.From = from
		if od.To != nil {
			to, err := sctime.ParseDate(*od.To)
			if err != nil {
				return nil, fmt.Errorf("overrides[%d].to: %w", i, err)
			}
			if to.Before(from) {
				return nil, fmt.Errorf("overrides[%d]: to %s precedes from %s", i, to, from)
			}
			o.To = &to
		}
		for j, rd := range od.Rules {
			rule, err := compileRule(rd)
			if err != nil {
				return nil, fmt.Errorf("overrides[%d].rules[%d]: %w", i, j, err)
			}
			o.Rules = append(o.Rules, rule)
		}
		s.Overrides = append(s.Overrides, o)
	}
	return s, nil
}

func compileRule(rd RuleDoc) (WeeklyRule, error) {
	weekdays, err := sctime.ParseWeekdays(rd.Weekdays)
	if err != nil {
		return WeeklyRule{}, fmt.Errorf("weekdays: %w", err)
	}
	rule := WeeklyRule{Weekdays: weekdays}
	for k, td := range rd.Times {
		from, err := sctime.ParseClock(td.From)
		if err != nil {
			return WeeklyRule{}, fmt.Errorf("times[%d].from: %w", k, err)
		}
		to, err := sctime.ParseClock(td.To)
		if err != nil {
			return WeeklyRule{}, fmt.Errorf("times[%d].to: %w", k, err)
		}
		rule.Times = append(rule.Times, TimeRange{From: from, To: to})
	}
	return rule, nil
}
