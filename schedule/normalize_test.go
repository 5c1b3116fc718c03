package schedule

import (
	"reflect"
	"testing"

	"github.com/openhours/openhours/sctime"
)

func TestNormalizeRestrictsSpecificOverrides(t *testing.T) {
	// 2025-01-07/08 is Tue+Wed; a Mon-Sun rule inside must shrink to -TW----.
	s := &Schedule{
		Weekly: mondayNine(),
		Overrides: []Override{{
			From: sctime.MustDate("2025-01-07"),
			To:   datep("2025-01-08"),
			Rules: []WeeklyRule{{
				Weekdays: sctime.AllWeekdays,
				Times:    []TimeRange{tr("10:00", "12:00")},
			}},
		}},
	}
	n := Normalize(s)
	if got := n.Overrides[0].Rules[0].Weekdays.String(); got != "-TW----" {
		t.Fatalf("expected -TW----, got %s", got)
	}
	// The input schedule is untouched.
	if got := s.Overrides[0].Rules[0].Weekdays; got != sctime.AllWeekdays {
		t.Fatalf("input mutated: %s", got)
	}
}

func TestNormalizeLeavesIndefiniteAndWeekly(t *testing.T) {
	s := &Schedule{
		Weekly: []WeeklyRule{{Weekdays: sctime.AllWeekdays, Times: []TimeRange{tr("08:00", "20:00")}}},
		Overrides: []Override{{
			From:  sctime.MustDate("2025-01-01"),
			Rules: []WeeklyRule{{Weekdays: sctime.AllWeekdays, Times: []TimeRange{tr("10:00", "12:00")}}},
		}},
	}
	n := Normalize(s)
	if n.Weekly[0].Weekdays != sctime.AllWeekdays {
		t.Fatalf("weekly rules must not change, got %s", n.Weekly[0].Weekdays)
	}
	if n.Overrides[0].Rules[0].Weekdays != sctime.AllWeekdays {
		t.Fatalf("indefinite override must not change, got %s", n.Overrides[0].Rules[0].Weekdays)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	s := &Schedule{
		Weekly: mondayNine(),
		Overrides: []Override{{
			From: sctime.MustDate("2025-01-07"),
			To:   datep("2025-01-08"),
			Rules: []WeeklyRule{{
				Weekdays: sctime.AllWeekdays,
				Times:    []TimeRange{tr("10:00", "12:00")},
			}},
		}},
	}
	once := Normalize(s)
	twice := Normalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalize is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}
