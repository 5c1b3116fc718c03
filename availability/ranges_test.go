package availability

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openhours/openhours/schedule"
	"github.com/openhours/openhours/sctime"
)

var stampComparer = cmp.Comparer(func(a, b sctime.Stamp) bool { return a.Equal(b) })

func iv(from, to string) Interval {
	return Interval{From: sctime.MustStamp(from), To: sctime.MustStamp(to)}
}

func TestAvailableRangesWeekly(t *testing.T) {
	s := officeHours()
	got := AvailableRanges(s, sctime.MustDate("2025-01-10"), sctime.MustDate("2025-01-13"))
	want := []Interval{
		iv("2025-01-10T09:00", "2025-01-10T17:00"), // Friday
		iv("2025-01-13T09:00", "2025-01-13T17:00"), // Monday; the weekend emits nothing
	}
	if diff := cmp.Diff(want, got, stampComparer); diff != "" {
		t.Fatalf("unexpected intervals (-want +got):\n%s", diff)
	}
}

func TestAvailableRangesCrossMidnight(t *testing.T) {
	s := barHours()
	got := AvailableRanges(s, sctime.MustDate("2025-01-09"), sctime.MustDate("2025-01-11"))
	want := []Interval{
		iv("2025-01-09T20:00", "2025-01-10T02:00"), // Thursday into Friday
		iv("2025-01-10T20:00", "2025-01-11T02:00"),
		iv("2025-01-11T20:00", "2025-01-12T02:00"), // Saturday extends past the walk's end
	}
	if diff := cmp.Diff(want, got, stampComparer); diff != "" {
		t.Fatalf("unexpected intervals (-want +got):\n%s", diff)
	}
}

func TestAvailableRangesOverrideAndClosure(t *testing.T) {
	s := decemberSeason()
	got := AvailableRanges(s, sctime.MustDate("2025-12-24"), sctime.MustDate("2025-12-26"))
	want := []Interval{
		iv("2025-12-24T08:00", "2025-12-24T22:00"),
		// Dec 25 is closed; nothing emitted.
		iv("2025-12-26T08:00", "2025-12-26T22:00"),
	}
	if diff := cmp.Diff(want, got, stampComparer); diff != "" {
		t.Fatalf("unexpected intervals (-want +got):\n%s", diff)
	}
}

func TestAvailableRangesAlwaysOpen(t *testing.T) {
	s := &schedule.Schedule{Always: true}
	got := AvailableRanges(s, sctime.MustDate("2025-03-01"), sctime.MustDate("2025-03-02"))
	want := []Interval{
		iv("2025-03-01T00:00", "2025-03-01T23:59"),
		iv("2025-03-02T00:00", "2025-03-02T23:59"),
	}
	if diff := cmp.Diff(want, got, stampComparer); diff != "" {
		t.Fatalf("unexpected intervals (-want +got):\n%s", diff)
	}
}

// Overlapping rules emit one interval each; merging is the caller's job.
func TestAvailableRangesDoesNotDeduplicate(t *testing.T) {
	s := &schedule.Schedule{
		Weekly: []schedule.WeeklyRule{
			{Weekdays: sctime.MustWeekdays("M------"), Times: []schedule.TimeRange{tr("09:00", "12:00")}},
			{Weekdays: sctime.MustWeekdays("M------"), Times: []schedule.TimeRange{tr("10:00", "13:00")}},
		},
	}
	got := AvailableRanges(s, sctime.MustDate("2025-01-13"), sctime.MustDate("2025-01-13"))
	if len(got) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(got))
	}
}
