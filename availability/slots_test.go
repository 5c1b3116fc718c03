package availability

import (
	"testing"

	"github.com/openhours/openhours/sctime"
)

func TestSlotsBasic(t *testing.T) {
	s := officeHours()
	windowStart := sctime.MustStamp("2025-01-07T09:00")
	windowEnd := sctime.MustStamp("2025-01-07T10:00")

	busy := []Interval{iv("2025-01-07T09:15", "2025-01-07T09:44")}

	slots := Slots(s, windowStart, windowEnd, 15, 15, busy, windowStart)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d (%v)", len(slots), slots)
	}
	if got := slots[0].String(); got != "2025-01-07T09:00" {
		t.Fatalf("expected first slot 09:00, got %s", got)
	}
	if got := slots[1].String(); got != "2025-01-07T09:45" {
		t.Fatalf("expected second slot 09:45, got %s", got)
	}
}

func TestSlotsSkipsPast(t *testing.T) {
	s := officeHours()
	windowStart := sctime.MustStamp("2025-01-07T09:00")
	windowEnd := sctime.MustStamp("2025-01-07T10:00")

	now := sctime.MustStamp("2025-01-07T09:31")
	slots := Slots(s, windowStart, windowEnd, 15, 15, nil, now)
	// 09:00, 09:15 and 09:30 start before now; 09:45 is the only fit.
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d (%v)", len(slots), slots)
	}
	if got := slots[0].String(); got != "2025-01-07T09:45" {
		t.Fatalf("expected slot 09:45, got %s", got)
	}
}

func TestSlotsRespectsClosedDays(t *testing.T) {
	s := officeHours()
	// Saturday + Sunday: no open hours, no slots.
	slots := Slots(s,
		sctime.MustStamp("2025-01-11T00:00"), sctime.MustStamp("2025-01-12T23:59"),
		30, 30, nil, sctime.MustStamp("2025-01-11T00:00"))
	if len(slots) != 0 {
		t.Fatalf("expected no slots on the weekend, got %v", slots)
	}
}

func TestSlotsSpansMidnight(t *testing.T) {
	s := barHours()
	// Thursday 20:00 through Friday 02:00 is one merged open stretch; a
	// 60-minute slot starting 01:00 Friday still fits.
	slots := Slots(s,
		sctime.MustStamp("2025-01-09T20:00"), sctime.MustStamp("2025-01-10T02:00"),
		60, 60, nil, sctime.MustStamp("2025-01-09T20:00"))
	if len(slots) != 6 {
		t.Fatalf("expected 6 hourly slots, got %d (%v)", len(slots), slots)
	}
	if got := slots[5].String(); got != "2025-01-10T01:00" {
		t.Fatalf("expected last slot 01:00 Friday, got %s", got)
	}
}

func TestSlotsMergesOverlappingRules(t *testing.T) {
	s := officeHours()
	s.Weekly = append(s.Weekly, s.Weekly[0]) // duplicate rule
	windowStart := sctime.MustStamp("2025-01-07T09:00")
	windowEnd := sctime.MustStamp("2025-01-07T11:00")
	slots := Slots(s, windowStart, windowEnd, 60, 60, nil, windowStart)
	if len(slots) != 2 {
		t.Fatalf("duplicate rules must not double-emit slots, got %d (%v)", len(slots), slots)
	}
}

func TestSlotsRejectsBadArguments(t *testing.T) {
	s := officeHours()
	start := sctime.MustStamp("2025-01-07T09:00")
	end := sctime.MustStamp("2025-01-07T10:00")
	if Slots(s, start, end, 0, 15, nil, start) != nil {
		t.Fatal("zero duration must yield nil")
	}
	if Slots(s, start, end, 15, 0, nil, start) != nil {
		t.Fatal("zero step must yield nil")
	}
	if Slots(s, end, start, 15, 15, nil, start) != nil {
		t.Fatal("inverted window must yield nil")
	}
}
