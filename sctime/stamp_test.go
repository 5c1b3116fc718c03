package sctime

import "testing"

func TestParseStamp(t *testing.T) {
	st, err := ParseStamp("2025-01-07T08:00")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if st.Date().String() != "2025-01-07" || st.Clock() != MustClock("08:00") {
		t.Fatalf("extraction mismatch: %s", st)
	}
	if got := st.String(); got != "2025-01-07T08:00" {
		t.Fatalf("roundtrip mismatch: %s", got)
	}
}

func TestParseStampRejectsMalformed(t *testing.T) {
	for _, s := range []string{"2025-01-07 08:00", "2025-01-07T8:00", "2025-02-30T08:00", "2025-01-07T24:00", "2025-01-07"} {
		if _, err := ParseStamp(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestStampAddMinutesCarries(t *testing.T) {
	st := MustStamp("2024-12-31T23:59")
	if got := st.AddMinutes(1).String(); got != "2025-01-01T00:00" {
		t.Fatalf("expected carry into new year, got %s", got)
	}
	if got := MustStamp("2025-01-01T00:00").AddMinutes(-1).String(); got != "2024-12-31T23:59" {
		t.Fatalf("expected carry backwards, got %s", got)
	}
	if got := MustStamp("2025-06-01T10:00").AddMinutes(36 * 60).String(); got != "2025-06-02T22:00" {
		t.Fatalf("expected 2025-06-02T22:00, got %s", got)
	}
}

func TestStampComparison(t *testing.T) {
	a := MustStamp("2025-06-01T10:00")
	b := MustStamp("2025-06-01T10:01")
	c := MustStamp("2025-06-02T00:00")
	if !a.Before(b) || !b.Before(c) || !c.After(a) {
		t.Fatal("ordering mismatch")
	}
	if !a.Equal(MustStamp("2025-06-01T10:00")) {
		t.Fatal("equality mismatch")
	}
}

func TestValidZone(t *testing.T) {
	for _, name := range []string{"UTC", "Europe/Berlin", "America/New_York"} {
		if !ValidZone(name) {
			t.Fatalf("expected %q to be valid", name)
		}
	}
	for _, name := range []string{"", "Local", "Mars/Olympus", "Europe_Berlin"} {
		if ValidZone(name) {
			t.Fatalf("expected %q to be invalid", name)
		}
	}
}
