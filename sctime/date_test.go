package sctime

import "testing"

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-07")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := d.String(); got != "2025-01-07" {
		t.Fatalf("expected 2025-01-07, got %s", got)
	}
	if got := d.Weekday(); got != Tuesday {
		t.Fatalf("expected tuesday, got %s", got)
	}
}

func TestParseDateRejectsImpossible(t *testing.T) {
	for _, s := range []string{"2025-02-30", "2025-13-01", "2025-00-10", "25-01-01", "2025/01/01", "2025-01-7", ""} {
		if _, err := ParseDate(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := MustDate("2024-12-31")
	if got := d.AddDays(1).String(); got != "2025-01-01" {
		t.Fatalf("AddDays: expected 2025-01-01, got %s", got)
	}
	if got := d.AddMonths(2).String(); got != "2025-02-28" {
		t.Fatalf("AddMonths: expected 2025-02-28, got %s", got)
	}
	if got := d.AddYears(1).String(); got != "2025-12-31" {
		t.Fatalf("AddYears: expected 2025-12-31, got %s", got)
	}
	if got := DaysBetween(MustDate("2025-01-01"), MustDate("2025-01-31")); got != 30 {
		t.Fatalf("DaysBetween: expected 30, got %d", got)
	}
	if got := DaysBetween(MustDate("2025-01-31"), MustDate("2025-01-01")); got != -30 {
		t.Fatalf("DaysBetween reversed: expected -30, got %d", got)
	}
}

func TestDateComparison(t *testing.T) {
	a, b := MustDate("2025-06-01"), MustDate("2025-06-02")
	if !a.Before(b) || b.Before(a) || a.Equal(b) {
		t.Fatal("comparison mismatch for 2025-06-01 vs 2025-06-02")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatal("Compare mismatch")
	}
}
