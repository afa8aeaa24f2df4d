package daystore

import (
	"errors"
	"testing"
	"time"
)

func TestDayKeySameCalendarDay(t *testing.T) {
	morning := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	night := time.Date(2026, 2, 9, 23, 59, 59, 999, time.UTC)
	if DayKey(morning, time.UTC) != DayKey(night, time.UTC) {
		t.Fatalf("expected same key: %q vs %q", DayKey(morning, time.UTC), DayKey(night, time.UTC))
	}
	if DayKey(morning, time.UTC) != "2026-02-09" {
		t.Fatalf("unexpected key format: %q", DayKey(morning, time.UTC))
	}
}

func TestDayKeyDifferentDays(t *testing.T) {
	base := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i := -400; i <= 400; i++ {
		key := DayKey(base.AddDate(0, 0, i), time.UTC)
		if seen[key] {
			t.Fatalf("duplicate key %q at offset %d", key, i)
		}
		seen[key] = true
	}
}

func TestDayKeyRoundTrip(t *testing.T) {
	got, err := ParseDayKey("2026-02-28", time.UTC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if DayKey(got, time.UTC) != "2026-02-28" {
		t.Fatalf("round trip mismatch: %v", got)
	}
	if _, err := ParseDayKey("28/02/2026", time.UTC); err == nil {
		t.Fatal("expected error for bad key")
	}
}

func TestMonthGrid(t *testing.T) {
	// February 2026 starts on a Sunday and has 28 days.
	grid := MonthGrid(time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC))
	if len(grid) != 28 {
		t.Fatalf("expected 28 cells, got %d", len(grid))
	}
	if grid[0] == nil || grid[0].Day() != 1 {
		t.Fatalf("expected first cell to be the 1st, got %v", grid[0])
	}

	// March 2026 starts on a Sunday too; April starts on a Wednesday.
	grid = MonthGrid(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	if len(grid) != 3+30 {
		t.Fatalf("expected 33 cells, got %d", len(grid))
	}
	for i := 0; i < 3; i++ {
		if grid[i] != nil {
			t.Fatalf("expected padding at %d", i)
		}
	}
	if grid[3].Weekday() != time.Wednesday || grid[len(grid)-1].Day() != 30 {
		t.Fatalf("unexpected grid bounds: %v .. %v", grid[3], grid[len(grid)-1])
	}
}

func TestParsePage(t *testing.T) {
	cases := map[string]Page{
		"yesterday": PageYesterday,
		" Today ":   PageToday,
		"tm":        PageTomorrow,
	}
	for in, want := range cases {
		got, err := ParsePage(in)
		if err != nil || got != want {
			t.Fatalf("ParsePage(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParsePage("next week"); !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
}

func TestPageNavigationClamps(t *testing.T) {
	if PageYesterday.Prev() != PageYesterday || PageTomorrow.Next() != PageTomorrow {
		t.Fatal("expected navigation to clamp at the ends")
	}
	if PageYesterday.Next() != PageToday || PageTomorrow.Prev() != PageToday {
		t.Fatal("expected navigation through Today")
	}
	if PageYesterday.Offset() != -1 || PageToday.Offset() != 0 || PageTomorrow.Offset() != 1 {
		t.Fatal("unexpected offsets")
	}
}
