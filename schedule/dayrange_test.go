package schedule

import (
	"errors"
	"testing"
)

func TestDayInRangeContiguous(t *testing.T) {
	want := map[string]bool{
		"mon": true, "tue": true, "wed": true,
		"thu": false, "fri": false, "sat": false, "sun": false,
	}
	for day, expected := range want {
		got, err := DayInRange("mon-wed", day)
		if err != nil {
			t.Fatalf("DayInRange(mon-wed, %s) error = %v", day, err)
		}
		if got != expected {
			t.Errorf("DayInRange(mon-wed, %s) = %v, want %v", day, got, expected)
		}
	}
}

func TestDayInRangeWraparound(t *testing.T) {
	want := map[string]bool{
		"sat": true, "sun": true, "mon": true,
		"tue": false, "wed": false, "thu": false, "fri": false,
	}
	for day, expected := range want {
		got, err := DayInRange("sat-mon", day)
		if err != nil {
			t.Fatalf("DayInRange(sat-mon, %s) error = %v", day, err)
		}
		if got != expected {
			t.Errorf("DayInRange(sat-mon, %s) = %v, want %v", day, got, expected)
		}
	}
}

func TestDayInRangeSingleDay(t *testing.T) {
	got, err := DayInRange("wed", "wed")
	if err != nil || !got {
		t.Errorf("DayInRange(wed, wed) = %v, %v, want true", got, err)
	}
	got, err = DayInRange("wed", "thu")
	if err != nil || got {
		t.Errorf("DayInRange(wed, thu) = %v, %v, want false", got, err)
	}
}

func TestDayInRangeNormalizesTokens(t *testing.T) {
	got, err := DayInRange(" Sat - Mon ", "sun")
	if err != nil {
		t.Fatalf("DayInRange error = %v", err)
	}
	if !got {
		t.Error("DayInRange( Sat - Mon , sun) = false, want true")
	}
}

func TestDayInRangeMalformed(t *testing.T) {
	for _, rangeStr := range []string{"monday-wed", "funday", "mon-tue-wed", ""} {
		if _, err := DayInRange(rangeStr, "mon"); !errors.Is(err, ErrMalformedDayRange) {
			t.Errorf("DayInRange(%q) error = %v, want %v", rangeStr, err, ErrMalformedDayRange)
		}
	}
}
