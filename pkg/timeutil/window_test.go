package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	days, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 7 {
		t.Fatalf("expected 7, got %d", days)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	days, label, err := ParseWindow("1w2d 1w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 16 {
		t.Fatalf("expected 16, got %d", days)
	}
	if label != "2w2d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowAll(t *testing.T) {
	days, label, err := ParseWindow("ALL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 0 || label != AllTime {
		t.Fatalf("unexpected %d %s", days, label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d", "1000000000000000000w", "99999999999999999999d", "100000d1d", "14286w"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for window %q", in)
		}
	}
}

func TestFirstDay(t *testing.T) {
	today := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	if got := FirstDay(today, 3, "2006-01-02"); got != "2024-02-29" {
		t.Fatalf("unexpected first day %s", got)
	}
	if got := FirstDay(today, 1, "2006-01-02"); got != "2024-03-02" {
		t.Fatalf("unexpected first day %s", got)
	}
}

func TestParseWindowUpperBound(t *testing.T) {
	days, _, err := ParseWindow("100000d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != MaxWindowDays {
		t.Fatalf("expected %d, got %d", MaxWindowDays, days)
	}
}
