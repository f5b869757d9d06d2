package gameid

import (
	"testing"
	"time"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate("10.06.25", "Bucks", "Heat")
	b := Generate("10.06.25", "Bucks", "Heat")
	if a != b {
		t.Fatalf("same inputs produced different ids: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("id length = %d, want 16", len(a))
	}
}

func TestGenerateNormalization(t *testing.T) {
	base := Generate("10.06.25", "Bucks", "Heat")

	variants := []struct {
		date, opponent, team string
	}{
		{"10.06.25", "bucks", "heat"},
		{"10.06.25", "BUCKS", "HEAT"},
		{" 10.06.25 ", " Bucks ", " Heat "},
		{"10.06.25", "Bucks  ", "  Heat"},
	}
	for _, v := range variants {
		if got := Generate(v.date, v.opponent, v.team); got != base {
			t.Errorf("Generate(%q, %q, %q) = %s, want %s", v.date, v.opponent, v.team, got, base)
		}
	}
}

func TestGenerateDistinctGames(t *testing.T) {
	a := Generate("10.06.25", "Bucks", "Heat")
	b := Generate("10.07.25", "Bucks", "Heat")
	c := Generate("10.06.25", "Celtics", "Heat")
	if a == b || a == c {
		t.Fatalf("distinct games collided: %s %s %s", a, b, c)
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label    string
		date     string
		team     string
		opponent string
		ok       bool
	}{
		{"10.06.25 Heat v Bucks(team).csv", "10.06.25", "Heat", "Bucks", true},
		{"10.06.25 Heat vs Bucks", "10.06.25", "Heat", "Bucks", true},
		{"10.06.25 Heat @ Bucks", "10.06.25", "Heat", "Bucks", true},
		{"10.06.25 Heat at Bucks", "10.06.25", "Heat", "Bucks", true},
		{"10.06.25 Heat Bucks", "10.06.25", "Heat", "Bucks", true},
		{"10.06.25 Heat", "10.06.25", "Heat", "Unknown", true},
		{"10.06.25", "10.06.25", "Heat", "Unknown", true},
		{"1.6.25 Heat v Bucks", "01.06.25", "Heat", "Bucks", true},
		{"no date here", "", "", "", false},
	}

	for _, tt := range tests {
		date, team, opponent, ok := ParseLabel(tt.label)
		if ok != tt.ok {
			t.Errorf("ParseLabel(%q) ok = %v, want %v", tt.label, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if date != tt.date || team != tt.team || opponent != tt.opponent {
			t.Errorf("ParseLabel(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.label, date, team, opponent, tt.date, tt.team, tt.opponent)
		}
	}
}

func TestDateStringToTimestamp(t *testing.T) {
	ts, ok := DateStringToTimestamp("10.06.25")
	if !ok {
		t.Fatal("expected valid timestamp")
	}
	got := time.Unix(ts, 0)
	want := time.Date(2025, time.October, 6, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("timestamp = %v, want %v", got, want)
	}
}

func TestDateStringToTimestampMalformed(t *testing.T) {
	bad := []string{"", "10.06", "10.06.25.01", "aa.06.25", "10.bb.25", "02.30.25", "13.01.25", "00.10.25"}
	for _, s := range bad {
		if _, ok := DateStringToTimestamp(s); ok {
			t.Errorf("DateStringToTimestamp(%q) ok = true, want false", s)
		}
	}
}
