package timeutil

import (
	"testing"
	"time"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) // Friday

func TestStartOfDay(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	in := time.Date(2024, 3, 16, 2, 30, 0, 0, zone) // 2024-03-15 21:30 UTC
	got := StartOfDay(in)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	zone := time.FixedZone("UTC-8", -8*60*60)
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", now, now, true},
		{"same day different hour", now, now.Add(8 * time.Hour), true},
		{"next day", now, now.Add(Day), false},
		{"across zones", time.Date(2024, 3, 15, 20, 0, 0, 0, zone), now, false}, // 04:00 UTC Mar 16
	}
	for _, tt := range tests {
		if got := SameDay(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: SameDay = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsTomorrow(t *testing.T) {
	monthEnd := time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		deadline time.Time
		now      time.Time
		want     bool
	}{
		{"next day", now.Add(Day), now, true},
		{"same day", now, now, false},
		{"two days out", now.Add(2 * Day), now, false},
		{"month boundary", time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), monthEnd, true},
	}
	for _, tt := range tests {
		if got := IsTomorrow(tt.deadline, tt.now); got != tt.want {
			t.Errorf("%s: IsTomorrow = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWithinWeek(t *testing.T) {
	tests := []struct {
		name     string
		deadline time.Time
		want     bool
	}{
		{"now itself", now, true},
		{"three days out", now.Add(3 * Day), true},
		{"exactly seven days", now.Add(Week), true},
		{"just past seven days", now.Add(Week + time.Second), false},
		{"in the past", now.Add(-time.Hour), false},
	}
	for _, tt := range tests {
		if got := WithinWeek(tt.deadline, now); got != tt.want {
			t.Errorf("%s: WithinWeek = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDueSoon(t *testing.T) {
	tests := []struct {
		name     string
		deadline time.Time
		want     bool
	}{
		{"an hour out", now.Add(time.Hour), true},
		{"exactly 24h", now.Add(Day), true},
		{"past 24h", now.Add(Day + time.Minute), false},
		{"overdue", now.Add(-time.Minute), false},
	}
	for _, tt := range tests {
		if got := DueSoon(tt.deadline, now); got != tt.want {
			t.Errorf("%s: DueSoon = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBetween(t *testing.T) {
	from, to := now.Add(-Week), now
	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"lower bound", from, true},
		{"upper bound", to, true},
		{"inside", now.Add(-3 * Day), true},
		{"before", from.Add(-time.Second), false},
		{"after", to.Add(time.Second), false},
	}
	for _, tt := range tests {
		if got := Between(tt.t, from, to); got != tt.want {
			t.Errorf("%s: Between = %v, want %v", tt.name, got, tt.want)
		}
	}
}
