package deadline

import (
	"testing"
	"time"
)

var now = time.Date(2025, time.September, 1, 17, 53, 27, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		deadline *time.Time
		want     Urgency
	}{
		{"no deadline", nil, Normal},
		{"overdue by a day", at(-day), Critical},
		{"right now", at(0), Critical},
		{"in a few hours", at(3 * time.Hour), Critical},
		{"in one day", at(day), Critical},
		{"in two days", at(2 * day), Critical},
		{"two days and a minute", at(2*day + time.Minute), Warning},
		{"in three days", at(3 * day), Warning},
		{"in seven days", at(7 * day), Warning},
		{"in eight days", at(8 * day), Normal},
		{"in a month", at(30 * day), Normal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.deadline, now); got != tt.want {
				t.Fatalf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	if _, ok := DaysUntil(nil, now); ok {
		t.Fatal("DaysUntil(nil) ok = true, want false")
	}

	tests := []struct {
		deadline *time.Time
		want     int
	}{
		{at(time.Hour), 1},
		{at(day), 1},
		{at(day + time.Second), 2},
		{at(-time.Hour), 0},
		{at(-day), -1},
		{at(-day - time.Hour), -1},
	}
	for _, tt := range tests {
		got, ok := DaysUntil(tt.deadline, now)
		if !ok || got != tt.want {
			t.Errorf("DaysUntil(%s) = %d, %v, want %d, true", tt.deadline.Sub(now), got, ok, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tomorrow := time.Date(2025, time.September, 2, 10, 0, 0, 0, time.UTC)
	later := time.Date(2025, time.September, 15, 23, 59, 59, 0, time.UTC)
	// 01:00 UTC on the 2nd is still the 1st in BRT.
	earlyUTC := time.Date(2025, time.September, 2, 1, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline *time.Time
		loc      *time.Location
		want     string
	}{
		{"absent", nil, time.UTC, NoDeadlineLabel},
		{"tomorrow", &tomorrow, time.UTC, TomorrowLabel},
		{"later date", &later, time.UTC, "15/09/25"},
		{"nil location uses UTC", &later, nil, "15/09/25"},
		{"today in local zone", &earlyUTC, saoPaulo, "01/09/25"},
		{"tomorrow in UTC", &earlyUTC, time.UTC, TomorrowLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.deadline, now, tt.loc); got != tt.want {
				t.Fatalf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
