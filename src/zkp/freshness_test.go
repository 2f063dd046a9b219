package zkp

import (
	"testing"
	"time"
)

func TestIsFresh(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		timestamp time.Time
		want      bool
	}{
		{"current time", now, true},
		{"one day old", now.Add(-24 * time.Hour), true},
		{"exactly on the boundary", now.Add(-DefaultFreshnessWindow), true},
		{"one second past the boundary", now.Add(-DefaultFreshnessWindow - time.Second), false},
		{"31 days old", now.Add(-31 * 24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsFresh(tt.timestamp, now, DefaultFreshnessWindow)
			if got != tt.want {
				t.Errorf("IsFresh(%v) = %v, want %v", tt.timestamp, got, tt.want)
			}
		})
	}
}

func TestIsFreshCustomWindow(t *testing.T) {
	now := time.Now()

	if !IsFresh(now.Add(-time.Hour), now, 2*time.Hour) {
		t.Error("expected a one hour old timestamp to be fresh in a two hour window")
	}
	if IsFresh(now.Add(-3*time.Hour), now, 2*time.Hour) {
		t.Error("expected a three hour old timestamp to be stale in a two hour window")
	}
}
