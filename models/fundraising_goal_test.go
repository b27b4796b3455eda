package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestProgressPercentageZeroTargetIsGuarded(t *testing.T) {
	goal := FundraisingGoal{
		TargetAmount:  decimal.Zero,
		CurrentAmount: decimal.RequireFromString("500.00"),
	}

	if got := goal.ProgressPercentage(); !got.IsZero() {
		t.Fatalf("expected 0 progress for zero target, got %s", got)
	}
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		current string
		want    string
	}{
		{"quarter", "1000.00", "250.00", "25"},
		{"complete", "500.00", "500.00", "100"},
		{"over target", "100.00", "150.00", "150"},
		{"rounded to two places", "300.00", "100.00", "33.33"},
		{"nothing raised", "1000.00", "0.00", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := FundraisingGoal{
				TargetAmount:  decimal.RequireFromString(tt.target),
				CurrentAmount: decimal.RequireFromString(tt.current),
			}
			want := decimal.RequireFromString(tt.want)
			if got := goal.ProgressPercentage(); !got.Equal(want) {
				t.Fatalf("progress(%s/%s) = %s, want %s", tt.current, tt.target, got, want)
			}
		})
	}
}

func TestDaysLeftWithoutDeadline(t *testing.T) {
	goal := FundraisingGoal{}
	if got := goal.DaysLeft(); got != nil {
		t.Fatalf("expected nil days left without deadline, got %d", *got)
	}
}

func TestDaysLeftFutureDeadline(t *testing.T) {
	deadline := time.Now().AddDate(0, 0, 10)
	goal := FundraisingGoal{Deadline: &deadline}

	got := goal.DaysLeft()
	if got == nil {
		t.Fatal("expected days left, got nil")
	}
	if *got != 10 {
		t.Fatalf("expected 10 days left, got %d", *got)
	}
}

func TestDaysLeftPastDeadlineClampsToZero(t *testing.T) {
	for _, daysAgo := range []int{1, 30} {
		deadline := time.Now().AddDate(0, 0, -daysAgo)
		goal := FundraisingGoal{Deadline: &deadline}

		got := goal.DaysLeft()
		if got == nil {
			t.Fatal("expected days left, got nil")
		}
		if *got != 0 {
			t.Fatalf("expected 0 days left for deadline %d days ago, got %d", daysAgo, *got)
		}
	}
}

func TestDaysLeftToday(t *testing.T) {
	deadline := time.Now()
	goal := FundraisingGoal{Deadline: &deadline}

	got := goal.DaysLeft()
	if got == nil || *got != 0 {
		t.Fatalf("expected 0 days left for a deadline today, got %v", got)
	}
}
