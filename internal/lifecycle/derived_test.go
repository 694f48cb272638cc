package lifecycle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bpdigital/contract-repository/internal/model"
)

var testNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func activeSnapshot(start, end time.Time) Snapshot {
	return Snapshot{
		Status:       model.StatusActive,
		IsActive:     true,
		StartDate:    start,
		EndDate:      end,
		ReminderDays: 30,
	}
}

func TestCurrentlyActive(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{
			name: "within term",
			snap: activeSnapshot(date(2026, 1, 1), date(2026, 12, 31)),
			want: true,
		},
		{
			name: "today is start date",
			snap: activeSnapshot(date(2026, 3, 15), date(2026, 12, 31)),
			want: true,
		},
		{
			name: "today is end date",
			snap: activeSnapshot(date(2026, 1, 1), date(2026, 3, 15)),
			want: true,
		},
		{
			name: "not yet started",
			snap: activeSnapshot(date(2026, 4, 1), date(2026, 12, 31)),
			want: false,
		},
		{
			name: "already ended",
			snap: activeSnapshot(date(2025, 1, 1), date(2025, 12, 31)),
			want: false,
		},
		{
			name: "draft status",
			snap: Snapshot{Status: model.StatusDraft, IsActive: true, StartDate: date(2026, 1, 1), EndDate: date(2026, 12, 31)},
			want: false,
		},
		{
			name: "soft deleted",
			snap: Snapshot{Status: model.StatusActive, IsActive: false, StartDate: date(2026, 1, 1), EndDate: date(2026, 12, 31)},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentlyActive(tt.snap, testNow); got != tt.want {
				t.Errorf("CurrentlyActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasExpired(t *testing.T) {
	if !HasExpired(activeSnapshot(date(2025, 1, 1), date(2026, 3, 14)), testNow) {
		t.Error("end date yesterday should count as expired")
	}
	if HasExpired(activeSnapshot(date(2025, 1, 1), date(2026, 3, 15)), testNow) {
		t.Error("end date today should not count as expired")
	}
	if HasExpired(Snapshot{Status: model.StatusActive, IsActive: true}, testNow) {
		t.Error("missing end date should never count as expired")
	}
}

func TestDaysUntilExpiration(t *testing.T) {
	tests := []struct {
		name string
		end  time.Time
		want int64
	}{
		{"ten days out", date(2026, 3, 25), 10},
		{"today", date(2026, 3, 15), 0},
		{"expired five days ago", date(2026, 3, 10), -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := activeSnapshot(date(2026, 1, 1), tt.end)
			if got := DaysUntilExpiration(snap, testNow); got != tt.want {
				t.Errorf("DaysUntilExpiration() = %d, want %d", got, tt.want)
			}
		})
	}

	unbounded := Snapshot{Status: model.StatusActive, IsActive: true}
	if got := DaysUntilExpiration(unbounded, testNow); got != UnboundedDays {
		t.Errorf("missing end date: got %d, want UnboundedDays", got)
	}
}

func TestExpiringSoon(t *testing.T) {
	snap := activeSnapshot(date(2026, 1, 1), date(2026, 4, 14)) // 30 days out

	if !ExpiringSoon(snap, testNow, 30) {
		t.Error("end date exactly at threshold should be expiring soon")
	}
	if ExpiringSoon(snap, testNow, 29) {
		t.Error("end date one day past threshold should not be expiring soon")
	}

	expired := activeSnapshot(date(2025, 1, 1), date(2026, 3, 10))
	if ExpiringSoon(expired, testNow, 30) {
		t.Error("already expired contract should not be expiring soon")
	}
}

func TestNeedsRenewalReminder(t *testing.T) {
	snap := activeSnapshot(date(2026, 1, 1), date(2026, 3, 25)) // 10 days out

	snap.ReminderDays = 30
	if !NeedsRenewalReminder(snap, testNow) {
		t.Error("10 days out with 30 day window should need a reminder")
	}
	snap.ReminderDays = 5
	if NeedsRenewalReminder(snap, testNow) {
		t.Error("10 days out with 5 day window should not need a reminder")
	}
	snap.ReminderDays = 0
	if NeedsRenewalReminder(snap, testNow) {
		t.Error("zero reminder window should never trigger")
	}
}

func TestDurationDays(t *testing.T) {
	snap := activeSnapshot(date(2026, 1, 1), date(2026, 12, 31))
	if got := DurationDays(snap); got != 364 {
		t.Errorf("DurationDays() = %d, want 364", got)
	}
	if got := DurationDays(Snapshot{}); got != 0 {
		t.Errorf("missing dates: DurationDays() = %d, want 0", got)
	}
}

func TestFormattedValue(t *testing.T) {
	value := decimal.NewFromFloat(1250000)
	snap := Snapshot{ContractValue: &value, Currency: "MAD"}
	if got := FormattedValue(snap); got != "MAD 1,250,000.00" {
		t.Errorf("FormattedValue() = %q, want %q", got, "MAD 1,250,000.00")
	}

	small := decimal.NewFromFloat(999.5)
	snap = Snapshot{ContractValue: &small, Currency: "EUR"}
	if got := FormattedValue(snap); got != "EUR 999.50" {
		t.Errorf("FormattedValue() = %q, want %q", got, "EUR 999.50")
	}

	noCurrency := decimal.NewFromInt(1000)
	snap = Snapshot{ContractValue: &noCurrency}
	if got := FormattedValue(snap); got != "MAD 1,000.00" {
		t.Errorf("missing currency should fall back to MAD, got %q", got)
	}

	if got := FormattedValue(Snapshot{}); got != "N/A" {
		t.Errorf("missing value: FormattedValue() = %q, want N/A", got)
	}
}
