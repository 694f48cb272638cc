// Package lifecycle holds the contract status state machine, the derived
// attribute engine and the validation rules shared by the create, update and
// report paths. Everything here is pure: functions take a snapshot of the
// record plus an explicit "now" and never touch storage, so detail views,
// list views and batch reports cannot diverge on the same stored record.
package lifecycle

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bpdigital/contract-repository/internal/model"
)

// UnboundedDays is returned by DaysUntilExpiration when the end date is
// absent. Halved so callers can add offsets without overflowing.
const UnboundedDays = math.MaxInt64 / 2

// Snapshot is the immutable view of a contract the derived attribute engine
// operates on. A zero EndDate counts as absent.
type Snapshot struct {
	Status        model.ContractStatus
	IsActive      bool
	StartDate     time.Time
	EndDate       time.Time
	ReminderDays  int
	ContractValue *decimal.Decimal
	Currency      string
}

func SnapshotOf(c *model.Contract) Snapshot {
	return Snapshot{
		Status:        c.Status,
		IsActive:      c.IsActive,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		ReminderDays:  c.ReminderDays,
		ContractValue: c.ContractValue,
		Currency:      c.Currency,
	}
}

// CurrentlyActive reports whether the contract is in force today: status
// ACTIVE, today within [start, end] and not soft-deleted.
func CurrentlyActive(s Snapshot, now time.Time) bool {
	if s.Status != model.StatusActive || !s.IsActive {
		return false
	}
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return false
	}
	today := dateOnly(now)
	return !dateOnly(s.StartDate).After(today) && !dateOnly(s.EndDate).Before(today)
}

// HasExpired is status-independent: the end date is strictly in the past.
func HasExpired(s Snapshot, now time.Time) bool {
	return !s.EndDate.IsZero() && dateOnly(s.EndDate).Before(dateOnly(now))
}

// ExpiringSoon reports whether the end date falls within
// [today, today+thresholdDays], both ends inclusive.
func ExpiringSoon(s Snapshot, now time.Time, thresholdDays int) bool {
	if s.EndDate.IsZero() {
		return false
	}
	days := DaysUntilExpiration(s, now)
	return days >= 0 && days <= int64(thresholdDays)
}

// DaysUntilExpiration counts whole days from today to the end date; zero on
// the end date itself, negative once expired.
func DaysUntilExpiration(s Snapshot, now time.Time) int64 {
	if s.EndDate.IsZero() {
		return UnboundedDays
	}
	return daysBetween(dateOnly(now), dateOnly(s.EndDate))
}

// DurationDays is the exclusive day count from start to end.
func DurationDays(s Snapshot) int64 {
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return 0
	}
	return daysBetween(dateOnly(s.StartDate), dateOnly(s.EndDate))
}

// NeedsRenewalReminder is true once the contract is inside its reminder
// window before expiry.
func NeedsRenewalReminder(s Snapshot, now time.Time) bool {
	if s.ReminderDays <= 0 || s.EndDate.IsZero() {
		return false
	}
	return DaysUntilExpiration(s, now) <= int64(s.ReminderDays)
}

// FormattedValue renders the monetary value as "MAD 1,250,000.00", or "N/A"
// when no value is set.
func FormattedValue(s Snapshot) string {
	if s.ContractValue == nil {
		return "N/A"
	}
	currency := s.Currency
	if currency == "" {
		currency = "MAD"
	}
	return currency + " " + groupThousands(s.ContractValue.StringFixed(2))
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int64 {
	return int64(to.Sub(from).Hours() / 24)
}

func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + fracPart
}
