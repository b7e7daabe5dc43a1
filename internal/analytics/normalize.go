// bizpulse/internal/analytics/normalize.go
package analytics

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const dueDateLayout = "2006-01-02"

// parsedDeal is a DealRecord after boundary validation. A bad amount
// becomes 0 and a bad due date is marked absent; either way the deal
// keeps contributing to the counts it can still legitimately count
// toward. A single dirty record must never blank the whole dashboard.
type parsedDeal struct {
	DealRecord
	amount  float64
	due     time.Time
	hasDue  bool
	paid    bool
	pending bool
}

func normalizeDeals(deals []DealRecord) []parsedDeal {
	out := make([]parsedDeal, 0, len(deals))
	for _, d := range deals {
		p := parsedDeal{DealRecord: d}

		amount, err := strconv.ParseFloat(strings.TrimSpace(d.Amount), 64)
		if err != nil {
			slog.Warn("Deal has a non-numeric amount, counting as zero",
				"deal_id", d.ID, "amount", d.Amount)
			amount = 0
		}
		p.amount = amount

		if d.DueDate != "" {
			due, err := time.ParseInLocation(dueDateLayout, d.DueDate, time.UTC)
			if err != nil {
				slog.Warn("Deal has an unparseable due date, excluding from date views",
					"deal_id", d.ID, "due_date", d.DueDate)
			} else {
				p.due = due
				p.hasDue = true
			}
		}

		p.paid = d.Status == "Paid"
		p.pending = d.Status == "Pending"
		out = append(out, p)
	}
	return out
}

// overdueAt reports whether the deal is pending and past due relative
// to now. Due dates are date-only and parse to UTC midnight, so a deal
// due today counts as overdue with zero whole days once the day has
// started. Deals without a valid due date can never be overdue.
func (p parsedDeal) overdueAt(now time.Time) bool {
	return p.pending && p.hasDue && p.due.Before(now.UTC())
}

// daysPastDue is the whole-day difference between now and the due date,
// both truncated to UTC midnight so the time of day the snapshot was
// taken can never shift the count by one.
func (p parsedDeal) daysPastDue(now time.Time) int {
	days := int(utcMidnight(now).Sub(utcMidnight(p.due)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func utcMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
