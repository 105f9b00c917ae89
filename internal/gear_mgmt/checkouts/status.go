package checkouts

import "time"

// Display states derived on read; never stored.
const (
	DisplayReturned = "returned"
	DisplayOverdue  = "overdue"
	DisplayDueSoon  = "due_soon"
	DisplayActive   = "active"
)

// dueSoonDays is the UI threshold: due within this many days counts as due_soon.
const dueSoonDays = 2

// DisplayStatus classifies a checkout for display. Date granularity: a
// checkout due today is due_soon, one due yesterday is overdue, and a
// returned checkout is never overdue regardless of dates.
func DisplayStatus(status string, expectedReturn, now time.Time) string {
	if status == StatusReturned {
		return DisplayReturned
	}
	today := truncateToDay(now)
	due := truncateToDay(expectedReturn)
	if due.Before(today) {
		return DisplayOverdue
	}
	if !due.After(today.AddDate(0, 0, dueSoonDays)) {
		return DisplayDueSoon
	}
	return DisplayActive
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
