// Package timeutil holds the temporal predicates shared by the query
// and analytics engines. Calendar comparisons (today/tomorrow) are
// evaluated in UTC; window checks are plain duration arithmetic
// against the caller-supplied reference time.
package timeutil

import "time"

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

// StartOfDay returns midnight UTC of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsOverdue reports whether deadline is strictly before now.
func IsOverdue(deadline, now time.Time) bool {
	return deadline.Before(now)
}

// IsToday reports whether deadline falls on now's calendar day.
func IsToday(deadline, now time.Time) bool {
	return SameDay(deadline, now)
}

// IsTomorrow reports whether deadline falls on the calendar day after now.
func IsTomorrow(deadline, now time.Time) bool {
	return SameDay(deadline, now.Add(Day))
}

// WithinWeek reports whether deadline is inside [now, now+7d], both
// ends inclusive.
func WithinWeek(deadline, now time.Time) bool {
	if deadline.Before(now) {
		return false
	}
	return !deadline.After(now.Add(Week))
}

// DueSoon reports whether deadline is inside [now, now+24h]. An
// already-overdue deadline is not "soon".
func DueSoon(deadline, now time.Time) bool {
	if deadline.Before(now) {
		return false
	}
	return !deadline.After(now.Add(Day))
}

// Between reports whether t is inside [from, to], both ends inclusive.
func Between(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
