// Package deadline classifies task deadlines into urgency tiers and renders
// deadline labels for board cards. Every function takes now explicitly.
package deadline

import (
	"math"
	"time"
)

// Urgency is the display tier of a deadline.
type Urgency string

const (
	Normal   Urgency = "normal"
	Warning  Urgency = "warning"
	Critical Urgency = "critical"
)

const (
	// CriticalDays is the largest day count still classified as critical.
	CriticalDays = 2
	// WarningDays is the largest day count still classified as warning.
	WarningDays = 7

	day = 24 * time.Hour
)

const (
	NoDeadlineLabel = "Sem prazo"
	TomorrowLabel   = "amanhã"
	// DateLayout is the pt-BR short date, e.g. 26/08/25.
	DateLayout = "02/01/06"
)

// DaysUntil returns the number of days between now and the deadline, rounded
// up to the next whole day. Overdue deadlines give zero or negative counts.
// ok is false when there is no deadline.
func DaysUntil(deadline *time.Time, now time.Time) (days int, ok bool) {
	if deadline == nil {
		return 0, false
	}
	diff := deadline.Sub(now)
	return int(math.Ceil(float64(diff) / float64(day))), true
}

// Classify maps a deadline to its urgency tier.
func Classify(deadline *time.Time, now time.Time) Urgency {
	days, ok := DaysUntil(deadline, now)
	switch {
	case !ok:
		return Normal
	case days <= CriticalDays:
		return Critical
	case days <= WarningDays:
		return Warning
	default:
		return Normal
	}
}

// Label renders the deadline for a card: NoDeadlineLabel when absent,
// TomorrowLabel when the deadline falls on the calendar day after now in loc,
// the DateLayout date otherwise.
func Label(deadline *time.Time, now time.Time, loc *time.Location) string {
	if deadline == nil {
		return NoDeadlineLabel
	}
	if loc == nil {
		loc = time.UTC
	}
	d := deadline.In(loc)
	ty, tm, td := now.In(loc).AddDate(0, 0, 1).Date()
	if y, m, dd := d.Date(); y == ty && m == tm && dd == td {
		return TomorrowLabel
	}
	return d.Format(DateLayout)
}
