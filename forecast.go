package domainfolio

import (
	"sort"
	"time"
)

// Priority grades how urgent a renewal reminder is.
type Priority string

const (
	PriorityHigh   Priority = "high"   // due within a week
	PriorityMedium Priority = "medium" // due within a month
	PriorityLow    Priority = "low"
)

// priorityFor grades a reminder by how soon the renewal is due.
func priorityFor(days int) Priority {
	switch {
	case days <= 7:
		return PriorityHigh
	case days <= 30:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// DefaultReminderThresholds are the day marks a renewal reminder fires at.
var DefaultReminderThresholds = []int{60, 30, 7, 1}

// Reminder is one upcoming-renewal alert. A domain within several thresholds
// produces one reminder per crossed threshold, so the 60-day and the 30-day
// alerts of the same renewal both appear.
type Reminder struct {
	Domain    *Domain
	Days      int // days until the renewal is due
	Threshold int // the day mark this reminder fired at
	Amount    Money
	Priority  Priority
}

// Reminders returns the renewal alerts for the given date, soonest first.
// Only non-terminal domains with a renewal strictly in the future and within
// a threshold alert; overdue renewals are the renewals report's business,
// not a reminder.
func Reminders(l *Ledger, on Date, thresholds []int) []Reminder {
	if len(thresholds) == 0 {
		thresholds = DefaultReminderThresholds
	}
	var reminders []Reminder
	for d := range l.AllDomains() {
		if d.Terminal() || d.NextRenewalDate.IsZero() {
			continue
		}
		days := d.NextRenewalDate.Sub(on)
		if days <= 0 {
			continue
		}
		for _, threshold := range thresholds {
			if days > threshold {
				continue
			}
			reminders = append(reminders, Reminder{
				Domain:    d,
				Days:      days,
				Threshold: threshold,
				Amount:    d.RenewalAmountDue(),
				Priority:  priorityFor(days),
			})
		}
	}
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].Days < reminders[j].Days
	})
	return reminders
}

// ForecastBucket aggregates the renewals due in one calendar month.
type ForecastBucket struct {
	Year   int
	Month  time.Month
	Count  int
	Amount Money
}

// RenewalForecast projects the renewal spend of the coming twelve months,
// bucketed by the calendar month each renewal falls in. Months with nothing
// due are omitted.
func RenewalForecast(l *Ledger, from Date) []ForecastBucket {
	horizon := from.AddMonths(12)
	buckets := make(map[[2]int]*ForecastBucket)
	for d := range l.AllDomains() {
		if d.Terminal() || d.NextRenewalDate.IsZero() {
			continue
		}
		due := d.NextRenewalDate
		if due.Before(from) || !due.Before(horizon) {
			continue
		}
		key := [2]int{due.Year(), int(due.Month())}
		b, ok := buckets[key]
		if !ok {
			b = &ForecastBucket{Year: due.Year(), Month: due.Month()}
			buckets[key] = b
		}
		b.Count++
		b.Amount = b.Amount.Add(d.RenewalAmountDue())
	}
	forecast := make([]ForecastBucket, 0, len(buckets))
	for _, b := range buckets {
		forecast = append(forecast, *b)
	}
	sort.Slice(forecast, func(i, j int) bool {
		if forecast[i].Year != forecast[j].Year {
			return forecast[i].Year < forecast[j].Year
		}
		return forecast[i].Month < forecast[j].Month
	})
	return forecast
}
