package engine

import (
	"sort"
	"time"

	"github.com/soldeapp/solde/internal/models"
)

// ProjectTemplate expands a recurring template into the virtual
// transaction instances falling strictly after from and at or before to.
// Expansion is a pure generator: deterministic IDs, potential status,
// nothing persisted — re-running with the same inputs yields the same
// instances. Virtual instances never enter realized balances; they exist
// only for forward-looking projections.
func ProjectTemplate(tmpl *models.RecurringTemplate, from, to time.Time) []models.Transaction {
	if to.Before(from) || tmpl.StartDate.IsZero() {
		return nil
	}

	var out []models.Transaction
	count := 0
	for d := firstOccurrence(tmpl); !d.IsZero(); d = nextOccurrence(tmpl, d) {
		if tmpl.RemainingOccurrences > 0 && count >= tmpl.RemainingOccurrences {
			break
		}
		if tmpl.EndDate != nil && d.After(*tmpl.EndDate) {
			break
		}
		if d.After(to) {
			break
		}
		count++
		if !d.After(from) {
			continue
		}
		out = append(out, virtualInstance(tmpl, d))
	}
	return out
}

// ProjectAll expands every template over the window and returns the
// combined instances in chronological order.
func ProjectAll(templates []models.RecurringTemplate, from, to time.Time) []models.Transaction {
	var out []models.Transaction
	for i := range templates {
		out = append(out, ProjectTemplate(&templates[i], from, to)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].EffectiveDate.Equal(out[j].EffectiveDate) {
			return out[i].EffectiveDate.Before(out[j].EffectiveDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// virtualInstance materializes one occurrence of a template. The ID is
// derived from the template ID and the occurrence date so that repeated
// expansions agree.
func virtualInstance(tmpl *models.RecurringTemplate, date time.Time) models.Transaction {
	return models.Transaction{
		ID:            tmpl.ID + "_" + date.Format("2006-01-02"),
		AccountID:     tmpl.AccountID,
		Type:          tmpl.Type,
		Status:        models.StatusPotential,
		Amount:        tmpl.Amount,
		Date:          date,
		EffectiveDate: date,
		CategoryID:    tmpl.CategoryID,
		RecurringID:   tmpl.ID,
		Description:   tmpl.Name,
	}
}

// firstOccurrence returns the template's first occurrence on or after its
// start date, or the zero time if the cadence is unusable.
func firstOccurrence(tmpl *models.RecurringTemplate) time.Time {
	start := startOfDay(tmpl.StartDate)
	switch tmpl.Frequency {
	case models.FreqMonthly:
		d := settlementDateIn(start.Year(), start.Month(), tmpl.DayOfMonth, start.Location())
		if d.Before(start) {
			d = monthlyOccurrenceAfter(d, tmpl.DayOfMonth)
		}
		return d
	case models.FreqWeekly:
		d := start
		for d.Weekday() != tmpl.Weekday {
			d = d.AddDate(0, 0, 1)
		}
		return d
	case models.FreqCustom:
		if tmpl.IntervalDays < 1 {
			return time.Time{}
		}
		return start
	default:
		return time.Time{}
	}
}

// nextOccurrence advances one cadence step from the previous occurrence.
func nextOccurrence(tmpl *models.RecurringTemplate, prev time.Time) time.Time {
	switch tmpl.Frequency {
	case models.FreqMonthly:
		return monthlyOccurrenceAfter(prev, tmpl.DayOfMonth)
	case models.FreqWeekly:
		return prev.AddDate(0, 0, 7)
	case models.FreqCustom:
		return prev.AddDate(0, 0, tmpl.IntervalDays)
	default:
		return time.Time{}
	}
}

// monthlyOccurrenceAfter places the anchor day in the month following
// prev, clamping to short months (a day-31 template fires on Feb 28/29).
// Anchoring on the first of the month avoids AddDate overflow skipping
// months.
func monthlyOccurrenceAfter(prev time.Time, dayOfMonth int) time.Time {
	next := time.Date(prev.Year(), prev.Month(), 1, 0, 0, 0, 0, prev.Location()).AddDate(0, 1, 0)
	return settlementDateIn(next.Year(), next.Month(), dayOfMonth, prev.Location())
}
