package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateInterest keeps rows aged strictly beyond the due-days
// threshold and prices each one for the current billing window. Working
// days are capped at cfg.MaxWorkingDays; days beyond the cap are
// reported as previous-interest days and not billed again. Output is
// ordered by customer name; ties keep their upload order.
//
// Interest amounts round half up to 4 decimal places.
func CalculateInterest(txns []Transaction, cfg Config) []InterestRecord {
	kept := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Age > cfg.DueDaysThreshold {
			kept = append(kept, t)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].CustomerName < kept[j].CustomerName
	})

	recs := make([]InterestRecord, 0, len(kept))
	for _, t := range kept {
		daysOverdue := t.Age - cfg.DueDaysThreshold
		working := daysOverdue
		if working > cfg.MaxWorkingDays {
			working = cfg.MaxWorkingDays
		}
		pct := cfg.PerDayRate.Mul(decimal.NewFromInt(int64(working)))
		amount := t.BalanceDue.Mul(pct).Div(hundred).Round(4)
		recs = append(recs, InterestRecord{
			Transaction:          t,
			DueDays:              cfg.DueDaysThreshold,
			PreviousInterestDays: daysOverdue - working,
			WorkingDays:          working,
			PerDayRate:           cfg.PerDayRate,
			WorkingInterestPct:   pct,
			InterestAmount:       amount,
		})
	}
	return recs
}
