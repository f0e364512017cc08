package ledger

import (
	"sort"
	"strings"

	"github.com/jinzhu/now"
)

type CategoryTotal struct {
	Category string
	Amount   float64
}

type DailyTotal struct {
	Date   string
	Amount float64
}

type BudgetLevel int

const (
	BudgetOK BudgetLevel = iota
	BudgetNear
	BudgetOver
)

const nearBudgetShare = 0.9

// TotalThisMonth sums the converted amounts of the current calendar
// month's records.
func (l *Ledger) TotalThisMonth() float64 {
	prefix := monthPrefix()
	total := 0.0
	for _, rec := range l.records {
		if strings.HasPrefix(rec.Date, prefix) {
			total += rec.Amount
		}
	}
	return round2(total)
}

// SummaryByCategory groups the current month's amounts by category,
// largest first. Ties keep the order categories were first seen in.
func (l *Ledger) SummaryByCategory() []CategoryTotal {
	prefix := monthPrefix()
	sums := make(map[string]float64)
	order := make([]string, 0)

	for _, rec := range l.records {
		if !strings.HasPrefix(rec.Date, prefix) {
			continue
		}
		if _, ok := sums[rec.Category]; !ok {
			order = append(order, rec.Category)
		}
		sums[rec.Category] += rec.Amount
	}

	res := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		res = append(res, CategoryTotal{Category: cat, Amount: round2(sums[cat])})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Amount > res[j].Amount
	})
	return res
}

// DailyTotalsThisMonth groups the current month's amounts by day,
// ascending by date.
func (l *Ledger) DailyTotalsThisMonth() []DailyTotal {
	prefix := monthPrefix()
	sums := make(map[string]float64)

	for _, rec := range l.records {
		if strings.HasPrefix(rec.Date, prefix) {
			sums[rec.Date] += rec.Amount
		}
	}

	res := make([]DailyTotal, 0, len(sums))
	for date, amount := range sums {
		res = append(res, DailyTotal{Date: date, Amount: round2(amount)})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Date < res[j].Date
	})
	return res
}

// BudgetStatus reports this month's spend against the budget. A budget
// of zero never alerts.
func (l *Ledger) BudgetStatus() (total, remaining float64, level BudgetLevel) {
	total = l.TotalThisMonth()
	remaining = round2(l.monthBudget - total)

	level = BudgetOK
	if l.monthBudget > 0 {
		switch {
		case total > l.monthBudget:
			level = BudgetOver
		case total >= nearBudgetShare*l.monthBudget:
			level = BudgetNear
		}
	}
	return total, remaining, level
}

func monthPrefix() string {
	return now.BeginningOfMonth().Format("2006-01")
}
