package ledger

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"multiledger/internal/entity/record"
	"multiledger/internal/logger"
)

const dateLayout = "2006-01-02"

// ErrInvalidIndex reports an out-of-range position passed to
// RemoveByIndices. The whole removal is rejected so the caller cannot
// end up with a partially applied deletion.
var ErrInvalidIndex = errors.New("record index out of range")

const (
	tierHistorical = "historical"
	tierLatest     = "latest"
	tierDefault    = "default"
)

type rateResolver interface {
	HistoricalRate(ctx context.Context, base, target, date string) (float64, bool)
	LatestRate(ctx context.Context, base, target string) (float64, bool)
}

type config interface {
	BaseCurrency() string
	TargetCurrency() string
	MonthBudget() float64
}

// Ledger owns the expense records of one session. It is single-actor
// and synchronous; every method runs to completion on the caller's
// goroutine.
type Ledger struct {
	records []record.Expense

	baseCurrency   string
	targetCurrency string
	targetLocked   bool

	monthBudget float64

	// last-known base->target rate, fetched once at construction and
	// used as the final fallback for base-currency records.
	defaultRate float64

	resolver rateResolver
}

func New(ctx context.Context, resolver rateResolver, conf config) *Ledger {
	l := &Ledger{
		baseCurrency:   conf.BaseCurrency(),
		targetCurrency: conf.TargetCurrency(),
		monthBudget:    conf.MonthBudget(),
		resolver:       resolver,
	}

	rate, ok := resolver.LatestRate(ctx, l.baseCurrency, l.targetCurrency)
	if !ok {
		logger.Warn("cannot fetch initial rate, defaulting to 1",
			zap.String("base", l.baseCurrency), zap.String("target", l.targetCurrency))
		rate = 1
	}
	l.defaultRate = rate

	return l
}

// Add appends one expense. Empty date defaults to today, empty
// baseCurrency to the ledger's base currency. The conversion rate is
// resolved through the three-tier chain and can never fail, so Add has
// no error to return. Amount validation is the caller's concern.
func (l *Ledger) Add(ctx context.Context, amount float64, category, note, date, baseCurrency string) {
	if baseCurrency == "" {
		baseCurrency = l.baseCurrency
	}
	if date == "" {
		date = time.Now().Format(dateLayout)
	}

	rate, tier := l.resolveRate(ctx, baseCurrency, l.targetCurrency, date)
	if tier != tierHistorical {
		logger.Info("conversion rate from fallback",
			zap.String("tier", tier), zap.String("base", baseCurrency),
			zap.String("date", date))
	}

	base := round2(amount)
	l.records = append(l.records, record.Expense{
		Date:           date,
		BaseAmount:     base,
		BaseCurrency:   baseCurrency,
		ExchangeRate:   rate,
		Amount:         round2(base * rate),
		TargetCurrency: l.targetCurrency,
		Category:       category,
		Note:           strings.TrimSpace(note),
	})
}

// SetTargetCurrency switches the reporting currency and locks it. The
// switch is allowed exactly once per session; later calls are no-ops
// returning false. Every existing record is re-converted against the
// new target, falling back to a rate of 1 when no live or historical
// rate can be resolved.
func (l *Ledger) SetTargetCurrency(ctx context.Context, currency string) bool {
	if l.targetLocked {
		return false
	}

	l.targetCurrency = currency
	l.targetLocked = true

	for i := range l.records {
		rate, tier := l.resolveRate(ctx, l.records[i].BaseCurrency, currency, l.records[i].Date)
		if tier == tierDefault {
			// the cached default rate belongs to the old target
			rate = 1
		}
		l.records[i].ExchangeRate = rate
		l.records[i].Amount = round2(l.records[i].BaseAmount * rate)
		l.records[i].TargetCurrency = currency
	}

	logger.Info("target currency locked",
		zap.String("currency", currency), zap.Int("records", len(l.records)))
	return true
}

// resolveRate is the three-tier fallback chain: historical for the
// record's date, then latest, then the cached default rate (only for
// records in the ledger's own base currency) or 1. It always yields a
// positive rate.
func (l *Ledger) resolveRate(ctx context.Context, base, target, date string) (float64, string) {
	if rate, ok := l.resolver.HistoricalRate(ctx, base, target, date); ok {
		return rate, tierHistorical
	}
	if rate, ok := l.resolver.LatestRate(ctx, base, target); ok {
		return rate, tierLatest
	}
	if base == l.baseCurrency && l.defaultRate > 0 {
		return l.defaultRate, tierDefault
	}
	return 1, tierDefault
}

// RemoveByIndices deletes the records at the given zero-based positions
// in insertion order. Positions may come in any order and may repeat.
// Any out-of-range position fails the whole call.
func (l *Ledger) RemoveByIndices(indices []int) error {
	seen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(l.records) {
			return errors.Wrapf(ErrInvalidIndex, "index %d with %d records", idx, len(l.records))
		}
		seen[idx] = struct{}{}
	}

	ordered := make([]int, 0, len(seen))
	for idx := range seen {
		ordered = append(ordered, idx)
	}
	// delete back to front so earlier deletions do not shift later ones
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))

	for _, idx := range ordered {
		l.records = append(l.records[:idx], l.records[idx+1:]...)
	}
	return nil
}

func (l *Ledger) SetMonthBudget(budget float64) error {
	if budget < 0 {
		return errors.New("month budget cannot be negative")
	}
	l.monthBudget = budget
	return nil
}

func (l *Ledger) MonthBudget() float64 {
	return l.monthBudget
}

func (l *Ledger) BaseCurrency() string {
	return l.baseCurrency
}

func (l *Ledger) TargetCurrency() string {
	return l.targetCurrency
}

func (l *Ledger) TargetLocked() bool {
	return l.targetLocked
}

func (l *Ledger) Len() int {
	return len(l.records)
}

// Records returns a copy of the record list in insertion order.
func (l *Ledger) Records() []record.Expense {
	res := make([]record.Expense, len(l.records))
	copy(res, l.records)
	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
