package rates

import (
	"context"
	"time"

	"go.uber.org/zap"
	"multiledger/internal/logger"
)

const dateLayout = "2006-01-02"

// dateLayouts the accepted input forms; year-month and year-only inputs
// are normalized to the first representable day.
var dateLayouts = []string{dateLayout, "2006-01", "2006"}

type ratesProvider interface {
	HistoricalRate(ctx context.Context, base, target, date string) (float64, error)
	LatestRate(ctx context.Context, base, target string) (float64, error)
}

// Resolver answers rate lookups and absorbs every provider failure into
// a "not available" result. Callers never see an error from it.
type Resolver struct {
	provider ratesProvider
}

func NewResolver(provider ratesProvider) *Resolver {
	return &Resolver{provider: provider}
}

// HistoricalRate resolves the base->target rate on the given date.
// Returns 1 without contacting the provider when base == target, and
// (0, false) on an unparseable date or any provider failure.
func (r *Resolver) HistoricalRate(ctx context.Context, base, target, date string) (float64, bool) {
	if base == target {
		return 1, true
	}

	day, ok := normalizeDate(date)
	if !ok {
		observeLookup(endpointHistorical, outcomeBadDate)
		logger.Warn("cannot parse rate date", zap.String("date", date))
		return 0, false
	}

	rate, err := r.provider.HistoricalRate(ctx, base, target, day)
	if err != nil {
		observeLookup(endpointHistorical, outcomeError)
		logger.Warn("historical rate unavailable",
			zap.String("base", base), zap.String("target", target),
			zap.String("date", day), zap.Error(err))
		return 0, false
	}

	observeLookup(endpointHistorical, outcomeOK)
	return rate, true
}

// LatestRate resolves the most recent base->target rate, with the same
// contract as HistoricalRate.
func (r *Resolver) LatestRate(ctx context.Context, base, target string) (float64, bool) {
	if base == target {
		return 1, true
	}

	rate, err := r.provider.LatestRate(ctx, base, target)
	if err != nil {
		observeLookup(endpointLatest, outcomeError)
		logger.Warn("latest rate unavailable",
			zap.String("base", base), zap.String("target", target), zap.Error(err))
		return 0, false
	}

	observeLookup(endpointLatest, outcomeOK)
	return rate, true
}

func normalizeDate(date string) (string, bool) {
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, date)
		if err == nil {
			return parsed.Format(dateLayout), true
		}
	}
	return "", false
}
