package rates

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type providerStub struct {
	historical func(base, target, date string) (float64, error)
	latest     func(base, target string) (float64, error)
}

func (p *providerStub) HistoricalRate(_ context.Context, base, target, date string) (float64, error) {
	if p.historical == nil {
		return 0, errors.New("unexpected historical call")
	}
	return p.historical(base, target, date)
}

func (p *providerStub) LatestRate(_ context.Context, base, target string) (float64, error) {
	if p.latest == nil {
		return 0, errors.New("unexpected latest call")
	}
	return p.latest(base, target)
}

func Test_OnSameCurrency_ShouldReturnOneWithoutProvider(t *testing.T) {
	ctx := context.Background()
	called := false
	resolver := NewResolver(&providerStub{
		historical: func(_, _, _ string) (float64, error) {
			called = true
			return 0, nil
		},
		latest: func(_, _ string) (float64, error) {
			called = true
			return 0, nil
		},
	})

	rate, ok := resolver.HistoricalRate(ctx, "CNY", "CNY", "2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, 1.0, rate)

	rate, ok = resolver.LatestRate(ctx, "CNY", "CNY")
	assert.True(t, ok)
	assert.Equal(t, 1.0, rate)

	assert.False(t, called)
}

func Test_OnHistoricalRate_ShouldNormalizeLooseDates(t *testing.T) {
	ctx := context.Background()
	var gotDate string
	resolver := NewResolver(&providerStub{
		historical: func(_, _, date string) (float64, error) {
			gotDate = date
			return 5.3, nil
		},
	})

	for _, tc := range []struct {
		input string
		want  string
	}{
		{"2024-01-15", "2024-01-15"},
		{"2024-01", "2024-01-01"},
		{"2024", "2024-01-01"},
	} {
		rate, ok := resolver.HistoricalRate(ctx, "SGD", "CNY", tc.input)
		assert.True(t, ok)
		assert.Equal(t, 5.3, rate)
		assert.Equal(t, tc.want, gotDate)
	}
}

func Test_OnUnparseableDate_ShouldReportUnavailable(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(&providerStub{
		historical: func(_, _, _ string) (float64, error) {
			t.Fatal("provider should not be called for a bad date")
			return 0, nil
		},
	})

	_, ok := resolver.HistoricalRate(ctx, "SGD", "CNY", "15.01.2024")
	assert.False(t, ok)
}

func Test_OnProviderFailure_ShouldReportUnavailable(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(&providerStub{
		historical: func(_, _, _ string) (float64, error) {
			return 0, errors.New("connection refused")
		},
		latest: func(_, _ string) (float64, error) {
			return 0, errors.New("connection refused")
		},
	})

	_, ok := resolver.HistoricalRate(ctx, "SGD", "CNY", "2024-01-15")
	assert.False(t, ok)

	_, ok = resolver.LatestRate(ctx, "SGD", "CNY")
	assert.False(t, ok)
}

func Test_OnLatestRate_ShouldPassProviderValue(t *testing.T) {
	ctx := context.Background()
	resolver := NewResolver(&providerStub{
		latest: func(base, target string) (float64, error) {
			assert.Equal(t, "SGD", base)
			assert.Equal(t, "CNY", target)
			return 5.41, nil
		},
	})

	rate, ok := resolver.LatestRate(ctx, "SGD", "CNY")
	assert.True(t, ok)
	assert.Equal(t, 5.41, rate)
}
