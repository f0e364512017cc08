package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"multiledger/internal/model/ledger"
	"multiledger/internal/model/messages"
)

type resolverStub struct{}

func (resolverStub) HistoricalRate(_ context.Context, _, _, _ string) (float64, bool) {
	return 5.3, true
}

func (resolverStub) LatestRate(_ context.Context, _, _ string) (float64, bool) {
	return 5.3, true
}

type configStub struct{}

func (configStub) BaseCurrency() string   { return "SGD" }
func (configStub) TargetCurrency() string { return "CNY" }
func (configStub) MonthBudget() float64   { return 0 }

func Test_OnListenUpdates_ShouldReplyPerLineUntilEOF(t *testing.T) {
	ctx := context.Background()

	in := strings.NewReader("/start\n/report\n")
	out := &bytes.Buffer{}
	client := New(in, out)

	book := ledger.New(ctx, resolverStub{}, configStub{})
	model := messages.NewService(client, book)

	client.ListenUpdates(ctx, model)

	replies := out.String()
	assert.Contains(t, replies, "Hello!")
	assert.Contains(t, replies, "no expenses")
}

func Test_OnCancelledContext_ShouldStopListening(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(strings.NewReader(""), &bytes.Buffer{})
	book := ledger.New(context.Background(), resolverStub{}, configStub{})

	client.ListenUpdates(ctx, messages.NewService(client, book))
}
