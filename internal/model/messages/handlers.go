package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"multiledger/internal/entity/currency"
	"multiledger/internal/model/ledger"
)

const dateLayout = "2006-01-02"

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! This is your multi-currency ledger 💱"
	loveToTalkMessage     = "I would love to talk about it more!"
	okMessage             = "Gotcha!"
	noExpensesMessage     = "You have no expenses this month yet"

	incorrectUsageMessage    = "That is an incorrect command usage"
	incorrectExpenseMessage  = "Your expense amount is incorrect"
	incorrectDateMessage     = "The date is incorrect. Should be yyyy-mm-dd, today or earlier"
	incorrectCurrencyMessage = "I don't know this currency"
	incorrectBudgetMessage   = "The budget should be a non-negative number"
	incorrectIndexMessage    = "These record numbers don't match your ledger"
	currencyLockedMessage    = "The target currency can be set only once"

	nearBudgetMessage = "\nHeads up: you've reached 90% of your monthly budget"
	overBudgetMessage = "\nYou exceeded the monthly budget by %.2f %s"
)

const (
	startCommand    = "/start"
	addCommand      = "/add"
	removeCommand   = "/remove"
	reportCommand   = "/report"
	dailyCommand    = "/daily"
	budgetCommand   = "/budget"
	currencyCommand = "/currency"
	saveCommand     = "/save"
	loadCommand     = "/load"
)

type expenseLedger interface {
	Add(ctx context.Context, amount float64, category, note, date, baseCurrency string)
	SetTargetCurrency(ctx context.Context, currency string) bool
	RemoveByIndices(indices []int) error
	TotalThisMonth() float64
	SummaryByCategory() []ledger.CategoryTotal
	DailyTotalsThisMonth() []ledger.DailyTotal
	SetMonthBudget(budget float64) error
	BudgetStatus() (total, remaining float64, level ledger.BudgetLevel)
	SaveCSV(path string) error
	LoadCSV(path string) error
	TargetCurrency() string
	Len() int
}

type handler func(ctx context.Context, arg string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	ledger      expenseLedger
}

func newHandler(ledger expenseLedger) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		ledger:      ledger,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[addCommand] = s.handleAdd
	m[removeCommand] = s.handleRemove
	m[reportCommand] = s.handleReport
	m[dailyCommand] = s.handleDaily
	m[budgetCommand] = s.handleBudget
	m[currencyCommand] = s.handleCurrency
	m[saveCommand] = s.handleSave
	m[loadCommand] = s.handleLoad

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string) (string, error) {
	return helloMessage, nil
}

// handleAdd: /add <amount> <category> [yyyy-mm-dd] [currency] [note...]
// Input validation lives here; the ledger assumes it was done.
func (s *HandlerService) handleAdd(ctx context.Context, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		return incorrectExpenseMessage, errors.Wrap(err, "handle add")
	}
	category := args[1]
	rest := args[2:]

	date := ""
	if len(rest) > 0 && looksLikeDate(rest[0]) {
		parsed, err := time.Parse(dateLayout, rest[0])
		if err != nil || parsed.After(time.Now()) {
			return incorrectDateMessage, errors.Wrap(err, "handle add")
		}
		date = rest[0]
		rest = rest[1:]
	}

	baseCurrency := ""
	if len(rest) > 0 && looksLikeCurrency(rest[0]) {
		if !currency.Supported(rest[0]) {
			return incorrectCurrencyMessage, nil
		}
		baseCurrency = rest[0]
		rest = rest[1:]
	}

	s.ledger.Add(ctx, amount, category, strings.Join(rest, " "), date, baseCurrency)

	return okMessage + budgetAlert(s.ledger), nil
}

func (s *HandlerService) handleRemove(_ context.Context, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) == 0 {
		return incorrectUsageMessage, nil
	}

	indices := make([]int, 0, len(args))
	for _, raw := range args {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			return incorrectUsageMessage, nil
		}
		indices = append(indices, idx)
	}

	if err := s.ledger.RemoveByIndices(indices); err != nil {
		return incorrectIndexMessage, errors.Wrap(err, "handle remove")
	}
	return okMessage, nil
}

func (s *HandlerService) handleReport(_ context.Context, _ string) (string, error) {
	summary := s.ledger.SummaryByCategory()
	if len(summary) == 0 {
		return noExpensesMessage, nil
	}
	return formatSummary(summary, s.ledger.TotalThisMonth(), s.ledger.TargetCurrency()), nil
}

func (s *HandlerService) handleDaily(_ context.Context, _ string) (string, error) {
	daily := s.ledger.DailyTotalsThisMonth()
	if len(daily) == 0 {
		return noExpensesMessage, nil
	}
	return formatDaily(daily, s.ledger.TargetCurrency()), nil
}

func (s *HandlerService) handleBudget(_ context.Context, arg string) (string, error) {
	budget, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return incorrectBudgetMessage, errors.Wrap(err, "handle budget")
	}
	if err = s.ledger.SetMonthBudget(budget); err != nil {
		return incorrectBudgetMessage, errors.Wrap(err, "handle budget")
	}

	_, remaining, _ := s.ledger.BudgetStatus()
	return fmt.Sprintf("%s Remaining this month: %.2f %s",
		okMessage, remaining, s.ledger.TargetCurrency()), nil
}

func (s *HandlerService) handleCurrency(ctx context.Context, arg string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(arg))
	if !currency.Supported(code) {
		return incorrectCurrencyMessage, nil
	}

	if !s.ledger.SetTargetCurrency(ctx, code) {
		return currencyLockedMessage, nil
	}
	return fmt.Sprintf("Target currency set to %s", code), nil
}

func (s *HandlerService) handleSave(_ context.Context, arg string) (string, error) {
	path := strings.TrimSpace(arg)
	if path == "" {
		return incorrectUsageMessage, nil
	}
	if err := s.ledger.SaveCSV(path); err != nil {
		return "Could not save your ledger", errors.Wrap(err, "handle save")
	}
	return fmt.Sprintf("Exported to %s", path), nil
}

func (s *HandlerService) handleLoad(_ context.Context, arg string) (string, error) {
	path := strings.TrimSpace(arg)
	if path == "" {
		return incorrectUsageMessage, nil
	}
	if err := s.ledger.LoadCSV(path); err != nil {
		return "Could not load this file", errors.Wrap(err, "handle load")
	}
	return fmt.Sprintf("Loaded %d records", s.ledger.Len()), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string) (string, error) {
	return loveToTalkMessage, nil
}

func budgetAlert(l expenseLedger) string {
	_, remaining, level := l.BudgetStatus()
	switch level {
	case ledger.BudgetOver:
		return fmt.Sprintf(overBudgetMessage, -remaining, l.TargetCurrency())
	case ledger.BudgetNear:
		return nearBudgetMessage
	}
	return ""
}
