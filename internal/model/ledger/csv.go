package ledger

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"multiledger/internal/entity/record"
	"multiledger/internal/logger"
)

// csvHeader is the persisted-state layout, column order included. It is
// the only durability mechanism the ledger has.
var csvHeader = []string{
	"date", "base_amount", "base_currency", "amount",
	"target_currency", "category", "exchange_rate", "note",
}

const defaultTargetCurrency = "CNY"

// SaveCSV writes all records to path, header first, stored values as-is.
func (l *Ledger) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating csv file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(csvHeader); err != nil {
		return errors.Wrap(err, "writing csv header")
	}

	for _, rec := range l.records {
		row := []string{
			rec.Date,
			formatAmount(rec.BaseAmount),
			rec.BaseCurrency,
			formatAmount(rec.Amount),
			rec.TargetCurrency,
			rec.Category,
			formatAmount(rec.ExchangeRate),
			rec.Note,
		}
		if err = w.Write(row); err != nil {
			return errors.Wrap(err, "writing csv row")
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return errors.Wrap(err, "flushing csv")
	}

	logger.Info("saved ledger", zap.String("path", path), zap.Int("records", len(l.records)))
	return nil
}

// LoadCSV replaces the record set wholesale from a file with the
// SaveCSV layout. The file is validated in full before any record is
// replaced, so a malformed row leaves the ledger untouched. A
// successful load always ends with the target currency locked: adopted
// from the first row when present, CNY otherwise.
func (l *Ledger) LoadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening csv file")
	}
	defer f.Close()

	loaded, err := parseRecords(f)
	if err != nil {
		return errors.Wrap(err, "loading csv")
	}

	l.records = loaded

	l.targetCurrency = defaultTargetCurrency
	if len(l.records) > 0 && l.records[0].TargetCurrency != "" {
		l.targetCurrency = l.records[0].TargetCurrency
	}
	l.targetLocked = true

	logger.Info("loaded ledger", zap.String("path", path),
		zap.Int("records", len(l.records)), zap.String("target", l.targetCurrency))
	return nil
}

func parseRecords(r io.Reader) ([]record.Expense, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	records := make([]record.Expense, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading row")
		}

		rec := record.Expense{
			Date:           field(row, "date"),
			BaseCurrency:   field(row, "base_currency"),
			TargetCurrency: field(row, "target_currency"),
			Category:       field(row, "category"),
			Note:           field(row, "note"),
		}

		rec.BaseAmount, err = strconv.ParseFloat(field(row, "base_amount"), 64)
		if err != nil {
			return nil, errors.Wrap(err, "parsing base_amount")
		}
		rec.Amount, err = strconv.ParseFloat(field(row, "amount"), 64)
		if err != nil {
			return nil, errors.Wrap(err, "parsing amount")
		}

		rec.ExchangeRate = 1
		if raw := field(row, "exchange_rate"); raw != "" {
			rec.ExchangeRate, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.Wrap(err, "parsing exchange_rate")
			}
		}

		records = append(records, rec)
	}
	return records, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
