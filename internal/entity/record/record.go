package record

// Expense is one converted ledger entry. Amount always equals
// BaseAmount*ExchangeRate rounded to two decimals; the ledger restores
// this by recomputing every entry when its target currency changes.
type Expense struct {
	Date           string
	BaseAmount     float64
	BaseCurrency   string
	ExchangeRate   float64
	Amount         float64
	TargetCurrency string
	Category       string
	Note           string
}
