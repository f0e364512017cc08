package config

type LedgerConfig struct {
	BaseCurrencyName   string  `yaml:"base-currency"`
	TargetCurrencyName string  `yaml:"target-currency"`
	Budget             float64 `yaml:"month-budget"`
}

func (c *LedgerConfig) BaseCurrency() string {
	if c.BaseCurrencyName == "" {
		return "SGD"
	}
	return c.BaseCurrencyName
}

func (c *LedgerConfig) TargetCurrency() string {
	if c.TargetCurrencyName == "" {
		return "CNY"
	}
	return c.TargetCurrencyName
}

func (c *LedgerConfig) MonthBudget() float64 {
	return c.Budget
}
