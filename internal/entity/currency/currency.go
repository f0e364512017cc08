package currency

const (
	USD = "USD"
	CNY = "CNY"
	SGD = "SGD"
	EUR = "EUR"
	GBP = "GBP"
	JPY = "JPY"
	AUD = "AUD"
	CAD = "CAD"
	HKD = "HKD"
	KRW = "KRW"
	INR = "INR"
	MYR = "MYR"
	IDR = "IDR"
)

var Currencies = []string{USD, CNY, SGD, EUR, GBP, JPY, AUD, CAD, HKD, KRW, INR, MYR, IDR}

// Categories the user-facing spending categories. Free-form strings are
// still accepted on import.
var Categories = []string{
	"Food", "Transport", "Groceries", "Rent", "Utilities",
	"Entertainment", "Shopping", "Health", "Education", "Other",
}

func Supported(code string) bool {
	for _, curr := range Currencies {
		if curr == code {
			return true
		}
	}
	return false
}
