package messages

import (
	"fmt"
	"strings"

	"multiledger/internal/model/ledger"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

func looksLikeDate(s string) bool {
	return len(s) == len(dateLayout) && strings.Count(s, "-") == 2
}

func looksLikeCurrency(s string) bool {
	if len(s) != 3 {
		return false
	}
	return strings.ToUpper(s) == s
}

func formatSummary(summary []ledger.CategoryTotal, total float64, currency string) string {
	res := make([]string, 0, len(summary)+2)
	for _, rec := range summary {
		res = append(res, fmt.Sprintf("%s: %.2f %s", rec.Category, rec.Amount, currency))
	}
	res = append(res, "", fmt.Sprintf("Total this month: %.2f %s", total, currency))
	return strings.Join(res, "\n")
}

func formatDaily(daily []ledger.DailyTotal, currency string) string {
	res := make([]string, 0, len(daily))
	for _, rec := range daily {
		res = append(res, fmt.Sprintf("%s: %.2f %s", rec.Date, rec.Amount, currency))
	}
	return strings.Join(res, "\n")
}
