package utils

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupedPrinter = message.NewPrinter(language.English)

// FormatMoney renders "<currency> <amount>" with two decimals, no grouping.
func FormatMoney(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// FormatRaw renders the amount in its shortest decimal form, keeping ".0" on whole
// numbers ("INR 100000.0").
func FormatRaw(currency string, amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return currency + " " + s
}

// FormatGrouped renders a whole amount with thousand separators, e.g. "INR 12,000".
func FormatGrouped(currency string, amount int64) string {
	return groupedPrinter.Sprintf("%s %d", currency, amount)
}
