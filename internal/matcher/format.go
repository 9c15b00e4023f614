package matcher

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.English)

// FormatUSD renders a dollar amount with thousands grouping, e.g. $140,000.
func FormatUSD(amount int) string {
	return usd.Sprintf("$%d", amount)
}

// FormatCompRange renders a role's compensation band in the short form the
// catalog cards use, e.g. $95k–$180k.
func FormatCompRange(low, high int) string {
	return usd.Sprintf("$%dk–$%dk", low/1000, high/1000)
}
