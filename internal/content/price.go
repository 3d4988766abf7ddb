package content

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatPrice renders amount with locale digit grouping, prefixed by symbol.
// Unknown or empty locales fall back to English grouping.
func FormatPrice(locale, symbol string, amount int64) string {
	tag := language.English
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	p := message.NewPrinter(tag)
	return symbol + p.Sprint(number.Decimal(amount))
}
