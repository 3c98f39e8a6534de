package cli

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avstrong/resortrates/internal/catalog"
)

var printer = message.NewPrinter(language.English)

// formatMoney renders m with the currency symbol and grouping, e.g. "$ 3,780.00".
func formatMoney(m catalog.Money, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", code, m)
	}

	return printer.Sprint(currency.Symbol(unit.Amount(m.Major())))
}
