package usecase

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatEuros renders whole currency units as "€1,234.00".
func FormatEuros(amount int64) string {
	return moneyPrinter.Sprintf("€%d.00", amount)
}
