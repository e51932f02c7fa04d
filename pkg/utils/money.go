package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var nokPrinter = message.NewPrinter(language.Norwegian)

// FormatNOK formata um valor em coroas norueguesas, sem casas decimais
func FormatNOK(value float64) string {
	return nokPrinter.Sprintf("kr %.0f", value)
}

// FormatCompactNOK abrevia valores grandes (1,2M, 850K) para colunas estreitas
func FormatCompactNOK(value float64) string {
	switch {
	case value >= 1_000_000 || value <= -1_000_000:
		return nokPrinter.Sprintf("kr %.1fM", value/1_000_000)
	case value >= 1_000 || value <= -1_000:
		return nokPrinter.Sprintf("kr %.0fK", value/1_000)
	default:
		return FormatNOK(value)
	}
}
