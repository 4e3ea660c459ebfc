package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var koPrinter = message.NewPrinter(language.Korean)

// FormatCurrency formata um valor em won, sem casas decimais. Ex.: ₩1,580
func FormatCurrency(amount float64) string {
	rounded := math.Round(amount)
	if rounded < 0 {
		return "-₩" + koPrinter.Sprint(number.Decimal(-rounded, number.MaxFractionDigits(0)))
	}
	return "₩" + koPrinter.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
}

// FormatNumber formata um número com separador de milhar do locale coreano
func FormatNumber(n float64) string {
	return koPrinter.Sprint(number.Decimal(n, number.MaxFractionDigits(3)))
}

// FormatPercent recebe um valor em pontos percentuais (12.5 = 12,5%) e formata com uma casa decimal
func FormatPercent(value float64) string {
	return koPrinter.Sprint(number.Percent(value/100, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
}
