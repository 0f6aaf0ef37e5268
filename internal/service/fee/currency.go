package fee

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer форматирует суммы с разделителями тысяч ("1,234.50")
var printer = message.NewPrinter(language.English)

// NormalizeCurrency приводит код к каноническому ISO 4217 виду ("usd" -> "USD").
// Для неизвестного кода возвращается ошибка.
func NormalizeCurrency(code string) (string, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", err
	}
	return unit.String(), nil
}

// Scale количество знаков после запятой для валюты (USD - 2, JPY - 0).
// Для неизвестного кода возвращается 2.
func Scale(code string) int32 {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

// Round округляет сумму до минимальной единицы валюты.
// Используется только для отображения и ответа API, расчеты идут с полной точностью.
func Round(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Round(Scale(code))
}

// FormatCurrency форматирует сумму для отображения: "$1,234.50", "¥100", "CHF 3.00".
// Символ берется из CLDR (узкая форма), без символа выводится ISO код.
func FormatCurrency(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	symbol := code
	if unit, err := currency.ParseISO(code); err == nil {
		code = unit.String()
		symbol = printer.Sprint(currency.NarrowSymbol(unit))
	}

	scale := Scale(code)
	value := amount.Round(scale)

	sign := ""
	if value.IsNegative() {
		sign = "-"
		value = value.Abs()
	}

	digits := printer.Sprint(number.Decimal(value.InexactFloat64(), number.Scale(int(scale))))

	if symbol == code {
		return sign + code + " " + digits
	}
	return sign + symbol + digits
}
