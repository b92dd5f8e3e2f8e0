// Package currency выполняет пересчет сумм из базовой валюты оператора (USD)
// в валюту показа по фиксированной таблице курсов. Пересчет используется только
// для отображения: в хранилище все суммы остаются в базовой валюте.
package currency

import (
	"github.com/shopspring/decimal"

	"github.com/velotours/invoice-service/internal/domain"
)

// BaseCurrency базовая валюта оператора, курс всегда 1.0
const BaseCurrency = "USD"

var rates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"GBP": decimal.NewFromFloat(0.79),
	"EUR": decimal.NewFromFloat(0.92),
	"LKR": decimal.NewFromFloat(312.50),
}

var symbols = map[string]string{
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
	"LKR": "Rs.",
}

// IsSupported сообщает, поддерживается ли код валюты
func IsSupported(code string) bool {
	_, ok := rates[code]
	return ok
}

// Convert пересчитывает сумму из базовой валюты в валюту code
func Convert(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	rate, ok := rates[code]
	if !ok {
		return decimal.Zero, domain.ErrUnsupportedCurrency
	}
	return amount.Mul(rate), nil
}

// Symbol возвращает символ валюты или символ базовой валюты для неизвестного кода
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return symbols[BaseCurrency]
}

// Format пересчитывает сумму в валюту code и форматирует ее с символом
// валюты и двумя знаками после запятой
func Format(amount decimal.Decimal, code string) (string, error) {
	converted, err := Convert(amount, code)
	if err != nil {
		return "", err
	}
	return Symbol(code) + converted.StringFixed(2), nil
}

// FormatOrDefault форматирует сумму, подставляя базовую валюту при
// неизвестном коде, чтобы отображение не падало
func FormatOrDefault(amount decimal.Decimal, code string) string {
	if !IsSupported(code) {
		code = BaseCurrency
	}
	s, _ := Format(amount, code)
	return s
}
