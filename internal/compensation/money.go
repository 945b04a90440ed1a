package compensation

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	half    = decimal.NewFromFloat(0.5)
	hundred = decimal.NewFromInt(100)
)

// roundHalfUp rounds to the nearest integer with .5 going towards +Inf,
// which is how the dashboard has always rounded amounts.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}

// RoundAmount rounds a computed amount half-up. Non-finite input is 0.
func RoundAmount(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return roundHalfUp(decimal.NewFromFloat(f))
}

// percentOf returns round(amount * pct/100 * proportion).
func percentOf(amount int64, pct, proportion float64) int64 {
	return roundHalfUp(
		decimal.NewFromInt(amount).
			Mul(decimal.NewFromFloat(pct)).
			Div(hundred).
			Mul(decimal.NewFromFloat(proportion)),
	)
}

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount as "INR 120,000".
func FormatMoney(currency string, amount int64) string {
	if currency == "" {
		return printer.Sprintf("%d", amount)
	}
	return printer.Sprintf("%s %d", currency, amount)
}
