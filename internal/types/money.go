// README: Common money value object used across modules.
package types

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyINR is the only currency the planner deals in.
const CurrencyINR = "INR"

var amountPrinter = message.NewPrinter(language.English)

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func INR(amount int64) Money {
	return Money{Amount: amount, Currency: CurrencyINR}
}

// String renders the amount with thousands separators, e.g. "₹15,000".
func (m Money) String() string {
	if m.Currency == CurrencyINR || m.Currency == "" {
		return amountPrinter.Sprintf("₹%d", m.Amount)
	}
	return amountPrinter.Sprintf("%d %s", m.Amount, m.Currency)
}
