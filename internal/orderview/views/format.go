package views

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "2006-01-02 15:04"

var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"RUB": "₽",
}

// Money formats an amount with its ISO currency code. A nil or non-finite
// amount is treated as zero; an empty code defaults to USD. Codes that are
// not a valid formatting target fall back to a fixed two-decimal number
// followed by the raw code, e.g. "0.00 XXX".
func Money(amount *float64, code string) string {
	num := 0.0
	if amount != nil && !math.IsNaN(*amount) && !math.IsInf(*amount, 0) {
		num = *amount
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USD"
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", num, code)
	}
	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		return moneyPrinter.Sprintf("%.2f %s", num, unit.String())
	}

	sign := ""
	if num < 0 {
		sign = "-"
		num = -num
	}
	return sign + symbol + moneyPrinter.Sprintf("%.2f", num)
}

// Timestamp renders an ISO-ish timestamp string in the display layout,
// returning the raw input when it cannot be parsed.
func Timestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format(dateLayout)
		}
	}
	return raw
}

// fallback substitutes a placeholder for absent string values.
func fallback(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
