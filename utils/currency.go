package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount the way en-IN locales do, e.g. ₹1,23,456.50.
// Whole amounts are rendered without paise.
func FormatINR(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	whole, frac, _ := strings.Cut(amount.StringFixed(2), ".")

	var grouped string
	if len(whole) <= 3 {
		grouped = whole
	} else {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		grouped = strings.Join(groups, ",") + "," + tail
	}

	if frac == "00" {
		return sign + "₹" + grouped
	}
	return sign + "₹" + grouped + "." + frac
}
