package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// JPYToTWDRate is the fixed conversion rate used by the budget pane
var JPYToTWDRate = decimal.RequireFromString("0.215")

// ConvertJPY converts a yen amount to Taiwan dollars, rounded to a whole
// dollar half away from zero
func ConvertJPY(jpy int64) int64 {
	return decimal.NewFromInt(jpy).Mul(JPYToTWDRate).Round(0).IntPart()
}

// ConvertJPYText converts user-typed yen. Blank or non-numeric text
// converts to 0.
func ConvertJPYText(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return ConvertJPY(d.Truncate(0).IntPart())
}
