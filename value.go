package tableasy

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// formatValue renders an attribute value as cell content.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// numeric converts integer, float and decimal values. NaN and infinities are
// not numeric.
func numeric(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int8:
		return decimal.NewFromInt(int64(x)), true
	case int16:
		return decimal.NewFromInt(int64(x)), true
	case int32:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case uint:
		return decimal.RequireFromString(strconv.FormatUint(uint64(x), 10)), true
	case uint8:
		return decimal.NewFromInt(int64(x)), true
	case uint16:
		return decimal.NewFromInt(int64(x)), true
	case uint32:
		return decimal.NewFromInt(int64(x)), true
	case uint64:
		return decimal.RequireFromString(strconv.FormatUint(x, 10)), true
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(x), true
	case decimal.Decimal:
		return x, true
	default:
		return decimal.Zero, false
	}
}

func percentOf(n, d any) string {
	num, ok := numeric(n)
	if !ok {
		return decimal.Zero.StringFixed(3)
	}
	den, ok := numeric(d)
	if !ok || den.IsZero() {
		return decimal.Zero.StringFixed(3)
	}
	return num.Mul(hundred).Div(den).StringFixed(3)
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
