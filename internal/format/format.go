// Package format renders money, dates and durations for the marketplace UI.
// All output is deterministic for a given input and reference time.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const rupee = "₹"

// IST is the display zone for every formatted date.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// INR formats amount in whole rupees with lakh/crore grouping, e.g. ₹15,00,000.
func INR(amount float64) string {
	return inr(amount, 0)
}

// INRDecimal formats amount with two fractional digits, e.g. ₹1,500.00.
func INRDecimal(amount float64) string {
	return inr(amount, 2)
}

// RipLimit formats an RL amount, e.g. 5,000 RL.
func RipLimit(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + groupIndian(strconv.FormatInt(amount, 10)) + " RL"
}

// Number formats n with Indian grouping and no glyph.
func Number(n int64) string {
	if n < 0 {
		return "-" + groupIndian(strconv.FormatInt(-n, 10))
	}
	return groupIndian(strconv.FormatInt(n, 10))
}

func inr(amount float64, decimals int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	s := strconv.FormatFloat(math.Abs(amount), 'f', decimals, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if amount < 0 && strings.Trim(s, "0.") != "" {
		b.WriteByte('-')
	}
	b.WriteString(rupee)
	b.WriteString(groupIndian(intPart))
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// groupIndian inserts separators after the last three digits and then every
// two digits: 1500000 -> 15,00,000.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	parts := make([]string, 0, len(head)/2+2)
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}

// Date renders t as "15 Jan 2024" in IST.
func Date(t time.Time) string {
	return t.In(IST).Format("2 Jan 2006")
}

// DateTime renders t as "15 Jan 2024, 3:30 PM" in IST.
func DateTime(t time.Time) string {
	return t.In(IST).Format("2 Jan 2006, 3:04 PM")
}

// MonthYear renders t as "Jan 2024" in IST.
func MonthYear(t time.Time) string {
	return t.In(IST).Format("Jan 2006")
}

// OptionalDate is Date for optional fields; nil renders as "".
func OptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Date(*t)
}

// Duration renders a span as its two most significant units: "2d 3h",
// "3h 15m", "15m 30s", "45s". Negative spans render as "0s".
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// Percent rounds v to the nearest integer and appends "%".
func Percent(v float64) string {
	return strconv.Itoa(int(math.Round(v))) + "%"
}

// Plural returns "1 product" or "3 products".
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return Number(int64(n)) + " " + plural
}
