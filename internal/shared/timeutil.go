package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var timeRe = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// ToMinutes parses a 24-hour "HH:MM" time-of-day string into minutes since
// midnight.
func ToMinutes(t string) (int, error) {
	m := timeRe.FindStringSubmatch(strings.TrimSpace(t))
	if m == nil {
		return 0, fmt.Errorf("%w: malformed time %q", ErrInvalidInput, t)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// ElapsedHours computes the worked hours between start and end, subtracting
// the pause interval when both pause fields are present.
//
// Unparsable or empty fields contribute zero, and negative raw results clamp
// to zero, so overnight or malformed entries degrade to 0h instead of
// producing garbage totals.
func ElapsedHours(start, end, pauseStart, pauseEnd string) float64 {
	startMin, errStart := ToMinutes(start)
	endMin, errEnd := ToMinutes(end)
	if errStart != nil || errEnd != nil {
		return 0
	}

	total := endMin - startMin

	if pauseStart != "" && pauseEnd != "" {
		psMin, errPS := ToMinutes(pauseStart)
		peMin, errPE := ToMinutes(pauseEnd)
		if errPS == nil && errPE == nil {
			total -= peMin - psMin
		}
	}

	if total < 0 {
		return 0
	}
	return float64(total) / 60
}

// amountCleanRe strips everything that is not a digit, comma, dot or sign.
var amountCleanRe = regexp.MustCompile(`[^\d,.-]`)

// ParseAmount leniently parses a locale-formatted currency string
// ("R$ 1.234,56", "1234.56", "200") into a float.
//
// Returns 0 when nothing numeric survives; callers reject non-positive
// amounts before recording a payment.
func ParseAmount(s string) float64 {
	cleaned := amountCleanRe.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0
	}

	// Brazilian format uses "." as thousands separator and "," as decimal
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatBRL renders a value as Brazilian currency ("R$ 1.234,56").
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := fmt.Sprintf("%.2f", v)
	intPart, decPart, _ := strings.Cut(whole, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatHours renders an hour count with a single decimal, e.g. "3.5h".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}
