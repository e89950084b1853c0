package ingredients

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ak/mealkit/internal/domain/models"
)

// leadingAmount recognizes a numeric quantity at the start of an amount
// string: a mixed number ("2 1/2"), a plain fraction ("3/4"), or a decimal
// or integer ("1.5", "2"). The rest of the string is the unit.
var leadingAmount = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s*/\s*(\d+)|^\s*(\d+)\s*/\s*(\d+)|^\s*(\d*\.\d+)|^\s*(\d+)`)

// ParseAmount converts a raw ingredient amount of unknown shape into a
// numeric quantity and a unit string. It is total: every input produces a
// result, never an error. Inputs that carry no parseable quantity come back
// with Amount 0 and the original text as the unit.
func ParseAmount(raw any) models.ParsedAmount {
	switch v := raw.(type) {
	case nil:
		return models.ParsedAmount{}
	case float64:
		return models.ParsedAmount{Amount: clampAmount(v)}
	case float32:
		return models.ParsedAmount{Amount: clampAmount(float64(v))}
	case int:
		return models.ParsedAmount{Amount: clampAmount(float64(v))}
	case int64:
		return models.ParsedAmount{Amount: clampAmount(float64(v))}
	case string:
		return parseAmountString(v)
	default:
		// Unknown shapes degrade to a textual unit rather than failing.
		return parseAmountString(fmt.Sprintf("%v", raw))
	}
}

func parseAmountString(s string) models.ParsedAmount {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.ParsedAmount{}
	}

	m := leadingAmount.FindStringSubmatchIndex(trimmed)
	if m == nil {
		return models.ParsedAmount{Unit: trimmed}
	}

	groups := leadingAmount.FindStringSubmatch(trimmed)
	var amount float64
	switch {
	case groups[1] != "": // mixed number: whole + numerator/denominator
		whole, _ := strconv.ParseFloat(groups[1], 64)
		num, _ := strconv.ParseFloat(groups[2], 64)
		den, _ := strconv.ParseFloat(groups[3], 64)
		if den != 0 {
			amount = whole + num/den
		}
	case groups[4] != "": // plain fraction
		num, _ := strconv.ParseFloat(groups[4], 64)
		den, _ := strconv.ParseFloat(groups[5], 64)
		if den != 0 {
			amount = num / den
		}
	case groups[6] != "": // decimal
		amount, _ = strconv.ParseFloat(groups[6], 64)
	default: // integer
		amount, _ = strconv.ParseFloat(groups[7], 64)
	}

	unit := strings.TrimSpace(trimmed[m[1]:])
	return models.ParsedAmount{Amount: clampAmount(amount), Unit: unit}
}

func clampAmount(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// FormatAmount renders a quantity for display, rounded to at most two
// decimal places with trailing zeros removed.
func FormatAmount(v float64) string {
	rounded := float64(int64(v*100+0.5)) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
