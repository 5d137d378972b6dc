package sushi

import (
	"regexp"
	"strconv"
)

var nonNumericRegex = regexp.MustCompile(`[^0-9.]`)

// ParsePrice parses a display price string by stripping every character
// other than digits and the decimal point. ok is false when nothing
// parsable remains.
func ParsePrice(price string) (float64, bool) {
	cleaned := nonNumericRegex.ReplaceAllString(price, "")
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
