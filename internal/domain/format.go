package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AreaUnit is appended to every displayed area.
const AreaUnit = "km²"

// FormatThousands renders v rounded to an integer with comma grouping,
// e.g. 1160 -> "1,160".
func FormatThousands(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.0f", v)
}

// FormatArea renders an area as "1,160 km²".
func FormatArea(v float64) string {
	return FormatThousands(v) + " " + AreaUnit
}

// FormatPercent renders a percentage in its shortest decimal form, keeping
// one decimal place for whole numbers, e.g. -1.7 -> "-1.7%", 3 -> "3.0%".
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s + "%"
}

// FormatMillions renders v in millions with one decimal, e.g. 15000000 -> "15.0M".
func FormatMillions(v float64) string {
	return fmt.Sprintf("%.1fM", v/1e6)
}

// Verbatim returns the source text of a metric with a suffix, preserving the
// precision written by the pipeline.
func Verbatim(n json.Number, suffix string) string {
	return n.String() + suffix
}

// NumberValue converts a metric to float64. Metrics are validated as numeric
// at load time, so the zero fallback only applies to zero-value bundles.
func NumberValue(n json.Number) float64 {
	v, err := n.Float64()
	if err != nil {
		return 0
	}
	return v
}
