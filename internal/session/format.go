package session

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders a float the way the calculators display operands and
// results: at a fixed precision when one is configured, otherwise in the
// shortest form that round-trips, with integral values keeping a trailing
// ".0" (so 9 prints as "9.0").
func FormatNumber(v float64, precision int) string {
	if precision >= 0 {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
