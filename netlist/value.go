package netlist

import (
	"fmt"
	"strconv"
	"strings"
)

var unitMap = map[string]float64{
	"T": 1e12,  // tera
	"G": 1e9,   // giga
	"K": 1e3,   // kilo
	"k": 1e3,   // kilo
	"m": 1e-3,  // milli
	"u": 1e-6,  // micro
	"n": 1e-9,  // nano
	"p": 1e-12, // pico
	"f": 1e-15, // femto
}

// ParseValue - Parse value and factor. 1k -> 1000, 2.2meg -> 2.2e6
func ParseValue(s string) (float64, error) {
	if value, err := strconv.ParseFloat(s, 64); err == nil {
		return value, nil
	}

	if len(s) > 3 && strings.EqualFold(s[len(s)-3:], "meg") {
		value, err := strconv.ParseFloat(s[:len(s)-3], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid value: %s", s)
		}
		return value * 1e6, nil
	}

	if len(s) > 1 {
		if factor, ok := unitMap[s[len(s)-1:]]; ok {
			value, err := strconv.ParseFloat(s[:len(s)-1], 64)
			if err != nil {
				return 0, fmt.Errorf("invalid value: %s", s)
			}
			return value * factor, nil
		}
	}

	return 0, fmt.Errorf("invalid value: %s", s)
}
