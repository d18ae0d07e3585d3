package model

import (
	"errors"
	"strings"
)

// DisplayUnit is the user-selected temperature unit.
type DisplayUnit string

const (
	Celsius    DisplayUnit = "C"
	Fahrenheit DisplayUnit = "F"
)

var ErrInvalidUnit = errors.New("unit must be one of C, F, celsius, fahrenheit")

// ParseDisplayUnit accepts C, F, celsius or fahrenheit in any case.
func ParseDisplayUnit(value string) (DisplayUnit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return "", ErrInvalidUnit
	}
}

// Glyph is the suffix shown after the degree sign.
func (u DisplayUnit) Glyph() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// Other returns the opposite unit.
func (u DisplayUnit) Other() DisplayUnit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}
