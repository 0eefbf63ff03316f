package osm2map

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type lengthUnit struct {
	suffix string
	factor float64
}

// Longer suffixes first: "meters" must not be cut as "m"
var lengthUnits = []lengthUnit{
	{"meters", 1.0},
	{"metres", 1.0},
	{"meter", 1.0},
	{"metre", 1.0},
	{"feet", 0.3048},
	{"ft", 0.3048},
	{"m", 1.0},
}

// parsePositiveFloat parses float with either '.' or ',' as decimal separator
func parsePositiveFloat(str string) (float64, error) {
	value := strings.TrimSpace(str)
	if value == "" {
		return 0, ErrEmptyTag
	}
	value = strings.ReplaceAll(value, ",", ".")
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errors.Wrapf(ErrBadNumber, "'%s'", str)
	}
	return f, nil
}

// parseLength parses `width` and `height` values such as "7", "7.5 m", "3,5m" or "12 ft".
// Returns value in meters
func parseLength(str string) (float64, error) {
	value := strings.ToLower(strings.TrimSpace(str))
	if value == "" {
		return 0, ErrEmptyTag
	}
	value = strings.ReplaceAll(value, " ", "")
	factor := 1.0
	for _, unit := range lengthUnits {
		if strings.HasSuffix(value, unit.suffix) {
			value = strings.TrimSuffix(value, unit.suffix)
			factor = unit.factor
			break
		}
	}
	f, err := parsePositiveFloat(value)
	if err != nil {
		return 0, errors.Wrapf(ErrBadNumber, "'%s'", str)
	}
	return f * factor, nil
}

// parseLanes parses `lanes` value. Only positive integers are accepted ("2;3" is not)
func parseLanes(str string) (int, error) {
	value := strings.TrimSpace(str)
	if value == "" {
		return 0, ErrEmptyTag
	}
	lanes, err := strconv.Atoi(value)
	if err != nil || lanes <= 0 {
		return 0, errors.Wrapf(ErrBadNumber, "'%s'", str)
	}
	return lanes, nil
}

// parseSpeed keeps digits of `maxspeed` value only: "50 km/h" -> 50, "30 mph" -> 30.
// Values without digits ("none", "signals") and zero are failures
func parseSpeed(str string) (int, error) {
	if strings.TrimSpace(str) == "" {
		return 0, ErrEmptyTag
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, str)
	if digits == "" {
		return 0, errors.Wrapf(ErrBadNumber, "'%s'", str)
	}
	speed, err := strconv.Atoi(digits)
	if err != nil || speed <= 0 {
		return 0, errors.Wrapf(ErrBadNumber, "'%s'", str)
	}
	return speed, nil
}

// parseLevels parses `building:levels` value (fractional levels are allowed)
func parseLevels(str string) (float64, error) {
	return parsePositiveFloat(str)
}

// parseOneway interprets `oneway` value. Unknown values give known == false
func parseOneway(str string) (oneway bool, reversed bool, known bool) {
	value := strings.ToLower(strings.TrimSpace(str))
	if _, ok := onewayForward[value]; ok {
		return true, false, true
	}
	if _, ok := onewayTwoWay[value]; ok {
		return false, false, true
	}
	if value == "-1" {
		return true, true, true
	}
	// Reversible or alternating are time dependent
	if _, ok := onewayReversible[value]; ok {
		return false, false, true
	}
	return false, false, false
}
