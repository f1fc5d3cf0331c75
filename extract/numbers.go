package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// numberWords maps the small number words accepted where only a small
// integer is expected (bedroom counts, guided answers).
var numberWords = map[string]int64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

var numberWithUnitPattern = regexp.MustCompile(`(?i)(\d+[\d.,]*)\s*(lakh|lac|crore|k|m|million)?`)

// unitMultiplier returns the multiplier for a magnitude word.
// Unknown or absent units multiply by 1.
func unitMultiplier(unit string) int64 {
	switch unit = strings.ToLower(strings.TrimSpace(unit)); {
	case strings.Contains(unit, "lakh"), unit == "lac":
		return 100_000
	case strings.Contains(unit, "crore"):
		return 10_000_000
	case unit == "k":
		return 1_000
	case unit == "m", strings.Contains(unit, "million"):
		return 1_000_000
	}
	return 1
}

// ParseNumberWithUnit converts a numeral plus an optional magnitude word into
// a canonical value: "50" + "lakh" -> 5000000, "1.5" + "crore" -> 15000000.
// Thousands separators and whitespace are stripped first. Non-numeric or
// empty input yields 0, never an error.
func ParseNumberWithUnit(numeral, unit string) int64 {
	cleaned := strings.NewReplacer(",", "", "_", "", " ", "", "\t", "").Replace(numeral)
	if cleaned == "" {
		return 0
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return int64(v * float64(unitMultiplier(unit)))
}

// ParseNumberOrWord parses a small-number word ("two"), a numeral with an
// optional unit ("50 lakh", "1.5 crore"), or a plain number. The second
// return value reports whether anything numeric was found.
func ParseNumberOrWord(s string) (int64, bool) {
	clean := strings.ToLower(strings.TrimSpace(s))
	if clean == "" {
		return 0, false
	}

	if n, ok := numberWords[clean]; ok {
		return n, true
	}

	if m := numberWithUnitPattern.FindStringSubmatch(clean); m != nil {
		return ParseNumberWithUnit(m[1], m[2]), true
	}

	cleaned := strings.NewReplacer(",", "", "_", "").Replace(clean)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return int64(v), true
}
