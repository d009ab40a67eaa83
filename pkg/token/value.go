package token

import (
	"regexp"
	"strconv"
)

// Value is the result of parsing a raw scalar. Number and Unit are populated
// only when the raw text is a plain magnitude with an optional CSS unit.
type Value struct {
	Raw    string   `json:"raw"`
	Number *float64 `json:"number,omitempty"`
	Unit   string   `json:"unit,omitempty"`
}

var (
	magnitudeRe = regexp.MustCompile(`^(-?[0-9]+(?:\.[0-9]+)?)(px|rem|em|%|vw|vh|s|ms)?$`)
	hexColorRe  = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	rgbColorRe  = regexp.MustCompile(`^rgba?\(`)
)

// ParseValue parses a raw scalar (string or JSON number) into a Value.
// Parsing is total: anything that is not a magnitude, hex color, or rgb()
// form degrades to an opaque value carrying only the raw text.
func ParseValue(raw any) Value {
	switch v := raw.(type) {
	case float64:
		return numberValue(v)
	case int:
		return numberValue(float64(v))
	case string:
		return parseString(v)
	default:
		return Value{}
	}
}

func numberValue(n float64) Value {
	return Value{Raw: strconv.FormatFloat(n, 'f', -1, 64), Number: &n}
}

func parseString(s string) Value {
	if m := magnitudeRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return Value{Raw: s, Number: &n, Unit: m[2]}
		}
	}
	if hexColorRe.MatchString(s) {
		return Value{Raw: s, Unit: "hex"}
	}
	if rgbColorRe.MatchString(s) {
		return Value{Raw: s, Unit: "rgb"}
	}
	return Value{Raw: s}
}
