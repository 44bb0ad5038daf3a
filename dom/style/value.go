package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ValueKind is the kind of a style value.
type ValueKind uint8

// Style values are either keywords, lengths or colors.
const (
	KeywordValue ValueKind = iota
	LengthValue
	ColorValue
)

func (k ValueKind) String() string {
	switch k {
	case KeywordValue:
		return "keyword"
	case LengthValue:
		return "length"
	case ColorValue:
		return "color"
	}
	return "unknown"
}

// Unit is the unit of a length value. Absolute units other than px are
// converted to px when parsing, so only pixels and percentages remain.
type Unit uint8

// Units for lengths.
const (
	PX Unit = iota
	Percent
)

func (u Unit) String() string {
	if u == Percent {
		return "%"
	}
	return "px"
}

// Value is a parsed style value. It is a small tagged union and is
// comparable with ==.
type Value struct {
	kind    ValueKind
	keyword string
	length  float64
	unit    Unit
	color   Color
}

// Keyword creates a keyword value, e.g. `auto` or `block`.
func Keyword(kw string) Value {
	return Value{kind: KeywordValue, keyword: kw}
}

// Px creates a length value in pixels.
func Px(n float64) Value {
	return Value{kind: LengthValue, length: n, unit: PX}
}

// Percentage creates a relative length value. 50% is Percentage(50).
func Percentage(n float64) Value {
	return Value{kind: LengthValue, length: n, unit: Percent}
}

// RGB creates an opaque color value.
func RGB(r, g, b uint8) Value {
	return Value{kind: ColorValue, color: Color{R: r, G: g, B: b}}
}

// Auto is the keyword value `auto`.
var Auto = Keyword("auto")

// Kind returns the kind of v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Keyword returns the keyword of a keyword value.
func (v Value) Keyword() (string, bool) {
	return v.keyword, v.kind == KeywordValue
}

// Length returns the amount and unit of a length value.
func (v Value) Length() (float64, Unit, bool) {
	return v.length, v.unit, v.kind == LengthValue
}

// Color returns the color of a color value.
func (v Value) Color() (Color, bool) {
	return v.color, v.kind == ColorValue
}

// Is checks if v is a given keyword.
func (v Value) Is(kw string) bool {
	return v.kind == KeywordValue && v.keyword == kw
}

// IsAuto is a shortcut for v.Is("auto").
func (v Value) IsAuto() bool { return v.Is("auto") }

// IsInherit is a shortcut for v.Is("inherit").
func (v Value) IsInherit() bool { return v.Is("inherit") }

// IsInitial is a shortcut for v.Is("initial").
func (v Value) IsInitial() bool { return v.Is("initial") }

func (v Value) String() string {
	switch v.kind {
	case LengthValue:
		return strconv.FormatFloat(v.length, 'f', -1, 64) + v.unit.String()
	case ColorValue:
		return v.color.String()
	}
	return v.keyword
}

// --- Parsing ---------------------------------------------------------------

// DeclarationError is returned for property values which are syntactically
// or semantically invalid for a property.
type DeclarationError struct {
	Property string
	Value    string
	Reason   string
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("invalid declaration '%s: %s': %s", e.Property, e.Value, e.Reason)
}

func declErr(k Key, raw string, reason string) error {
	return &DeclarationError{Property: k.String(), Value: raw, Reason: reason}
}

// ParseValue parses the raw text of a declaration for property k. Each
// property admits only certain kinds of values, e.g. `display` admits a
// fixed set of keywords and `width` admits non-negative lengths and `auto`.
// The global keywords `inherit` and `initial` are valid for every property.
//
// Lengths in pt, pc, in, cm and mm are converted to px (96px = 1in).
func ParseValue(k Key, raw string) (Value, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Value{}, declErr(k, raw, "empty value")
	}
	lower := strings.ToLower(text)
	if lower == "inherit" || lower == "initial" {
		return Keyword(lower), nil
	}
	switch k {
	case Display:
		return oneOf(k, raw, lower, "block", "inline", "inline-block", "list-item", "none")
	case Visibility:
		return oneOf(k, raw, lower, "visible", "hidden", "collapse")
	case Width, Height:
		if lower == "auto" {
			return Auto, nil
		}
		return parseLength(k, raw, true, false)
	case MarginTop, MarginRight, MarginBottom, MarginLeft:
		if lower == "auto" {
			return Auto, nil
		}
		return parseLength(k, raw, true, true)
	case PaddingTop, PaddingRight, PaddingBottom, PaddingLeft:
		return parseLength(k, raw, true, false)
	case BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth:
		if w, ok := borderWidthKeywords[lower]; ok {
			return Px(w), nil
		}
		return parseLength(k, raw, false, false)
	case TextColor:
		c, err := ParseColor(lower)
		if err != nil {
			return Value{}, declErr(k, raw, err.Error())
		}
		return Value{kind: ColorValue, color: c}, nil
	case BackgroundColor:
		if lower == "transparent" {
			return Transparent, nil
		}
		c, err := ParseColor(lower)
		if err != nil {
			return Value{}, declErr(k, raw, err.Error())
		}
		return Value{kind: ColorValue, color: c}, nil
	case FontSize:
		if sz, ok := fontSizeKeywords[lower]; ok {
			return Px(sz), nil
		}
		return parseLength(k, raw, false, false)
	case FontFamily:
		return Keyword(text), nil
	}
	return Value{}, declErr(k, raw, "unknown property")
}

// Transparent is the initial background color.
var Transparent = Keyword("transparent")

var borderWidthKeywords = map[string]float64{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}

var fontSizeKeywords = map[string]float64{
	"xx-small": 9,
	"x-small":  10,
	"small":    13,
	"medium":   16,
	"large":    18,
	"x-large":  24,
	"xx-large": 32,
}

func oneOf(k Key, raw, kw string, allowed ...string) (Value, error) {
	for _, a := range allowed {
		if kw == a {
			return Keyword(kw), nil
		}
	}
	return Value{}, declErr(k, raw, "expecting one of "+strings.Join(allowed, ", "))
}

// pixels per absolute unit
var absoluteUnits = map[string]float64{
	"px": 1,
	"pt": 96.0 / 72.0,
	"pc": 16,
	"in": 96,
	"cm": 96.0 / 2.54,
	"mm": 96.0 / 25.4,
}

// parseLength parses a single CSS length. Unitless numbers are allowed for
// zero only.
func parseLength(k Key, raw string, percentOK, negativeOK bool) (Value, error) {
	toks := valueTokens(raw)
	neg := false
	if len(toks) == 2 && toks[0].Type == scanner.TokenChar && (toks[0].Value == "-" || toks[0].Value == "+") {
		neg = toks[0].Value == "-"
		toks = toks[1:]
	}
	if len(toks) != 1 {
		return Value{}, declErr(k, raw, "expecting a single length")
	}
	var v Value
	tok := toks[0]
	switch tok.Type {
	case scanner.TokenNumber:
		n, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil || n != 0 {
			return Value{}, declErr(k, raw, "length is missing a unit")
		}
		v = Px(0)
	case scanner.TokenPercentage:
		if !percentOK {
			return Value{}, declErr(k, raw, "percentages not allowed")
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(tok.Value, "%"), 64)
		if err != nil {
			return Value{}, declErr(k, raw, err.Error())
		}
		v = Percentage(n)
	case scanner.TokenDimension:
		num, unit := splitDimension(tok.Value)
		factor, ok := absoluteUnits[strings.ToLower(unit)]
		if !ok {
			return Value{}, declErr(k, raw, "unsupported unit "+unit)
		}
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Value{}, declErr(k, raw, err.Error())
		}
		v = Px(n * factor)
	default:
		return Value{}, declErr(k, raw, "expecting a length")
	}
	if neg {
		v.length = -v.length
	}
	if v.length < 0 && !negativeOK {
		return Value{}, declErr(k, raw, "negative values not allowed")
	}
	return v, nil
}

// valueTokens tokenizes a property value, dropping whitespace and comments.
func valueTokens(raw string) []*scanner.Token {
	var toks []*scanner.Token
	s := scanner.New(raw)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return toks
		case scanner.TokenS, scanner.TokenComment:
			continue
		}
		toks = append(toks, tok)
	}
}

func splitDimension(d string) (num, unit string) {
	i := 0
	for i < len(d) && (d[i] >= '0' && d[i] <= '9' || d[i] == '.') {
		i++
	}
	return d[:i], d[i:]
}
