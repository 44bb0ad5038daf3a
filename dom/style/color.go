package style

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
	"golang.org/x/image/colornames"
)

// Color is an opaque RGB color with channels in the range 0–255.
// Alpha is not modeled.
type Color struct {
	R, G, B uint8
}

// Some well known colors.
var (
	Black = Color{0, 0, 0}
	White = Color{0xff, 0xff, 0xff}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// String returns the CSS name of c, if one exists, otherwise its hex notation.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return c.Hex()
}

// Hex returns c in the notation #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// colorNames is a reverse lookup table for named colors. For colors with
// more than one name (gray/grey, aqua/cyan, …) the alphabetically first
// name is used.
var colorNames map[Color]string

func init() {
	colorNames = make(map[Color]string, len(colornames.Names))
	for _, name := range colornames.Names {
		rgba := colornames.Map[name]
		c := Color{rgba.R, rgba.G, rgba.B}
		if _, exists := colorNames[c]; !exists {
			colorNames[c] = name
		}
	}
}

var errColorSyntax = errors.New("not a color")

// ParseColor parses a CSS color. Supported are the named colors of CSS/SVG,
// hex notations #rgb and #rrggbb, and the functional notation
// rgb(r, g, b) with either integer or percentage channels.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if rgba, ok := colornames.Map[s]; ok {
		return Color{rgba.R, rgba.G, rgba.B}, nil
	}
	toks := valueTokens(s)
	if len(toks) == 0 {
		return Color{}, errColorSyntax
	}
	switch toks[0].Type {
	case scanner.TokenHash:
		if len(toks) != 1 {
			return Color{}, errColorSyntax
		}
		return parseHexColor(toks[0].Value[1:])
	case scanner.TokenFunction:
		if toks[0].Value != "rgb(" {
			return Color{}, fmt.Errorf("unsupported color function %s)", toks[0].Value)
		}
		return parseRGBFunction(toks[1:])
	}
	return Color{}, errColorSyntax
}

func parseHexColor(hex string) (Color, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("hex color must have 3 or 6 digits: #%s", hex)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color #%s", hex)
	}
	return Color{uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

// parseRGBFunction expects the tokens following `rgb(`, i.e.
// `r , g , b )`.
func parseRGBFunction(toks []*scanner.Token) (Color, error) {
	if len(toks) != 6 || toks[5].Value != ")" {
		return Color{}, errors.New("rgb() expects three arguments")
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		tok := toks[2*i]
		if i < 2 && toks[2*i+1].Value != "," {
			return Color{}, errors.New("rgb() arguments must be separated by commas")
		}
		var n float64
		var err error
		switch tok.Type {
		case scanner.TokenNumber:
			n, err = strconv.ParseFloat(tok.Value, 64)
		case scanner.TokenPercentage:
			n, err = strconv.ParseFloat(strings.TrimSuffix(tok.Value, "%"), 64)
			n = n * 255 / 100
		default:
			return Color{}, fmt.Errorf("invalid rgb() channel %q", tok.Value)
		}
		if err != nil {
			return Color{}, err
		}
		ch[i] = clampChannel(n)
	}
	return Color{ch[0], ch[1], ch[2]}, nil
}

func clampChannel(n float64) uint8 {
	if n <= 0 {
		return 0
	}
	if n >= 255 {
		return 255
	}
	return uint8(n + 0.5)
}
