package css

import (
	"fmt"

	"github.com/npillmayer/domrender/dom/style"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions. Absolute dimensions are
// measured in logical pixels.
type DimenT struct {
	d       float64
	percent float64
	flags   uint32
}

/*
type DimenT
	= None
	| Auto
	| JustDimen px
	| Percentage n
*/

// Auto creates the dimension `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// JustDimen creates a CSS dimension with a fixed value of x pixels.
func JustDimen(x float64) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
// 50% is Percentage(50).
func Percentage(n float64) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// DimenOf converts a style value into a dimension. Values other than
// lengths and `auto` yield an unset dimension.
func DimenOf(v style.Value) DimenT {
	if v.IsAuto() {
		return Auto()
	}
	n, unit, ok := v.Length()
	if !ok {
		return DimenT{flags: dimenNone}
	}
	if unit == style.Percent {
		return Percentage(n)
	}
	return JustDimen(n)
}

// IsNone returns true for unset dimensions.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAuto returns true for dimension `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsAbsolute returns true if the dimension has a fixed value.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsPercent returns true if the dimension is relative to a containing block.
func (d DimenT) IsPercent() bool {
	return d.flags&dimenPercent > 0
}

// Resolve returns the value of a dimension in pixels, given the size of
// the containing block. `auto` and unset dimensions do not resolve.
func (d DimenT) Resolve(base float64) (float64, bool) {
	switch {
	case d.IsAbsolute():
		return d.d, true
	case d.IsPercent():
		return base * d.percent / 100, true
	}
	return 0, false
}

func (d DimenT) String() string {
	switch {
	case d.IsAuto():
		return "auto"
	case d.IsAbsolute():
		return fmt.Sprintf("%gpx", d.d)
	case d.IsPercent():
		return fmt.Sprintf("%g%%", d.percent)
	}
	return "none"
}

// ---------------------------------------------------------------------------

// Match starts a type switch on the variants of a dimension:
//
//     switch m := d.Match(); m {
//     case m.Just(&px):
//         …
//     case m.IsKind(css.Auto()):
//         …
//     }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper for matching dimension variants in switch statements.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same variant as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case d.flags == dimenNone:
		if m.dimen.flags == dimenNone {
			return m
		}
	case (m.dimen.flags & kindMask) == (d.flags&kindMask) && d.flags&kindMask != 0:
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&dimenPercent > 0) != (d.flags&dimenPercent > 0) {
			return nil
		}
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts their value in pixels.
func (m *Matcher) Just(px *float64) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if px != nil {
			*px = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches relative dimensions and extracts their percentage.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
