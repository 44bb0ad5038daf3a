package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domrender.style'
func tracer() tracing.Trace {
	return tracing.Select("domrender.style")
}

// Key is a CSS property recognized by the engine. The set of keys is closed:
// properties unknown to the engine are rejected at the parser boundary and
// never make it into a property map.
type Key uint8

// Recognized CSS properties. Shorthands like `margin` are not keys, but are
// split into their longhands (see SplitCompoundProperty).
const (
	Display Key = iota
	Visibility
	Width
	Height
	MarginTop
	MarginRight
	MarginBottom
	MarginLeft
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	BorderTopWidth
	BorderRightWidth
	BorderBottomWidth
	BorderLeftWidth
	TextColor
	BackgroundColor
	FontSize
	FontFamily
	NumKeys // number of recognized properties; not a property
)

// Group is the name of a property group. CSS knows a whole lot of properties.
// We split them up into organisatorial groups.
type Group string

// Symbolic names for property groups.
const (
	PGMargins   Group = "Margins"
	PGPadding   Group = "Padding"
	PGBorder    Group = "Border"
	PGDimension Group = "Dimension"
	PGDisplay   Group = "Display"
	PGColor     Group = "Color"
	PGText      Group = "Text"
)

// Groups lists all property groups.
var Groups = []Group{PGDisplay, PGDimension, PGMargins, PGPadding, PGBorder, PGColor, PGText}

type propertyInfo struct {
	name      string
	group     Group
	inherited bool
}

var properties = [NumKeys]propertyInfo{
	Display:           {"display", PGDisplay, false},
	Visibility:        {"visibility", PGDisplay, true},
	Width:             {"width", PGDimension, false},
	Height:            {"height", PGDimension, false},
	MarginTop:         {"margin-top", PGMargins, false},
	MarginRight:       {"margin-right", PGMargins, false},
	MarginBottom:      {"margin-bottom", PGMargins, false},
	MarginLeft:        {"margin-left", PGMargins, false},
	PaddingTop:        {"padding-top", PGPadding, false},
	PaddingRight:      {"padding-right", PGPadding, false},
	PaddingBottom:     {"padding-bottom", PGPadding, false},
	PaddingLeft:       {"padding-left", PGPadding, false},
	BorderTopWidth:    {"border-top-width", PGBorder, false},
	BorderRightWidth:  {"border-right-width", PGBorder, false},
	BorderBottomWidth: {"border-bottom-width", PGBorder, false},
	BorderLeftWidth:   {"border-left-width", PGBorder, false},
	TextColor:         {"color", PGColor, true},
	BackgroundColor:   {"background-color", PGColor, false},
	FontSize:          {"font-size", PGText, true},
	FontFamily:        {"font-family", PGText, true},
}

var keyFromName map[string]Key

func init() {
	keyFromName = make(map[string]Key, NumKeys)
	for k := Key(0); k < NumKeys; k++ {
		keyFromName[properties[k].name] = k
	}
}

// KeyFromName returns the key for a CSS property name, e.g.
//
//     KeyFromName("margin-top") => MarginTop, true
//
// Property names are case-insensitive.
func KeyFromName(name string) (Key, bool) {
	k, ok := keyFromName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

func (k Key) String() string {
	if k < NumKeys {
		return properties[k].name
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// Group returns the property group a key belongs to.
func (k Key) Group() Group {
	if k < NumKeys {
		return properties[k].group
	}
	return ""
}

// IsInherited returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., if the property is not set for a node, it
// takes the value of the parent node.
func IsInherited(k Key) bool {
	return k < NumKeys && properties[k].inherited
}

// KeysOfGroup returns all keys belonging to a property group.
func KeysOfGroup(g Group) []Key {
	var keys []Key
	for k := Key(0); k < NumKeys; k++ {
		if properties[k].group == g {
			keys = append(keys, k)
		}
	}
	return keys
}

// --- Compound properties ---------------------------------------------------

// KeyValue is a container for a raw, not yet parsed style property.
type KeyValue struct {
	Key   Key
	Value string
}

// IsCompound returns true if name is a shorthand property we know how to split.
func IsCompound(name string) bool {
	switch strings.ToLower(name) {
	case "margin", "padding", "border-width", "border":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompoundProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left"   => "3px"
//
// For `border`, only the width component is retained, as border styles and
// colors are not part of the engine's property set.
func SplitCompoundProperty(name string, value string) ([]KeyValue, error) {
	fields := strings.Fields(value)
	switch strings.ToLower(name) {
	case "margin":
		return distribute4([4]Key{MarginTop, MarginRight, MarginBottom, MarginLeft}, name, fields)
	case "padding":
		return distribute4([4]Key{PaddingTop, PaddingRight, PaddingBottom, PaddingLeft}, name, fields)
	case "border-width":
		return distribute4(borderWidths, name, fields)
	case "border":
		for _, f := range fields {
			if _, err := ParseValue(BorderTopWidth, f); err == nil {
				return distribute4(borderWidths, name, []string{f})
			}
		}
		tracer().Debugf("border shorthand %q has no width component", value)
		return nil, &DeclarationError{Property: name, Value: value, Reason: "no border width"}
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", name)
}

var borderWidths = [4]Key{BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
//
//     1 value:  all four sides
//     2 values: top+bottom, right+left
//     3 values: top, right+left, bottom
//     4 values: top, right, bottom, left
func distribute4(keys [4]Key, name string, fields []string) ([]KeyValue, error) {
	var v [4]string
	switch len(fields) {
	case 1:
		v = [4]string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		v = [4]string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		v = [4]string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		v = [4]string{fields[0], fields[1], fields[2], fields[3]}
	default:
		return nil, &DeclarationError{
			Property: name,
			Value:    strings.Join(fields, " "),
			Reason:   "expecting 1-4 values",
		}
	}
	r := make([]KeyValue, 4)
	for i := range keys {
		r[i] = KeyValue{Key: keys[i], Value: v[i]}
	}
	return r, nil
}
