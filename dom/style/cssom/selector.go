package cssom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domrender/dom"
)

// Errors returned when parsing selectors.
var (
	ErrMalformedSelector   = errors.New("malformed selector")
	ErrUnsupportedSelector = errors.New("unsupported selector")
)

// Specificity of a selector, as a tuple (ids, classes, tags).
// Specificities are compared lexicographically.
type Specificity [3]int

// Less returns true if s is strictly less specific than other.
func (s Specificity) Less(other Specificity) bool {
	return cascadia.Specificity(s).Less(cascadia.Specificity(other))
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// Selector is a simple selector, i.e. a combination of an optional tag, an
// optional ID and a set of class names. At least one of these constraints
// is present.
type Selector struct {
	Tag     string
	ID      string
	Classes []string
}

// Specificity returns the specificity of a selector.
func (sel Selector) Specificity() Specificity {
	var sp Specificity
	if sel.ID != "" {
		sp[0] = 1
	}
	sp[1] = len(sel.Classes)
	if sel.Tag != "" {
		sp[2] = 1
	}
	return sp
}

// Matches returns true if n is an element node and every constraint of the
// selector holds for n.
func (sel Selector) Matches(n *dom.Node) bool {
	if n == nil || !n.IsElement() {
		return false
	}
	if sel.Tag != "" && sel.Tag != n.Tag() {
		return false
	}
	if sel.ID != "" && sel.ID != n.ID() {
		return false
	}
	for _, cl := range sel.Classes {
		if !n.HasClass(cl) {
			return false
		}
	}
	return true
}

func (sel Selector) String() string {
	var b strings.Builder
	b.WriteString(sel.Tag)
	if sel.ID != "" {
		b.WriteString("#" + sel.ID)
	}
	for _, cl := range sel.Classes {
		b.WriteString("." + cl)
	}
	return b.String()
}

// ParseSelectorGroup parses the prelude of a CSS rule, i.e. a
// comma-separated list of selectors. A syntactically invalid prelude
// invalidates the whole group and yields ErrMalformedSelector.
// Selectors which are valid CSS but not simple selectors (combinators,
// attribute selectors, pseudo-classes, the bare universal selector) are
// skipped. If no simple selector remains, ErrUnsupportedSelector is
// returned.
func ParseSelectorGroup(prelude string) ([]Selector, error) {
	group, err := cascadia.ParseGroup(strings.TrimSpace(prelude))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedSelector, prelude, err)
	}
	var sels []Selector
	for _, csel := range group {
		sel, err := parseSimpleSelector(csel.String())
		if err != nil {
			tracer().Infof("skipping selector %q: %v", csel.String(), err)
			continue
		}
		if sp := Specificity(csel.Specificity()); sp != sel.Specificity() {
			// cannot happen for simple selectors
			tracer().Errorf("specificity mismatch for %q: %v != %v", sel, sp, sel.Specificity())
		}
		sels = append(sels, sel)
	}
	if len(sels) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSelector, prelude)
	}
	return sels, nil
}

// parseSimpleSelector parses a selector of the form `tag#id.class1.class2`,
// where every part is optional. Input is the normalized form of a selector
// as produced by cascadia, where special characters in identifiers are
// escaped with a backslash.
func parseSimpleSelector(s string) (Selector, error) {
	var sel Selector
	part, rest := scanIdent(s)
	sel.Tag = strings.ToLower(part)
	for rest != "" {
		marker := rest[0]
		part, rest = scanIdent(rest[1:])
		if part == "" {
			return Selector{}, fmt.Errorf("%w: %q", ErrUnsupportedSelector, s)
		}
		switch marker {
		case '#':
			if sel.ID != "" && sel.ID != part {
				return Selector{}, fmt.Errorf("%w: %q has two IDs", ErrUnsupportedSelector, s)
			}
			sel.ID = part
		case '.':
			sel.Classes = append(sel.Classes, part)
		default:
			return Selector{}, fmt.Errorf("%w: %q", ErrUnsupportedSelector, s)
		}
	}
	if sel.Tag == "" && sel.ID == "" && len(sel.Classes) == 0 {
		return Selector{}, fmt.Errorf("%w: universal selector", ErrUnsupportedSelector)
	}
	return sel, nil
}

// scanIdent reads an identifier, resolving backslash escapes, up to the
// first unescaped character which is not part of an identifier.
func scanIdent(s string) (ident, rest string) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			b.WriteByte(s[i+1])
			i += 2
			continue
		}
		if c == '#' || c == '.' || c == ' ' || c == '>' || c == '+' || c == '~' ||
			c == '[' || c == ':' || c == ',' || c == '*' {
			break
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), s[i:]
}
