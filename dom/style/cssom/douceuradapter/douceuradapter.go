/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It wraps stylesheets parsed by github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/domrender/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domrender.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("domrender.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses CSS source text into a stylesheet.
//
// A malformed rule does not invalidate the whole stylesheet: if the source
// does not parse, it is split into top-level blocks, which are parsed one by
// one. Blocks with errors are skipped. An error is returned only if no block
// could be parsed.
func Parse(source string) (*CSSStyles, error) {
	c, err := parser.Parse(source)
	if err == nil {
		return Wrap(c), nil
	}
	tracer().Infof("stylesheet has errors, parsing rule by rule: %v", err)
	sheet := &CSSStyles{}
	recovered := 0
	for _, block := range splitBlocks(source) {
		bc, berr := parser.Parse(block)
		if berr != nil {
			tracer().Infof("skipping malformed rule %q: %v", strings.TrimSpace(block), berr)
			continue
		}
		recovered++
		sheet.AppendRules(Wrap(bc))
	}
	if recovered == 0 {
		return nil, err
	}
	return sheet, nil
}

// splitBlocks splits CSS source into top-level statements: rules with their
// (possibly nested) blocks, and at-rules terminated by a semicolon.
func splitBlocks(source string) []string {
	var blocks []string
	var b strings.Builder
	flush := func() {
		if strings.TrimSpace(b.String()) != "" {
			blocks = append(blocks, b.String())
		}
		b.Reset()
	}
	depth := 0
	s := scanner.New(source)
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF {
			break
		}
		if tok.Type == scanner.TokenError {
			tracer().Infof("CSS scanner error at %d:%d", tok.Line, tok.Column)
			break
		}
		b.WriteString(tok.Value)
		if tok.Type != scanner.TokenChar {
			continue
		}
		switch tok.Value {
		case "{":
			depth++
		case "}":
			if depth--; depth <= 0 {
				depth = 0
				flush()
			}
		case ";":
			if depth == 0 {
				flush()
			}
		}
	}
	flush()
	return blocks
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
// At-rules (@media, @import, …) are not supported and will be dropped.
func Wrap(c *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{}
	if c == nil {
		return sheet
	}
	for _, r := range c.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("ignoring at-rule %s", r.Name)
			continue
		}
		sheet.css.Rules = append(sheet.css.Rules, r)
	}
	return sheet
}

// Merge concatenates the rules of several stylesheets, in order, into a
// new stylesheet. Nil sheets are skipped.
func Merge(sheets ...*CSSStyles) *CSSStyles {
	merged := &CSSStyles{}
	for _, s := range sheets {
		if s != nil {
			merged.AppendRules(s)
		}
	}
	return merged
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return sheet == nil || len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
// Rules of other are appended if it is a CSSStyles as well; otherwise
// the call is a no-op.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules from stylesheet of type %T", other)
		return
	}
	if othercss == nil {
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	if sheet == nil {
		return nil
	}
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		rules[i] = Rule(*sheet.css.Rules[i])
	}
	return rules
}

func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a property is declared more than once, the last important declaration
// wins. Without an important declaration, the last declaration wins.
func (r Rule) Value(key string) string {
	if d := r.effectiveDeclaration(key); d != nil {
		return d.Value
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.effectiveDeclaration(key); d != nil {
		return d.Important
	}
	return false
}

func (r Rule) effectiveDeclaration(key string) *css.Declaration {
	var last *css.Declaration
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if !strings.EqualFold(decl[i].Property, key) {
			continue
		}
		if decl[i].Important {
			return decl[i]
		}
		if last == nil {
			last = decl[i]
		}
	}
	return last
}

var _ cssom.Rule = &Rule{}
