package cssom

import (
	"strings"

	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/domrender/dom/style"
)

// Origin is the origin of a stylesheet. Rules from the user agent's default
// stylesheet are always overridden by author rules, regardless of their
// specificity.
type Origin uint8

// Stylesheet origins, in cascade order.
const (
	UserAgent Origin = iota
	Author
)

func (o Origin) String() string {
	if o == UserAgent {
		return "user-agent"
	}
	return "author"
}

// Declaration is a validated, typed style declaration.
type Declaration struct {
	Key       style.Key
	Value     style.Value
	Important bool
}

// CompiledRule is a rule with parsed selectors and declarations.
// Order is the position of the rule within all the rules of its origin and
// is used to break ties between rules of equal specificity.
type CompiledRule struct {
	Selectors    []Selector
	Declarations []Declaration
	Origin       Origin
	Order        int
}

// Match returns the specificity of the most specific selector of the rule
// which matches a node. If no selector matches, ok is false.
func (r *CompiledRule) Match(n *dom.Node) (Specificity, bool) {
	var best Specificity
	found := false
	for _, sel := range r.Selectors {
		if sel.Matches(n) {
			if sp := sel.Specificity(); !found || best.Less(sp) {
				best = sp
			}
			found = true
		}
	}
	return best, found
}

// Compile compiles all the rules of a stylesheet. Rules with malformed or
// unsupported selectors are dropped, as are invalid declarations within a
// rule. Shorthand properties are expanded into their longhands.
// A nil stylesheet yields no rules.
func Compile(sheet StyleSheet, origin Origin) []CompiledRule {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	var compiled []CompiledRule
	for i, rule := range sheet.Rules() {
		sels, err := ParseSelectorGroup(rule.Selector())
		if err != nil {
			tracer().Infof("dropping rule: %v", err)
			continue
		}
		decls := compileDeclarations(rule)
		if len(decls) == 0 {
			tracer().Debugf("rule %q has no valid declarations", rule.Selector())
		}
		compiled = append(compiled, CompiledRule{
			Selectors:    sels,
			Declarations: decls,
			Origin:       origin,
			Order:        i,
		})
	}
	tracer().Debugf("compiled %d %s rules", len(compiled), origin)
	return compiled
}

func compileDeclarations(rule Rule) []Declaration {
	var decls []Declaration
	props := rule.Properties()
	last := make(map[string]int, len(props))
	for i, prop := range props {
		last[strings.ToLower(strings.TrimSpace(prop))] = i
	}
	for i, prop := range props {
		name := strings.ToLower(strings.TrimSpace(prop))
		if last[name] != i {
			continue // one declaration per property, see Rule.Value
		}
		raw := rule.Value(prop)
		important := rule.IsImportant(prop)
		if style.IsCompound(name) {
			kvs, err := style.SplitCompoundProperty(name, raw)
			if err != nil {
				tracer().Infof("dropping declaration: %v", err)
				continue
			}
			parsed := make([]Declaration, 0, len(kvs))
			for _, kv := range kvs {
				v, err := style.ParseValue(kv.Key, kv.Value)
				if err != nil {
					break
				}
				parsed = append(parsed, Declaration{Key: kv.Key, Value: v, Important: important})
			}
			if len(parsed) != len(kvs) {
				tracer().Infof("dropping invalid shorthand '%s: %s'", name, raw)
				continue
			}
			decls = append(decls, parsed...)
			continue
		}
		key, ok := style.KeyFromName(name)
		if !ok {
			tracer().Debugf("ignoring unsupported property %q", name)
			continue
		}
		v, err := style.ParseValue(key, raw)
		if err != nil {
			tracer().Infof("dropping declaration: %v", err)
			continue
		}
		decls = append(decls, Declaration{Key: key, Value: v, Important: important})
	}
	return decls
}
