package cssom

import (
	"sort"

	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/domrender/dom/styledtree"
)

// Style styles a DOM document with an author stylesheet and a user-agent
// default stylesheet and returns a styled tree. Both sheets may be nil.
//
// Style is total: every DOM node, including text nodes, receives exactly
// one styled node with a complete set of properties. Defects in the
// stylesheets are skipped and traced.
func Style(doc *dom.Document, sheet StyleSheet, defaults StyleSheet) *styledtree.Tree {
	rules := Compile(defaults, UserAgent)
	rules = append(rules, Compile(sheet, Author)...)
	return Resolve(doc, rules)
}

// Resolve styles a DOM document with a list of compiled rules. The order of
// rules of the same origin is given by their Order field.
func Resolve(doc *dom.Document, rules []CompiledRule) *styledtree.Tree {
	builder := styledtree.NewBuilder(doc)
	if doc == nil || doc.Len() == 0 {
		return builder.Tree()
	}
	r := &resolver{doc: doc, rules: rules, builder: builder}
	r.resolve(doc.Root(), styledtree.NoNode, nil)
	tracer().Debugf("styled %d DOM nodes with %d rules", doc.Len(), len(rules))
	return builder.Tree()
}

type resolver struct {
	doc     *dom.Document
	rules   []CompiledRule
	builder *styledtree.Builder
}

func (r *resolver) resolve(id dom.NodeID, parent styledtree.NodeID, parentStyles *style.PropertyMap) {
	n := r.doc.Node(id)
	var specified *style.PropertyMap
	if n.IsElement() {
		specified = cascade(r.matchingRules(n))
	}
	computed := computeStyles(specified, parentStyles)
	sn := r.builder.Add(id, parent, computed)
	for _, ch := range r.doc.Children(id) {
		r.resolve(ch, sn.ID(), computed)
	}
}

type matchedRule struct {
	rule        *CompiledRule
	specificity Specificity
}

// matchingRules collects all rules matching n, in ascending cascade order:
// by origin, then by specificity, then by source order.
func (r *resolver) matchingRules(n *dom.Node) []matchedRule {
	var matched []matchedRule
	for i := range r.rules {
		if sp, ok := r.rules[i].Match(n); ok {
			matched = append(matched, matchedRule{rule: &r.rules[i], specificity: sp})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.rule.Origin != b.rule.Origin {
			return a.rule.Origin < b.rule.Origin
		}
		if a.specificity != b.specificity {
			return a.specificity.Less(b.specificity)
		}
		return a.rule.Order < b.rule.Order
	})
	if len(matched) > 0 {
		tracer().P("node", n.String()).Debugf("%d matching rules", len(matched))
	}
	return matched
}

// cascade merges the declarations of matched rules, which have to be in
// cascade order. Later declarations overwrite earlier ones. Important
// declarations are applied after all normal ones.
func cascade(matched []matchedRule) *style.PropertyMap {
	specified := style.NewPropertyMap()
	for _, important := range []bool{false, true} {
		for _, m := range matched {
			for _, d := range m.rule.Declarations {
				if d.Important == important {
					specified.Set(d.Key, d.Value)
				}
			}
		}
	}
	return specified
}

// computeStyles creates the complete set of properties for a node from its
// specified values and the computed values of its parent (nil for the root).
//
// Inherited properties which are not specified take the parent's value,
// others take their initial value. The keywords `inherit` and `initial`
// are resolved here.
func computeStyles(specified, parent *style.PropertyMap) *style.PropertyMap {
	computed := style.NewPropertyMap()
	for k := style.Key(0); k < style.NumKeys; k++ {
		v, ok := specified.Get(k)
		switch {
		case ok && v.IsInherit():
			computed.Set(k, inheritedValue(k, parent))
		case ok && v.IsInitial():
			computed.Set(k, style.Initial(k))
		case ok:
			computed.Set(k, v)
		case style.IsInherited(k):
			computed.Set(k, inheritedValue(k, parent))
		default:
			computed.Set(k, style.Initial(k))
		}
	}
	return computed
}

func inheritedValue(k style.Key, parent *style.PropertyMap) style.Value {
	if parent == nil {
		return style.Initial(k)
	}
	return parent.Value(k)
}
