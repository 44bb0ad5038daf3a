package css

import (
	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/domrender/dom/styledtree"
)

// GetCascadedProperty gets the value of a property. The search cascades to
// the property maps of ancestors until a value is found. If no ancestor
// has the property set, the initial value for the property is returned.
//
// Clients will usually call GetProperty(…) instead as this will respect
// CSS semantics for inherited properties.
func GetCascadedProperty(t *styledtree.Tree, sn *styledtree.StyNode, key style.Key) style.Value {
	for sn != nil {
		if v, ok := sn.Styles().Get(key); ok && !v.IsInherit() {
			return v
		}
		sn = t.Node(t.Parent(sn.ID()))
	}
	return style.Initial(key)
}

// GetProperty gets the value of a property. If the property is not set
// locally on the style node and the property is inheritable, the search
// cascades to parent property maps, if available.
//
// Styled trees created by cssom.Style carry complete property maps, for
// which GetProperty equals a local lookup. Trees built by other means may
// leave properties unset.
func GetProperty(t *styledtree.Tree, sn *styledtree.StyNode, key style.Key) style.Value {
	v, ok := GetLocalProperty(sn.Styles(), key)
	if ok && !v.IsInherit() {
		return v
	}
	if (ok && v.IsInherit()) || style.IsInherited(key) {
		tracer().P("key", key.String()).Debugf("styling: cascading for key %s", key)
		return GetCascadedProperty(t, t.Node(t.Parent(sn.ID())), key)
	}
	return style.Initial(key)
}

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key style.Key) (style.Value, bool) {
	return pmap.Get(key)
}
