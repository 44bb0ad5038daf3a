package style

import (
	"fmt"
	"strings"
)

// PropertyMap holds style values for the closed set of property keys. It
// is used to hold the resolved style of a node. A zero PropertyMap is empty
// and ready to use.
type PropertyMap struct {
	set    [NumKeys]bool
	values [NumKeys]Value
}

// NewPropertyMap creates a new, empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

// Get returns the value for key k, if it is set.
func (pmap *PropertyMap) Get(k Key) (Value, bool) {
	if pmap == nil || k >= NumKeys || !pmap.set[k] {
		return Value{}, false
	}
	return pmap.values[k], true
}

// Value returns the value for key k. If k is not set, the initial value for
// k is returned.
func (pmap *PropertyMap) Value(k Key) Value {
	if v, ok := pmap.Get(k); ok {
		return v
	}
	return Initial(k)
}

// Set sets the value for key k, overwriting any previous value.
func (pmap *PropertyMap) Set(k Key, v Value) {
	if k >= NumKeys {
		tracer().Errorf("cannot set style property %v", k)
		return
	}
	pmap.set[k] = true
	pmap.values[k] = v
}

// IsSet returns true if there is a value for key k.
func (pmap *PropertyMap) IsSet(k Key) bool {
	return pmap != nil && k < NumKeys && pmap.set[k]
}

// Size returns the number of keys set.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	n := 0
	for _, s := range pmap.set {
		if s {
			n++
		}
	}
	return n
}

// Each calls f for every key set, in key order.
func (pmap *PropertyMap) Each(f func(Key, Value)) {
	if pmap == nil {
		return
	}
	for k := Key(0); k < NumKeys; k++ {
		if pmap.set[k] {
			f(k, pmap.values[k])
		}
	}
}

// Group returns the key-value pairs of a property group which are set.
func (pmap *PropertyMap) Group(g Group) []KeyValue {
	var kvs []KeyValue
	for _, k := range KeysOfGroup(g) {
		if v, ok := pmap.Get(k); ok {
			kvs = append(kvs, KeyValue{Key: k, Value: v.String()})
		}
	}
	return kvs
}

// Clone returns a copy of the property map.
func (pmap *PropertyMap) Clone() *PropertyMap {
	if pmap == nil {
		return NewPropertyMap()
	}
	c := *pmap
	return &c
}

// Equal returns true if both maps have the same keys set to the same values.
func (pmap *PropertyMap) Equal(other *PropertyMap) bool {
	if pmap == nil || other == nil {
		return pmap.Size() == other.Size()
	}
	return *pmap == *other
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	pmap.Each(func(k Key, v Value) {
		if !first {
			b.WriteString("; ")
		}
		first = false
		fmt.Fprintf(&b, "%s: %s", k, v)
	})
	b.WriteString("}")
	return b.String()
}
