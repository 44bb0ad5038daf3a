package style

// initialValues holds the CSS initial value for every property. It is set up
// once and never modified.
var initialValues = [NumKeys]Value{
	Display:           Keyword("inline"),
	Visibility:        Keyword("visible"),
	Width:             Auto,
	Height:            Auto,
	MarginTop:         Px(0),
	MarginRight:       Px(0),
	MarginBottom:      Px(0),
	MarginLeft:        Px(0),
	PaddingTop:        Px(0),
	PaddingRight:      Px(0),
	PaddingBottom:     Px(0),
	PaddingLeft:       Px(0),
	BorderTopWidth:    Px(0),
	BorderRightWidth:  Px(0),
	BorderBottomWidth: Px(0),
	BorderLeftWidth:   Px(0),
	TextColor:         Value{kind: ColorValue, color: Black},
	BackgroundColor:   Transparent,
	FontSize:          Px(16),
	FontFamily:        Keyword("serif"),
}

// Initial returns the initial value of a property, as defined by CSS.
//
// Border widths are initially 0, as border styles are not modeled and CSS
// computes the width of a border with style `none` to zero.
func Initial(k Key) Value {
	if k >= NumKeys {
		panic("style: initial value requested for invalid key")
	}
	return initialValues[k]
}

// InitialValues returns a property map with every property set to its
// initial value.
func InitialValues() *PropertyMap {
	pmap := NewPropertyMap()
	for k := Key(0); k < NumKeys; k++ {
		pmap.Set(k, initialValues[k])
	}
	return pmap
}
