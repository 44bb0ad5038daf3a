package cssom_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/domrender/dom/style/cssom"
	"github.com/npillmayer/domrender/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domrender/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCSS(t *testing.T, source string) cssom.StyleSheet {
	t.Helper()
	sheet, err := douceuradapter.Parse(source)
	require.NoError(t, err)
	return sheet
}

func TestParseSelectorGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.cssom")
	defer teardown()
	//
	sels, err := cssom.ParseSelectorGroup("P.A, .b-c, #x.y.z, *.w")
	require.NoError(t, err)
	require.Len(t, sels, 4)
	assert.Equal(t, cssom.Selector{Tag: "p", Classes: []string{"A"}}, sels[0])
	assert.Equal(t, cssom.Selector{Classes: []string{"b-c"}}, sels[1])
	assert.Equal(t, cssom.Selector{ID: "x", Classes: []string{"y", "z"}}, sels[2])
	assert.Equal(t, cssom.Selector{Classes: []string{"w"}}, sels[3])
	assert.Equal(t, cssom.Specificity{1, 2, 0}, sels[2].Specificity())
	//
	sels, err = cssom.ParseSelectorGroup("div p, a[href], li:hover, .ok")
	require.NoError(t, err)
	assert.Equal(t, []cssom.Selector{{Classes: []string{"ok"}}}, sels)
	//
	_, err = cssom.ParseSelectorGroup("div > p")
	assert.True(t, errors.Is(err, cssom.ErrUnsupportedSelector), "have %v", err)
	_, err = cssom.ParseSelectorGroup("*")
	assert.True(t, errors.Is(err, cssom.ErrUnsupportedSelector), "have %v", err)
	_, err = cssom.ParseSelectorGroup("p,,")
	assert.True(t, errors.Is(err, cssom.ErrMalformedSelector), "have %v", err)
	_, err = cssom.ParseSelectorGroup("#")
	assert.True(t, errors.Is(err, cssom.ErrMalformedSelector), "have %v", err)
}

func TestSpecificityOrder(t *testing.T) {
	id := cssom.Specificity{1, 0, 0}
	class := cssom.Specificity{0, 1, 0}
	tag := cssom.Specificity{0, 0, 1}
	assert.True(t, tag.Less(class))
	assert.True(t, class.Less(id))
	assert.True(t, cssom.Specificity{0, 2, 1}.Less(id))
	assert.False(t, id.Less(id))
}

func TestSelectorMatches(t *testing.T) {
	n := dom.Element("p", dom.Attrs{"id": "x", "class": "a b"})
	for _, tc := range []struct {
		sel  cssom.Selector
		want bool
	}{
		{cssom.Selector{Tag: "p"}, true},
		{cssom.Selector{Tag: "div"}, false},
		{cssom.Selector{ID: "x"}, true},
		{cssom.Selector{Tag: "p", ID: "y"}, false},
		{cssom.Selector{Classes: []string{"b", "a"}}, true},
		{cssom.Selector{Classes: []string{"a", "c"}}, false},
	} {
		assert.Equal(t, tc.want, tc.sel.Matches(n), "selector %s", tc.sel)
	}
	assert.False(t, cssom.Selector{Tag: "p"}.Matches(dom.Text("p")))
}

func TestCompileSkipsDefects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.cssom")
	defer teardown()
	//
	sheet := parseCSS(t, `
		p ~ q { color: red }
		p { width: -5px; color: red; float: left; padding: 1px 2px; margin: 1px 2px 3px 4px 5px }
	`)
	rules := cssom.Compile(sheet, cssom.Author)
	require.Len(t, rules, 1)
	assert.Equal(t, 1, rules[0].Order)
	assert.Equal(t, []cssom.Declaration{
		{Key: style.TextColor, Value: style.RGB(255, 0, 0)},
		{Key: style.PaddingTop, Value: style.Px(1)},
		{Key: style.PaddingRight, Value: style.Px(2)},
		{Key: style.PaddingBottom, Value: style.Px(1)},
		{Key: style.PaddingLeft, Value: style.Px(2)},
	}, rules[0].Declarations)
	assert.Nil(t, cssom.Compile(nil, cssom.Author))
}

func styleDoc(t *testing.T, root *dom.Node, css string) *styledtree.Tree {
	t.Helper()
	doc := dom.NewDocument(root)
	return cssom.Style(doc, parseCSS(t, css), nil)
}

func colorOf(t *testing.T, st *styledtree.Tree, id dom.NodeID) style.Color {
	t.Helper()
	c, ok := st.Node(styledtree.NodeID(id)).Value(style.TextColor).Color()
	require.True(t, ok)
	return c
}

func TestCascadeSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.cssom")
	defer teardown()
	//
	p := dom.Element("p", dom.Attrs{"id": "x", "class": "a"})
	st := styleDoc(t, p, `p {color: red} .a {color: blue} #x {color: green}`)
	assert.Equal(t, style.Color{G: 128}, colorOf(t, st, 0))
	// source order must not matter
	st = styleDoc(t, dom.Element("p", dom.Attrs{"id": "x", "class": "a"}),
		`#x {color: green} .a {color: blue} p {color: red}`)
	assert.Equal(t, style.Color{G: 128}, colorOf(t, st, 0))
	// equal specificity: later rule wins
	st = styleDoc(t, dom.Element("p", dom.Attrs{"class": "a b"}),
		`.a {color: blue} .b {color: red}`)
	assert.Equal(t, style.Color{R: 255}, colorOf(t, st, 0))
	// a rule counts with its most specific matching selector
	st = styleDoc(t, dom.Element("p", dom.Attrs{"class": "a"}),
		`p, .a {color: blue} p {color: red}`)
	assert.Equal(t, style.Color{B: 255}, colorOf(t, st, 0))
}

func TestImportantAndOrigin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.cssom")
	defer teardown()
	//
	doc := dom.NewDocument(dom.Element("p", dom.Attrs{"id": "x"}))
	author := parseCSS(t, `p { color: red !important; display: inline } #x { color: blue }`)
	ua := parseCSS(t, `#x { display: block; width: 10px }`)
	st := cssom.Style(doc, author, ua)
	sn := st.Root
	assert.Equal(t, style.RGB(255, 0, 0), sn.Value(style.TextColor))
	assert.True(t, sn.Value(style.Display).Is("inline"), "author rules must beat user-agent rules")
	assert.Equal(t, style.Px(10), sn.Value(style.Width))
}

func TestImportantWithinRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.cssom")
	defer teardown()
	//
	st := styleDoc(t, dom.Element("p", nil), `p { color: red !important; color: blue }`)
	assert.Equal(t, style.Color{R: 255}, colorOf(t, st, 0))
	st = styleDoc(t, dom.Element("p", nil), `p { color: red !important; color: blue !important }`)
	assert.Equal(t, style.Color{B: 255}, colorOf(t, st, 0))
	st = styleDoc(t, dom.Element("p", nil), `p { color: red; color: blue }`)
	assert.Equal(t, style.Color{B: 255}, colorOf(t, st, 0))
}

func TestInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.cssom")
	defer teardown()
	//
	root := dom.Element("div", nil,
		dom.Element("p", nil, dom.Text("hello")),
		dom.Element("span", dom.Attrs{"class": "i"}),
		dom.Element("em", dom.Attrs{"class": "j"}),
	)
	st := styleDoc(t, root, `
		div { color: red; width: 100px; visibility: hidden }
		.i { width: inherit; color: initial }
		.j { visibility: initial }
	`)
	p := st.Node(1)
	assert.Equal(t, style.RGB(255, 0, 0), p.Value(style.TextColor), "color must be inherited")
	assert.True(t, p.Value(style.Width).IsAuto(), "width must not be inherited")
	assert.True(t, p.Value(style.Visibility).Is("hidden"))
	text := st.Node(2)
	assert.Equal(t, style.RGB(255, 0, 0), text.Value(style.TextColor), "text nodes inherit")
	span := st.Node(3)
	assert.Equal(t, style.Px(100), span.Value(style.Width))
	assert.Equal(t, style.RGB(0, 0, 0), span.Value(style.TextColor))
	em := st.Node(4)
	assert.True(t, em.Value(style.Visibility).Is("visible"))
	//
	st = styleDoc(t, dom.Element("p", nil), `p { color: inherit; margin-left: inherit }`)
	assert.Equal(t, style.Initial(style.TextColor), st.Root.Value(style.TextColor),
		"root inherits initial values")
	assert.Equal(t, style.Px(0), st.Root.Value(style.MarginLeft))
}

func TestStyleIsTotal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.cssom")
	defer teardown()
	//
	root := dom.Element("html", nil,
		dom.Element("body", nil,
			dom.Element("div", nil, dom.Text("a"), dom.Element("b", nil)),
			dom.Text("b"),
		),
	)
	doc := dom.NewDocument(root)
	st := cssom.Style(doc, nil, nil)
	require.Equal(t, doc.Len(), st.Len())
	st.Walk(func(sn *styledtree.StyNode, depth int) bool {
		id := dom.NodeID(sn.ID())
		assert.Equal(t, id, sn.DOMNode())
		assert.Equal(t, len(doc.Children(id)), sn.ChildCount())
		assert.Equal(t, int(style.NumKeys), sn.Styles().Size(), "incomplete styles for %v", sn)
		return true
	})
	assert.True(t, st.Root.Value(style.Display).Is("inline"))
}

func TestStyleIsDeterministic(t *testing.T) {
	root := dom.Element("div", dom.Attrs{"class": "a"}, dom.Element("p", nil), dom.Element("p", nil))
	doc := dom.NewDocument(root)
	sheet := parseCSS(t, `.a { color: blue } p { margin: 3px } div p { color: red }`)
	st1 := cssom.Style(doc, sheet, nil)
	st2 := cssom.Style(doc, sheet, nil)
	assert.True(t, st1.Equal(st2))
	assert.NotSame(t, st1.Root, st2.Root)
}
