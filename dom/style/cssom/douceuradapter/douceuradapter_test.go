package douceuradapter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.cssom")
	defer teardown()
	//
	sheet, err := Parse(`
		@media print { p { color: black } }
		p, .a { color: red; margin: 1px 2px; color: blue !important; }
		#x { Width: 10px }
	`)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2, "at-rule should have been dropped")
	assert.Equal(t, "p, .a", rules[0].Selector())
	assert.Equal(t, []string{"color", "margin", "color"}, rules[0].Properties())
	assert.Equal(t, "blue", rules[0].Value("color"))
	assert.True(t, rules[0].IsImportant("color"))
	assert.Equal(t, "1px 2px", rules[0].Value("margin"))
	assert.Equal(t, "10px", rules[1].Value("width"))
	assert.Equal(t, "", rules[1].Value("height"))
}

func TestMergeKeepsOrder(t *testing.T) {
	a, err := Parse("p { color: red }")
	require.NoError(t, err)
	b, err := Parse("div { color: blue } span { color: green }")
	require.NoError(t, err)
	m := Merge(a, nil, b)
	require.Len(t, m.Rules(), 3)
	assert.Equal(t, "span", m.Rules()[2].Selector())
	assert.False(t, m.Empty())
	assert.True(t, Merge().Empty())
	assert.Len(t, a.Rules(), 1, "merge must not modify its inputs")
}

func TestImportantDeclarationWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.cssom")
	defer teardown()
	//
	sheet, err := Parse(`p { color: red !important; color: blue; margin: 1px; margin: 2px }`)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "red", rules[0].Value("color"))
	assert.True(t, rules[0].IsImportant("color"))
	assert.Equal(t, "2px", rules[0].Value("margin"))
	assert.False(t, rules[0].IsImportant("margin"))
}

func TestMalformedRulesAreSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.cssom")
	defer teardown()
	//
	sheet, err := Parse(`p { color } div { background-color: red; height: 10px }
		@media print { p { color: black } }
		a { margin: "{" ; color: blue }`)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "div", rules[0].Selector())
	assert.Equal(t, "red", rules[0].Value("background-color"))
	assert.Equal(t, "a", rules[1].Selector())
	assert.Equal(t, "blue", rules[1].Value("color"))
	//
	_, err = Parse(`p { color }`)
	assert.Error(t, err, "nothing to recover")
}

func TestSplitBlocks(t *testing.T) {
	blocks := splitBlocks(`@import "x.css"; p { a: b } @media print { p { c: d } } q{}`)
	require.Len(t, blocks, 4)
	assert.Equal(t, `@import "x.css";`, blocks[0])
	assert.Equal(t, " @media print { p { c: d } }", blocks[2])
}
