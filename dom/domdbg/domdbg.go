/*
Package domdbg implements helpers to debug styled trees and layout trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/domrender/dom/style/css"
	"github.com/npillmayer/domrender/dom/styledtree"
	"github.com/npillmayer/domrender/frame"
	"github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []style.Group
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

var defaultGroups = []style.Group{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the styled tree, a Writer,
// and an optional list of style parameter groups. The diagram will include
// all styles belonging to one of the parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//
func ToGraphViz(t *styledtree.Tree, w io.Writer, styleGroups []style.Group) error {
	tmpl, err := template.New("styled").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("stynode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(styNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("styedge").Parse(styEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if t != nil && t.Root != nil {
		if err = nodes(t, t.Root, w, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a styled tree and a testing.T, it will
// create a Graphiviz image of the tree and write it to a file in the current
// folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(st *styledtree.Tree, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "styled.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing styled digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(st, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing styled tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.Node
	Name string
}

func nodeName(sn *styledtree.StyNode) string {
	return fmt.Sprintf("node%05d", sn.ID())
}

func nodes(t *styledtree.Tree, sn *styledtree.StyNode, w io.Writer, gparams *graphParamsType) error {
	if err := gparams.NodeTmpl.Execute(w, &node{t.DOM(sn), nodeName(sn)}); err != nil {
		return err
	}
	if err := styleGroups(sn, w, gparams); err != nil {
		return err
	}
	for _, ch := range sn.Children() {
		if err := nodes(t, ch, w, gparams); err != nil {
			return err
		}
		e := edge{N1: nodeName(sn), N2: nodeName(ch)}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

type propGroup struct {
	ID         string
	Name       style.Group
	Properties []style.KeyValue
}

func styleGroups(sn *styledtree.StyNode, w io.Writer, gparams *graphParamsType) error {
	prev := nodeName(sn)
	for i, g := range gparams.StyleGroups {
		kvs := sn.Styles().Group(g)
		if len(kvs) == 0 {
			continue
		}
		pg := propGroup{ID: fmt.Sprintf("pg%05d_%d", sn.ID(), i), Name: g, Properties: kvs}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		if err := gparams.PgedgeTmpl.Execute(w, edge{N1: prev, N2: pg.ID}); err != nil {
			return err
		}
		prev = pg.ID
	}
	return nil
}

type edge struct {
	N1, N2 string
}

func shortText(n *dom.Node) string {
	s := "\"\\\""
	if len(n.Data()) > 10 {
		s += n.Data()[:10] + "...\\\"\""
	} else {
		s += n.Data() + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Tree printing ----------------------------------------------------

// StyledTreeString returns an indented representation of a styled tree.
// Styles of the given property groups are printed with each node.
func StyledTreeString(t *styledtree.Tree, groups ...style.Group) string {
	p := treeprint.New()
	if t == nil || t.Root == nil {
		return p.String()
	}
	var add func(tp treeprint.Tree, sn *styledtree.StyNode)
	add = func(tp treeprint.Tree, sn *styledtree.StyNode) {
		label := t.DOM(sn).String()
		for _, g := range groups {
			for _, kv := range sn.Styles().Group(g) {
				label += fmt.Sprintf(" %s=%s", kv.Key, kv.Value)
			}
		}
		if sn.ChildCount() == 0 {
			tp.AddNode(label)
			return
		}
		branch := tp.AddBranch(label)
		for _, ch := range sn.Children() {
			add(branch, ch)
		}
	}
	add(p, t.Root)
	return p.String()
}

// BoxTreeString returns an indented representation of a layout tree,
// listing the display symbol, type, element and border box of every box.
// Anonymous boxes show the symbol for an unset display mode.
func BoxTreeString(t *frame.Tree) string {
	p := treeprint.New()
	if t == nil || t.Root == nil {
		return p.String()
	}
	var add func(tp treeprint.Tree, box *frame.Box)
	add = func(tp treeprint.Tree, box *frame.Box) {
		label := css.NoMode.Symbol() + " " + box.Type.String()
		if sn := t.StyledNode(box); sn != nil {
			label = css.Display(sn).Symbol() + " " + box.Type.String() + " " + t.Styles.DOM(sn).String()
		}
		label += " " + box.Dimensions.BorderBox().String()
		if len(box.Children) == 0 {
			tp.AddNode(label)
			return
		}
		branch := tp.AddBranch(label)
		for _, ch := range box.Children {
			add(branch, ch)
		}
	}
	add(p, t.Root)
	return p.String()
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const styNodeTmpl = `{{ if .N.IsElement }}
{{ .Name }}	[ label={{ printf "%q" .N.Tag }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const styEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [dir=none weight=1 style="dashed"] ;
`
