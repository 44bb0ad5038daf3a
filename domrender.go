package domrender

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"context"

	"github.com/npillmayer/domrender/displaylist"
	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/domrender/dom/htmladapter"
	"github.com/npillmayer/domrender/dom/style/cssom"
	"github.com/npillmayer/domrender/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domrender/dom/style/useragent"
	"github.com/npillmayer/domrender/dom/styledtree"
	"github.com/npillmayer/domrender/frame"
	"github.com/npillmayer/domrender/frame/layout"
	"golang.org/x/sync/errgroup"
)

// DefaultViewport is used by clients which do not specify a viewport.
var DefaultViewport = frame.Viewport{Width: 800, Height: 600}

// Result holds the output of all stages of a rendering pass.
type Result struct {
	Styles  *styledtree.Tree
	Layout  *frame.Tree
	Display displaylist.List
}

// Render runs the rendering pipeline for a DOM document. sheet is the author
// stylesheet and may be nil; the user-agent stylesheet is always applied.
//
// Render is total: defects in the stylesheet are skipped.
func Render(doc *dom.Document, sheet cssom.StyleSheet, vp frame.Viewport) Result {
	st := cssom.Style(doc, sheet, useragent.Default())
	boxes := layout.Layout(st, vp)
	return Result{
		Styles:  st,
		Layout:  boxes,
		Display: displaylist.Build(boxes),
	}
}

// RenderHTML parses an HTML document and renders it. The author stylesheet
// is made up of the document's <style> elements, followed by extraCSS.
// Stylesheets which fail to parse are skipped.
//
// An error is returned if the context is done or if the HTML cannot be parsed.
func RenderHTML(ctx context.Context, html string, extraCSS []string, vp frame.Viewport) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	doc, err := htmladapter.ParseString(html)
	if err != nil {
		return Result{}, err
	}
	sources := append(htmladapter.ExtractStyleElements(doc), extraCSS...)
	return Render(doc, parseSheets(sources), vp), nil
}

func parseSheets(sources []string) *douceuradapter.CSSStyles {
	sheets := make([]*douceuradapter.CSSStyles, 0, len(sources))
	for i, src := range sources {
		sheet, err := douceuradapter.Parse(src)
		if err != nil {
			tracer().Errorf("skipping stylesheet #%d: %v", i, err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	return douceuradapter.Merge(sheets...)
}

// Job is an HTML document to render, with extra stylesheets and a viewport.
type Job struct {
	HTML     string
	CSS      []string
	Viewport frame.Viewport
}

// RenderAll renders independent documents concurrently, at most limit at a
// time (limit <= 0 means no limit). Results are returned in the order of
// jobs. The first error cancels all outstanding jobs and is returned.
func RenderAll(ctx context.Context, jobs []Job, limit int) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		i, job := i, job // per-iteration copies; go.mod targets go 1.21
		g.Go(func() error {
			r, err := RenderHTML(ctx, job.HTML, job.CSS, job.Viewport)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	tracer().Infof("rendered %d documents", len(jobs))
	return results, nil
}
