/*
Package raster paints display lists into images.

Painting is done by github.com/fogleman/gg. Commands are painted in list
order over a white canvas. Empty rectangles are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package raster

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/npillmayer/domrender/displaylist"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domrender.raster'.
func tracer() tracing.Trace {
	return tracing.Select("domrender.raster")
}

// Paint paints a display list onto a new canvas of the given size in pixels.
func Paint(list displaylist.List, width, height int) (image.Image, error) {
	dc, err := paint(list, width, height)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG paints a display list and writes the result as a PNG file.
func SavePNG(list displaylist.List, width, height int, path string) error {
	dc, err := paint(list, width, height)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func paint(list displaylist.List, width, height int) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	for _, cmd := range list {
		switch c := cmd.(type) {
		case displaylist.SolidRectangle:
			if c.Rect.Width <= 0 || c.Rect.Height <= 0 {
				continue
			}
			dc.SetColor(c.Color)
			dc.DrawRectangle(c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
			dc.Fill()
		default:
			return nil, fmt.Errorf("cannot paint display command %v", cmd)
		}
	}
	tracer().Debugf("painted %d commands onto %dx%d canvas", len(list), width, height)
	return dc, nil
}
