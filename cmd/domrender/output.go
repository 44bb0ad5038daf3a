package main

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/npillmayer/domrender/displaylist"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rectJSON is the JSON form of a solid rectangle command.
type rectJSON struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
}

func writeDisplayList(w io.Writer, list displaylist.List, format string) error {
	if format == "text" {
		_, err := io.WriteString(w, list.String())
		return err
	}
	cmds := make([]rectJSON, 0, len(list))
	for _, cmd := range list {
		switch c := cmd.(type) {
		case displaylist.SolidRectangle:
			cmds = append(cmds, rectJSON{
				Kind:   "solid-rectangle",
				X:      c.Rect.X,
				Y:      c.Rect.Y,
				Width:  c.Rect.Width,
				Height: c.Rect.Height,
				Color:  c.Color.Hex(),
			})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(cmds), "cannot encode display list")
}
