package raster

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/domrender/displaylist"
	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/domrender/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = color.RGBA{255, 255, 255, 255}

func at(t *testing.T, list displaylist.List, x, y int) color.RGBA {
	t.Helper()
	img, err := Paint(list, 50, 50)
	require.NoError(t, err)
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestPaintInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.raster")
	defer teardown()
	//
	list := displaylist.List{
		displaylist.SolidRectangle{Rect: frame.Rect{X: 10, Y: 10, Width: 20, Height: 20}, Color: style.Color{R: 255}},
		displaylist.SolidRectangle{Rect: frame.Rect{X: 20, Y: 20, Width: 20, Height: 20}, Color: style.Color{B: 255}},
		displaylist.SolidRectangle{Rect: frame.Rect{X: 0, Y: 0, Width: 0, Height: 50}, Color: style.Black},
	}
	assert.Equal(t, white, at(t, list, 5, 5))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, at(t, list, 15, 15))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, at(t, list, 25, 25), "later commands paint over earlier ones")
	assert.Equal(t, white, at(t, list, 45, 5))
}

func TestInvalidCanvas(t *testing.T) {
	_, err := Paint(nil, 0, 10)
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	list := displaylist.List{
		displaylist.SolidRectangle{Rect: frame.Rect{Width: 4, Height: 4}, Color: style.Black},
	}
	require.NoError(t, SavePNG(list, 8, 8, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}
