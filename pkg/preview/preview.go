// Package preview draws noise tiles as images for eyeballing their spread.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	clr "github.com/lucasb-eyer/go-colorful"

	"github.com/vram-io/dtk/pkg/bluenoise"
)

// Options controls how a tile is drawn.
type Options struct {
	// Scale is the number of pixels per cell on each axis.
	Scale int
	// Background fills cells without a point.
	Background color.Color
	// Near and Far colour points whose nearest neighbour is at the minimum
	// spacing and at twice the spacing respectively. Distances in between
	// blend in Lab space.
	Near, Far color.Color
}

// DefaultOptions draws one pixel per cell, warm points close together and
// cool points far apart, on black.
func DefaultOptions() Options {
	return Options{
		Scale:      1,
		Background: color.Black,
		Near:       color.RGBA{0xff, 0x60, 0x30, 0xff},
		Far:        color.RGBA{0x30, 0x90, 0xff, 0xff},
	}
}

func mix(c1, c2 color.Color, t float64) color.Color {
	clr1, _ := clr.MakeColor(c1)
	clr2, _ := clr.MakeColor(c2)
	return clr1.BlendLab(clr2, t).Clamped()
}

// Render draws n into a new image of (size*Scale)^2 pixels.
func Render(n *bluenoise.Noise, opts Options) *image.RGBA {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	def := DefaultOptions()
	if opts.Background == nil {
		opts.Background = def.Background
	}
	if opts.Near == nil {
		opts.Near = def.Near
	}
	if opts.Far == nil {
		opts.Far = def.Far
	}

	dim := n.Size() * opts.Scale
	img := image.NewRGBA(image.Rect(0, 0, dim, dim))
	bg := color.RGBAModel.Convert(opts.Background)
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			img.Set(x, y, bg)
		}
	}

	points := n.Points()
	nearest := bluenoise.NearestDistances(n)
	spacing := float64(n.MinSpacing())
	for i, p := range points {
		t := 0.0
		if spacing > 0 {
			t = (nearest[i] - spacing) / spacing
		}
		c := color.RGBAModel.Convert(mix(opts.Near, opts.Far, math.Max(0, math.Min(1, t))))
		for dy := 0; dy < opts.Scale; dy++ {
			for dx := 0; dx < opts.Scale; dx++ {
				img.Set(p.X*opts.Scale+dx, p.Y*opts.Scale+dy, c)
			}
		}
	}
	return img
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
