// Package render draws comparison jobs into PDF documents and ROOT files.
package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style holds the cosmetic settings of a document.
type Style struct {
	Width, Height vg.Length
	FontSize      vg.Length
	LineWidth     vg.Length
	Colors        []color.Color
	Shapes        []draw.GlyphDrawer
	PaletteSize   int
}

// DefaultStyle returns a landscape page with one colour and glyph per input.
func DefaultStyle() Style {
	return Style{
		Width:     8 * vg.Inch,
		Height:    6 * vg.Inch,
		FontSize:  vg.Points(14),
		LineWidth: vg.Points(1.5),
		Colors: []color.Color{
			color.RGBA{A: 255},
			color.RGBA{R: 255, A: 255},
			color.RGBA{B: 255, A: 255},
			color.RGBA{G: 153, A: 255},
			color.RGBA{R: 153, B: 153, A: 255},
			color.RGBA{R: 204, G: 102, A: 255},
			color.RGBA{R: 204, B: 102, A: 255},
			color.RGBA{G: 153, B: 102, A: 255},
			color.RGBA{G: 153, B: 153, A: 255},
			color.RGBA{G: 102, B: 102, A: 255},
			color.RGBA{G: 127, B: 255, A: 255},
			color.RGBA{R: 51, G: 51, B: 51, A: 255},
			color.RGBA{R: 255, G: 102, A: 255},
			color.RGBA{G: 102, A: 255},
		},
		Shapes: []draw.GlyphDrawer{
			draw.CircleGlyph{},
			draw.BoxGlyph{},
			draw.TriangleGlyph{},
			draw.PyramidGlyph{},
			draw.CrossGlyph{},
			draw.PlusGlyph{},
			draw.RingGlyph{},
			draw.SquareGlyph{},
		},
		PaletteSize: 255,
	}
}

func (s Style) color(i int) color.Color {
	if len(s.Colors) == 0 {
		return color.Black
	}
	return s.Colors[i%len(s.Colors)]
}

func (s Style) shape(i int) draw.GlyphDrawer {
	if len(s.Shapes) == 0 {
		return draw.CircleGlyph{}
	}
	return s.Shapes[i%len(s.Shapes)]
}

func (s Style) text(size vg.Length) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		Handler: plot.DefaultTextHandler,
	}
}
