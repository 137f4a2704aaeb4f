package render

import (
	"fmt"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/decibelcooper/histcmp"
)

const colorBarWidth = 70

func drawTitlePage(dc draw.Canvas, t histcmp.Title, sty Style) {
	folder := t.Directory
	if folder == "" {
		folder = "/"
	}

	ts := sty.text(sty.FontSize)
	x := dc.Min.X + 0.1*(dc.Max.X-dc.Min.X)
	y := dc.Max.Y - 0.1*(dc.Max.Y-dc.Min.Y)
	dc.FillText(ts, vg.Point{X: x, Y: y}, "Comparing folder "+folder+" of files:")

	ts = sty.text(0.8 * sty.FontSize)
	for i, input := range t.Inputs {
		y -= 1.6 * ts.Font.Size
		line := input
		if i < len(t.Labels) {
			line += " (" + t.Labels[i] + ")"
		}
		dc.FillText(ts, vg.Point{X: x, Y: y}, line)
	}
}

func drawEndPage(dc draw.Canvas, sty Style) {
	ts := sty.text(sty.FontSize)
	ts.XAlign = text.XCenter
	ts.YAlign = text.YCenter
	dc.FillText(ts, dc.Center(), "The end!")
}

func drawJob(dc draw.Canvas, job histcmp.Job, sty Style) error {
	switch job := job.(type) {
	case *histcmp.OverlayJob:
		drawOverlay(dc, job, sty)
	case *histcmp.GridJob:
		drawGrid(dc, job, sty)
	case *histcmp.GraphJob:
		drawGraphs(dc, job, sty)
	case *histcmp.MultiGraphJob:
		drawMultiGraph(dc, job, sty)
	default:
		return errors.Errorf("render: unsupported job %T", job)
	}
	return nil
}

func newPlot(title string) *hplot.Plot {
	p := hplot.New()
	p.Title.Text = title
	p.Title.Padding = 2 * vg.Millimeter
	p.X.Tick.Marker = histcmp.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = histcmp.PreciseTicks{NSuggestedTicks: 5}
	p.Legend.Top = true
	p.Legend.Padding = 2 * vg.Millimeter
	return p
}

func legendLabel(labels []string, scales []float64, i int) string {
	label := labels[i]
	if i < len(scales) && scales[i] != 1 {
		label += fmt.Sprintf(" (x%.3g)", scales[i])
	}
	return label
}

func drawOverlay(dc draw.Canvas, job *histcmp.OverlayJob, sty Style) {
	p := newPlot(job.Title())
	for i, h := range job.Hists {
		hh := hplot.NewH1D(h)
		hh.FillColor = nil
		hh.LineStyle.Color = sty.color(i)
		hh.LineStyle.Width = sty.LineWidth
		hh.Infos.Style = hplot.HInfoNone

		p.Add(hh)
		p.Legend.Add(legendLabel(job.Labels, job.Scales, i), hh)
	}
	if job.Ratio {
		p.Y.Min = job.Range.Min
		p.Y.Max = job.Range.Max
	}
	p.Draw(dc)
}

func header(dc draw.Canvas, title string, sty Style) draw.Canvas {
	ts := sty.text(sty.FontSize)
	ts.XAlign = text.XCenter
	ts.YAlign = text.YTop
	dc.FillText(ts, vg.Point{X: dc.Center().X, Y: dc.Max.Y}, title)
	return draw.Crop(dc, 0, 0, 0, -2*sty.FontSize)
}

func newTiles(grid histcmp.Grid) *hplot.TiledPlot {
	return hplot.NewTiledPlot(draw.Tiles{
		Cols: grid.Cols,
		Rows: grid.Rows,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	})
}

func drawGrid(dc draw.Canvas, job *histcmp.GridJob, sty Style) {
	body := header(dc, job.Title(), sty)

	cmap := moreland.ExtendedBlackBody()
	cmap.SetMin(0)
	cmap.SetMax(1)
	if job.Ratio {
		cmap.SetMin(job.Range.Min)
		cmap.SetMax(job.Range.Max)
		width := body.Max.X - body.Min.X
		bar := draw.Crop(body, width-colorBarWidth, 0, 0, 0)
		body = draw.Crop(body, 0, -colorBarWidth, 0, 0)
		drawColorBar(bar, cmap)
	}
	pal := cmap.Palette(sty.PaletteSize)

	tp := newTiles(job.Grid)
	for i := range tp.Plots {
		if i >= len(job.Hists) {
			tp.Plots[i] = nil
			continue
		}
		p := tp.Plots[i]
		p.Title.Text = legendLabel(job.Labels, job.Scales, i)
		p.X.Tick.Marker = histcmp.PreciseTicks{NSuggestedTicks: 4}
		p.Y.Tick.Marker = histcmp.PreciseTicks{NSuggestedTicks: 4}
		p.Add(heatMap(job.Hists[i], pal, job.Ratio, job.Range))
	}
	tp.Draw(body)
}

func heatMap(h *hbook.H2D, pal palette.Palette, ratio bool, r histcmp.Range) *hplot.H2D {
	hm := hplot.NewH2D(h, pal)
	if ratio {
		// clamp out-of-window ratios to the ends of the scale
		colors := pal.Colors()
		hm.HeatMap.Min = r.Min
		hm.HeatMap.Max = r.Max
		hm.HeatMap.Underflow = colors[0]
		hm.HeatMap.Overflow = colors[len(colors)-1]
	}
	if hm.HeatMap.Max <= hm.HeatMap.Min {
		hm.HeatMap.Max = hm.HeatMap.Min + 1
	}
	return hm
}

func drawColorBar(dc draw.Canvas, cmap palette.ColorMap) {
	p := hplot.New()
	bar := &plotter.ColorBar{ColorMap: cmap}
	bar.Vertical = true
	p.Add(bar)
	p.HideX()
	p.Y.Padding = 0
	p.Y.Tick.Marker = histcmp.PreciseTicks{NSuggestedTicks: 5}
	p.Draw(dc)
}

func addGraphs(p *hplot.Plot, graphs []*hbook.S2D, names func(int) string, sty Style) {
	for i, g := range graphs {
		s := hplot.NewS2D(g, hplot.WithYErrBars(true))
		s.GlyphStyle.Color = sty.color(i)
		s.GlyphStyle.Shape = sty.shape(i)
		s.GlyphStyle.Radius = vg.Points(2.5)
		if s.YErrs != nil {
			s.YErrs.LineStyle.Color = sty.color(i)
		}
		p.Add(s)
		if names != nil {
			p.Legend.Add(names(i), s)
		}
	}
}

func drawGraphs(dc draw.Canvas, job *histcmp.GraphJob, sty Style) {
	p := newPlot(job.Title())
	addGraphs(p, job.Graphs, func(i int) string { return job.Labels[i] }, sty)
	if job.Ratio {
		p.Y.Min = job.Range.Min
		p.Y.Max = job.Range.Max
	}
	p.Draw(dc)
}

func drawMultiGraph(dc draw.Canvas, job *histcmp.MultiGraphJob, sty Style) {
	body := header(dc, job.Title(), sty)

	tp := newTiles(job.Grid)
	for i := range tp.Plots {
		if i >= len(job.Graphs) {
			tp.Plots[i] = nil
			continue
		}
		graphs := job.Graphs[i]
		p := tp.Plots[i]
		p.Title.Text = job.Labels[i]
		p.X.Tick.Marker = histcmp.PreciseTicks{NSuggestedTicks: 4}
		p.Y.Tick.Marker = histcmp.PreciseTicks{NSuggestedTicks: 4}

		var names func(int) string
		if i == 0 {
			names = func(j int) string { return graphName(graphs[j], j) }
		}
		addGraphs(p, graphs, names, sty)
		if job.Ratio {
			p.Y.Min = job.Range.Min
			p.Y.Max = job.Range.Max
		}
	}
	tp.Draw(body)
}

func graphName(g *hbook.S2D, i int) string {
	ann := g.Annotation()
	for _, key := range []string{"title", "name"} {
		if v, ok := ann[key].(string); ok && v != "" {
			return v
		}
	}
	return fmt.Sprintf("graph %d", i)
}
