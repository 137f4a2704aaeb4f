package render

import (
	"go-hep.org/x/hep/hbook"

	"github.com/decibelcooper/histcmp"
)

func h1(ws ...float64) *hbook.H1D {
	h := hbook.NewH1D(len(ws), 0, float64(len(ws)))
	for i, w := range ws {
		h.Fill(float64(i)+0.5, w)
	}
	return h
}

func h2(w float64) *hbook.H2D {
	h := hbook.NewH2D(3, 0, 3, 2, 0, 2)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			h.Fill(float64(i)+0.5, float64(j)+0.5, w*float64(i+j+1))
		}
	}
	return h
}

func s2(ys ...float64) *hbook.S2D {
	pts := make([]hbook.Point2D, len(ys))
	for i, y := range ys {
		pts[i] = hbook.Point2D{X: float64(i), Y: y, ErrY: hbook.Range{Min: 0.1, Max: 0.2}}
	}
	return hbook.NewS2D(pts...)
}

var labels = []string{"ref", "new", "old"}

// sampleJobs covers every job type, plain and ratio.
func sampleJobs() []histcmp.Job {
	info := func(path string, kind histcmp.Kind, ratio bool) histcmp.JobInfo {
		info := histcmp.JobInfo{Path: path, Kind: kind, Labels: labels}
		if ratio {
			info.Ratio = true
			info.Range = histcmp.DefaultRatioRange
		}
		return info
	}
	grid := histcmp.GridFor(len(labels))

	return []histcmp.Job{
		&histcmp.OverlayJob{
			JobInfo: info("h1", histcmp.Histogram1D, false),
			Hists:   []*hbook.H1D{h1(1, 2, 3), h1(2, 2, 2), h1(0, 0, 0)},
			Scales:  []float64{1, 0.5, 1},
		},
		&histcmp.OverlayJob{
			JobInfo: info("h1", histcmp.Histogram1D, true),
			Hists:   []*hbook.H1D{h1(1, 1, 1), h1(2, 1, 0.5), h1(0, 0, 0)},
		},
		&histcmp.GridJob{
			JobInfo: info("dir/h2", histcmp.Histogram2D, false),
			Grid:    grid,
			Hists:   []*hbook.H2D{h2(1), h2(2), h2(0)},
			Scales:  []float64{1, 1, 1},
		},
		&histcmp.GridJob{
			JobInfo: info("dir/h2", histcmp.Histogram2D, true),
			Grid:    grid,
			Hists:   []*hbook.H2D{h2(1), h2(5), h2(0.1)},
		},
		&histcmp.GraphJob{
			JobInfo: info("g", histcmp.Graph, false),
			Graphs:  []*hbook.S2D{s2(1, 2, 3), s2(1.5, 2, 2.5), s2(3, 2, 1)},
		},
		&histcmp.MultiGraphJob{
			JobInfo: info("mg", histcmp.MultiGraph, false),
			Grid:    grid,
			Graphs: [][]*hbook.S2D{
				{s2(1, 2), s2(2, 1)},
				{s2(1, 3), s2(2, 2)},
				{s2(1, 1), s2(0, 1)},
			},
		},
	}
}
