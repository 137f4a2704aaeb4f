package histcmp

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/hbook"
)

var (
	// ErrBinning is returned when two histograms do not share their binning.
	ErrBinning = errors.New("histcmp: incompatible binning")
	// ErrPoints is returned when two graphs differ in their number of points.
	ErrPoints = errors.New("histcmp: different number of points")
)

// Range is a closed display window.
type Range struct {
	Min, Max float64
}

// DefaultRatioRange is the window ratio pages are drawn in.
var DefaultRatioRange = Range{Min: 0, Max: 4}

// Valid reports whether the window is non-empty.
func (r Range) Valid() bool {
	return r.Max > r.Min
}

// Integral1D is the width-weighted integral of h over its in-range bins.
func Integral1D(h *hbook.H1D) float64 {
	var sum float64
	for _, bin := range h.Binning.Bins {
		sum += bin.SumW() * bin.XWidth()
	}
	return sum
}

// Integral2D is the area-weighted integral of h over its in-range bins.
func Integral2D(h *hbook.H2D) float64 {
	var sum float64
	for _, bin := range h.Binning.Bins {
		sum += bin.SumW() * bin.XWidth() * bin.YWidth()
	}
	return sum
}

// ScaleFactor is the factor bringing an integral of cand to ref.
// An empty candidate is left alone.
func ScaleFactor(ref, cand float64) float64 {
	if cand == 0 {
		return 1
	}
	return ref / cand
}

// Scale2D multiplies the weights of h by f, like (*hbook.H1D).Scale does for
// 1-dim histograms.
func Scale2D(h *hbook.H2D, f float64) {
	for i := range h.Binning.Bins {
		scaleDist2D(&h.Binning.Bins[i].Dist, f)
	}
	for i := range h.Binning.Outflows {
		scaleDist2D(&h.Binning.Outflows[i], f)
	}
	scaleDist2D(&h.Binning.Dist, f)
}

func scaleDist2D(d *hbook.Dist2D, f float64) {
	for _, axis := range []*hbook.Dist1D{&d.X, &d.Y} {
		axis.Dist.SumW *= f
		axis.Dist.SumW2 *= f * f
		axis.Stats.SumWX *= f
		axis.Stats.SumWX2 *= f
	}
	d.Stats.SumWXY *= f
}

// Divide1D returns num/den bin by bin. Bins with an empty denominator are
// left empty in the result.
func Divide1D(num, den *hbook.H1D) (*hbook.H1D, error) {
	nbins, dbins := num.Binning.Bins, den.Binning.Bins
	if len(nbins) == 0 || len(nbins) != len(dbins) {
		return nil, errors.Wrapf(ErrBinning, "%d bins vs %d", len(nbins), len(dbins))
	}

	for i, bin := range nbins {
		if bin.XMin() != dbins[i].XMin() || bin.XMax() != dbins[i].XMax() {
			return nil, errors.Wrapf(ErrBinning, "bin %d", i)
		}
	}

	out := hbook.NewH1DFromEdges(edges1D(nbins))
	for i, bin := range nbins {
		d := dbins[i].SumW()
		if d == 0 {
			continue
		}
		out.Fill(bin.XMid(), bin.SumW()/d)
	}
	return out, nil
}

// Divide2D returns num/den bin by bin. Bins with an empty denominator are
// left empty in the result.
func Divide2D(num, den *hbook.H2D) (*hbook.H2D, error) {
	nbins, dbins := num.Binning.Bins, den.Binning.Bins
	if len(nbins) == 0 || len(nbins) != len(dbins) {
		return nil, errors.Wrapf(ErrBinning, "%d bins vs %d", len(nbins), len(dbins))
	}
	for i, bin := range nbins {
		d := dbins[i]
		if bin.XMin() != d.XMin() || bin.XMax() != d.XMax() ||
			bin.YMin() != d.YMin() || bin.YMax() != d.YMax() {
			return nil, errors.Wrapf(ErrBinning, "bin %d", i)
		}
	}

	xedges, yedges := edges2D(nbins)
	out := hbook.NewH2DFromEdges(xedges, yedges)
	for i, bin := range nbins {
		d := dbins[i].SumW()
		if d == 0 {
			continue
		}
		out.Fill(bin.XMid(), bin.YMid(), bin.SumW()/d)
	}
	return out, nil
}

func edges1D(bins []hbook.Bin1D) []float64 {
	edges := make([]float64, 0, len(bins)+1)
	for _, bin := range bins {
		edges = append(edges, bin.XMin())
	}
	return append(edges, bins[len(bins)-1].XMax())
}

func edges2D(bins []hbook.Bin2D) (xedges, yedges []float64) {
	var (
		xs = make(map[float64]bool)
		ys = make(map[float64]bool)
	)
	for _, bin := range bins {
		xs[bin.XMin()] = true
		xs[bin.XMax()] = true
		ys[bin.YMin()] = true
		ys[bin.YMax()] = true
	}
	return sortedKeys(xs), sortedKeys(ys)
}

func sortedKeys(set map[float64]bool) []float64 {
	vs := make([]float64, 0, len(set))
	for v := range set {
		vs = append(vs, v)
	}
	sort.Float64s(vs)
	return vs
}

// DivideS2D returns num/den point by point, propagating the y errors of both
// graphs in quadrature. Points with a zero reference are set to zero.
func DivideS2D(num, den *hbook.S2D) (*hbook.S2D, error) {
	if num.Len() != den.Len() {
		return nil, errors.Wrapf(ErrPoints, "%d points vs %d", num.Len(), den.Len())
	}

	pts := make([]hbook.Point2D, num.Len())
	for i := range pts {
		p, ref := num.Point(i), den.Point(i)
		pts[i] = hbook.Point2D{X: p.X, ErrX: p.ErrX}
		if ref.Y == 0 {
			continue
		}
		pts[i].Y = p.Y / ref.Y
		pts[i].ErrY.Min = ratioErr(p.ErrY.Min, ref.ErrY.Min, p.Y, ref.Y)
		pts[i].ErrY.Max = ratioErr(p.ErrY.Max, ref.ErrY.Max, p.Y, ref.Y)
	}
	return hbook.NewS2D(pts...), nil
}

func ratioErr(err, refErr, y, ref float64) float64 {
	return math.Hypot(err/ref, refErr*y/(ref*ref))
}
