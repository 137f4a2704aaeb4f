package histcmp

import (
	"sort"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot/rbytes"
	"go-hep.org/x/hep/groot/rcont"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/rootcnv"
)

// ProjectProfile1D returns the mean y of every bin of p as a histogram.
// Bins without entries are left empty.
func ProjectProfile1D(p *rhist.Profile1D) (*hbook.H1D, error) {
	r, err := profileStream(p)
	if err != nil {
		return nil, err
	}

	// TProfile streams as TH1D (sum of w*y per bin) followed by fBinEntries.
	var sums rhist.H1D
	if err := sums.UnmarshalROOT(r); err != nil {
		return nil, errors.Wrap(err, "could not decode profile contents")
	}
	var entries rcont.ArrayD
	if err := entries.UnmarshalROOT(r); err != nil {
		return nil, errors.Wrap(err, "could not decode profile entries")
	}

	h := rootcnv.H1D(&sums)
	bins := h.Binning.Bins
	if len(bins) == 0 {
		return nil, errors.Wrap(ErrBinning, "profile without bins")
	}
	if len(entries.Data) < len(bins)+2 {
		return nil, errors.Errorf("profile holds %d bin entries for %d bins", len(entries.Data), len(bins))
	}

	out := hbook.NewH1DFromEdges(edges1D(bins))
	for i, bin := range bins {
		n := entries.Data[i+1]
		if n == 0 {
			continue
		}
		out.Fill(bin.XMid(), bin.SumW()/n)
	}
	copyAnnotation(out.Annotation(), h.Annotation())
	return out, nil
}

// ProjectProfile2D returns the mean z of every bin of p as a histogram.
// Bins without entries are left empty.
func ProjectProfile2D(p *rhist.Profile2D) (*hbook.H2D, error) {
	r, err := profileStream(p)
	if err != nil {
		return nil, err
	}

	var sums rhist.H2D
	if err := sums.UnmarshalROOT(r); err != nil {
		return nil, errors.Wrap(err, "could not decode profile contents")
	}
	var entries rcont.ArrayD
	if err := entries.UnmarshalROOT(r); err != nil {
		return nil, errors.Wrap(err, "could not decode profile entries")
	}

	h := rootcnv.H2D(&sums)
	bins := h.Binning.Bins
	if len(bins) == 0 {
		return nil, errors.Wrap(ErrBinning, "profile without bins")
	}
	xedges, yedges := edges2D(bins)
	nx, ny := len(xedges)-1, len(yedges)-1
	if len(entries.Data) < (nx+2)*(ny+2) {
		return nil, errors.Errorf("profile holds %d bin entries for %dx%d bins", len(entries.Data), nx, ny)
	}

	out := hbook.NewH2DFromEdges(xedges, yedges)
	for _, bin := range bins {
		ix := sort.SearchFloat64s(xedges, bin.XMin()) + 1
		iy := sort.SearchFloat64s(yedges, bin.YMin()) + 1
		n := entries.Data[ix+(nx+2)*iy]
		if n == 0 {
			continue
		}
		out.Fill(bin.XMid(), bin.YMid(), bin.SumW()/n)
	}
	copyAnnotation(out.Annotation(), h.Annotation())
	return out, nil
}

// profileStream returns a reader positioned on the histogram embedded in p.
func profileStream(p rbytes.Marshaler) (*rbytes.RBuffer, error) {
	w := rbytes.NewWBuffer(nil, nil, 0, nil)
	if _, err := p.MarshalROOT(w); err != nil {
		return nil, errors.Wrap(err, "could not encode profile")
	}

	r := rbytes.NewRBuffer(w.Bytes(), nil, 0, nil)
	_ = r.ReadU32() // byte count
	_ = r.ReadI16() // version
	if err := r.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read profile header")
	}
	return r, nil
}

func copyAnnotation(dst, src hbook.Annotation) {
	for k, v := range src {
		dst[k] = v
	}
}
