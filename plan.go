package histcmp

import (
	"math"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/rootcnv"
	"go.uber.org/zap"
)

var (
	// ErrNoSources is returned when planning is attempted without inputs.
	ErrNoSources = errors.New("histcmp: no input containers")
	// ErrLabelCount is returned when labels and inputs do not pair up.
	ErrLabelCount = errors.New("histcmp: label count differs from input count")
	// ErrKindMismatch is returned when an object cannot be compared as the
	// kind of its reference.
	ErrKindMismatch = errors.New("histcmp: object kind mismatch")
)

// Grid is the tile layout of a multi-panel page.
type Grid struct {
	Cols, Rows int
}

// GridFor returns the near-square layout holding n panels.
func GridFor(n int) Grid {
	if n <= 0 {
		return Grid{}
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	return Grid{Cols: cols, Rows: (n + cols - 1) / cols}
}

// JobInfo describes what a Job compares.
type JobInfo struct {
	Path   string
	Kind   Kind
	Labels []string

	// Ratio jobs hold every input divided by the first one, to be shown
	// within Range.
	Ratio bool
	Range Range
}

// Info returns the job description.
func (info *JobInfo) Info() *JobInfo { return info }

// Title is the page title of the job.
func (info *JobInfo) Title() string {
	if info.Ratio && len(info.Labels) > 0 {
		return info.Path + ": ratio to " + info.Labels[0]
	}
	return info.Path
}

// Job is one comparison page: *OverlayJob, *GridJob, *GraphJob or
// *MultiGraphJob.
type Job interface {
	Info() *JobInfo
}

// OverlayJob draws 1-dim histograms on a shared axis.
type OverlayJob struct {
	JobInfo
	Hists  []*hbook.H1D
	Scales []float64
}

// GridJob draws one 2-dim histogram per panel.
type GridJob struct {
	JobInfo
	Grid   Grid
	Hists  []*hbook.H2D
	Scales []float64
}

// GraphJob draws graphs on a shared axis.
type GraphJob struct {
	JobInfo
	Graphs []*hbook.S2D
}

// MultiGraphJob draws the graphs of each input in its own panel.
type MultiGraphJob struct {
	JobInfo
	Grid   Grid
	Graphs [][]*hbook.S2D
}

// PlanConfig selects the optional parts of a comparison.
type PlanConfig struct {
	Rescale    bool
	Ratio      bool
	RatioRange Range
}

// Planner turns matched paths into comparison jobs.
type Planner struct {
	srcs   []Container
	labels []string
	cfg    PlanConfig
	log    *zap.Logger
}

// NewPlanner returns a planner over srcs, the first being the reference.
// labels must hold one entry per source.
func NewPlanner(srcs []Container, labels []string, cfg PlanConfig, log *zap.Logger) (*Planner, error) {
	if len(srcs) == 0 {
		return nil, ErrNoSources
	}
	if len(labels) != len(srcs) {
		return nil, errors.Wrapf(ErrLabelCount, "%d labels for %d inputs", len(labels), len(srcs))
	}
	if !cfg.RatioRange.Valid() {
		cfg.RatioRange = DefaultRatioRange
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{srcs: srcs, labels: labels, cfg: cfg, log: log}, nil
}

// Labels returns the label of each source.
func (p *Planner) Labels() []string { return p.labels }

// Plan fetches path from every source and returns the jobs comparing it:
// the comparison itself and, when enabled, its ratio. Objects that are not
// plottable yield no job.
func (p *Planner) Plan(path string) ([]Job, error) {
	objs := make([]root.Object, len(p.srcs))
	for i, src := range p.srcs {
		obj, err := src.Get(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not fetch %q from input %d", path, i)
		}
		objs[i] = obj
	}

	kind := KindOf(objs[0].Class())
	if !kind.Plottable() {
		p.log.Debug("skipping object", zap.String("path", path), zap.String("class", objs[0].Class()))
		return nil, nil
	}
	for i, obj := range objs[1:] {
		if family(KindOf(obj.Class())) != family(kind) {
			return nil, errors.Wrapf(ErrKindMismatch, "%q is a %s in input 0 and a %s in input %d",
				path, objs[0].Class(), obj.Class(), i+1,
			)
		}
	}

	info := JobInfo{Path: path, Kind: kind, Labels: p.labels}
	switch kind {
	case Histogram1D, Profile1D:
		return p.planOverlay(info, objs)
	case Histogram2D, Profile2D:
		return p.planGrid(info, objs)
	case Graph:
		return p.planGraph(info, objs)
	default:
		return p.planMultiGraph(info, objs)
	}
}

func (p *Planner) ratioInfo(info JobInfo) JobInfo {
	info.Ratio = true
	info.Range = p.cfg.RatioRange
	return info
}

func (p *Planner) skipRatio(path string, err error) {
	p.log.Warn("skipping ratio", zap.String("path", path), zap.Error(err))
}

func (p *Planner) planOverlay(info JobInfo, objs []root.Object) ([]Job, error) {
	hists := make([]*hbook.H1D, len(objs))
	for i, obj := range objs {
		h, err := hist1D(obj)
		if err != nil {
			return nil, errors.Wrapf(err, "%q in input %d", info.Path, i)
		}
		hists[i] = h
	}

	scales := make([]float64, len(hists))
	ref := Integral1D(hists[0])
	for i, h := range hists {
		scales[i] = 1
		if i == 0 || !p.cfg.Rescale {
			continue
		}
		scales[i] = ScaleFactor(ref, Integral1D(h))
		h.Scale(scales[i])
	}

	jobs := []Job{&OverlayJob{JobInfo: info, Hists: hists, Scales: scales}}
	if !p.cfg.Ratio {
		return jobs, nil
	}

	ratios := make([]*hbook.H1D, len(hists))
	for i, h := range hists {
		r, err := Divide1D(h, hists[0])
		if err != nil {
			p.skipRatio(info.Path, err)
			return jobs, nil
		}
		ratios[i] = r
	}
	return append(jobs, &OverlayJob{JobInfo: p.ratioInfo(info), Hists: ratios}), nil
}

func (p *Planner) planGrid(info JobInfo, objs []root.Object) ([]Job, error) {
	hists := make([]*hbook.H2D, len(objs))
	for i, obj := range objs {
		h, err := hist2D(obj)
		if err != nil {
			return nil, errors.Wrapf(err, "%q in input %d", info.Path, i)
		}
		hists[i] = h
	}

	scales := make([]float64, len(hists))
	ref := Integral2D(hists[0])
	for i, h := range hists {
		scales[i] = 1
		if i == 0 || !p.cfg.Rescale {
			continue
		}
		scales[i] = ScaleFactor(ref, Integral2D(h))
		Scale2D(h, scales[i])
	}

	grid := GridFor(len(hists))
	jobs := []Job{&GridJob{JobInfo: info, Grid: grid, Hists: hists, Scales: scales}}
	if !p.cfg.Ratio {
		return jobs, nil
	}

	ratios := make([]*hbook.H2D, len(hists))
	for i, h := range hists {
		r, err := Divide2D(h, hists[0])
		if err != nil {
			p.skipRatio(info.Path, err)
			return jobs, nil
		}
		ratios[i] = r
	}
	return append(jobs, &GridJob{JobInfo: p.ratioInfo(info), Grid: grid, Hists: ratios}), nil
}

func (p *Planner) planGraph(info JobInfo, objs []root.Object) ([]Job, error) {
	graphs := make([]*hbook.S2D, len(objs))
	for i, obj := range objs {
		g, ok := obj.(rhist.Graph)
		if !ok {
			return nil, errors.Wrapf(ErrKindMismatch, "%q: %s is not a graph", info.Path, obj.Class())
		}
		graphs[i] = rootcnv.S2D(g)
	}

	jobs := []Job{&GraphJob{JobInfo: info, Graphs: graphs}}
	if !p.cfg.Ratio {
		return jobs, nil
	}

	ratios, err := divideGraphs(graphs, graphs[0])
	if err != nil {
		p.skipRatio(info.Path, err)
		return jobs, nil
	}
	return append(jobs, &GraphJob{JobInfo: p.ratioInfo(info), Graphs: ratios}), nil
}

func (p *Planner) planMultiGraph(info JobInfo, objs []root.Object) ([]Job, error) {
	sets := make([][]*hbook.S2D, len(objs))
	for i, obj := range objs {
		mg, ok := obj.(rhist.MultiGraph)
		if !ok {
			return nil, errors.Wrapf(ErrKindMismatch, "%q: %s is not a multi-graph", info.Path, obj.Class())
		}
		for _, g := range mg.Graphs() {
			sets[i] = append(sets[i], rootcnv.S2D(g))
		}
	}

	grid := GridFor(len(sets))
	jobs := []Job{&MultiGraphJob{JobInfo: info, Grid: grid, Graphs: sets}}
	if !p.cfg.Ratio {
		return jobs, nil
	}

	ratios := make([][]*hbook.S2D, len(sets))
	for i, set := range sets {
		if len(set) != len(sets[0]) {
			p.skipRatio(info.Path, errors.Errorf("input %d holds %d graphs, reference holds %d", i, len(set), len(sets[0])))
			return jobs, nil
		}
		var err error
		ratios[i], err = divideGraphs(set, sets[0]...)
		if err != nil {
			p.skipRatio(info.Path, err)
			return jobs, nil
		}
	}
	return append(jobs, &MultiGraphJob{JobInfo: p.ratioInfo(info), Grid: grid, Graphs: ratios}), nil
}

// refs holds one reference shared by all graphs or one per graph.
func divideGraphs(graphs []*hbook.S2D, refs ...*hbook.S2D) ([]*hbook.S2D, error) {
	out := make([]*hbook.S2D, len(graphs))
	for i, g := range graphs {
		ref := refs[0]
		if len(refs) > 1 {
			ref = refs[i]
		}
		r, err := DivideS2D(g, ref)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func family(k Kind) Kind {
	switch k {
	case Profile1D:
		return Histogram1D
	case Profile2D:
		return Histogram2D
	}
	return k
}

// hist1D converts a 1-dim histogram, projecting profiles onto their means.
func hist1D(obj root.Object) (*hbook.H1D, error) {
	switch obj := obj.(type) {
	case *rhist.Profile1D:
		return ProjectProfile1D(obj)
	case rhist.H1:
		return rootcnv.H1D(obj), nil
	}
	return nil, errors.Wrapf(ErrKindMismatch, "%s is not a 1-dim histogram", obj.Class())
}

func hist2D(obj root.Object) (*hbook.H2D, error) {
	switch obj := obj.(type) {
	case *rhist.Profile2D:
		return ProjectProfile2D(obj)
	case rhist.H2:
		return rootcnv.H2D(obj), nil
	}
	return nil, errors.Wrapf(ErrKindMismatch, "%s is not a 2-dim histogram", obj.Class())
}
