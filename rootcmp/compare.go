package main

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/decibelcooper/histcmp"
	"github.com/decibelcooper/histcmp/render"
)

func (a *app) compare() (err error) {
	cfg := a.cfg
	if err := cfg.validate(); err != nil {
		return err
	}
	ratioRange, _ := cfg.ratioRange()
	if !cfg.PDF && !cfg.ROOT {
		a.log.Warn("both --pdf and --root are disabled, no output will be written")
	}

	files, err := histcmp.OpenFiles(cfg.Inputs, cfg.Directory)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, histcmp.CloseFiles(files)) }()

	set, _, err := comparisonSet(files, cfg.Depth)
	if err != nil {
		return err
	}
	a.log.Info("matched objects", zap.Int("files", len(files)), zap.Int("objects", len(set)))

	labels := histcmp.Labels(cfg.Inputs, cfg.Labels, a.log)
	planner, err := histcmp.NewPlanner(histcmp.Containers(files), labels, histcmp.PlanConfig{
		Rescale:    cfg.Rescale,
		Ratio:      cfg.Ratio,
		RatioRange: ratioRange,
	}, a.log)
	if err != nil {
		return err
	}

	var outputs []histcmp.Renderer
	base := cfg.outputBase()
	if cfg.PDF {
		outputs = append(outputs, render.NewPDF(a.fs, base+".pdf", render.DefaultStyle()))
	}
	if cfg.ROOT {
		archive, err := render.CreateArchive(base + ".root")
		if err != nil {
			return err
		}
		outputs = append(outputs, archive)
	}

	title := histcmp.Title{Directory: cfg.Directory, Inputs: cfg.Inputs, Labels: labels}
	sum, err := histcmp.Run(planner, title, set, render.Multi(outputs...), a.log)
	if err != nil {
		return err
	}
	a.log.Info("comparison done",
		zap.Int("objects", sum.Objects),
		zap.Int("pages", sum.Jobs),
		zap.Int("skipped", sum.Skipped),
	)
	return nil
}

// comparisonSet enumerates every file and returns the paths common to all
// of them along with the reference enumeration.
func comparisonSet(files []*histcmp.File, depth int) ([]string, []histcmp.Object, error) {
	enums := make([][]histcmp.Object, len(files))
	for i, f := range files {
		objs, err := histcmp.Enumerate(f, depth)
		if err != nil {
			return nil, nil, err
		}
		enums[i] = objs
	}
	var ref []histcmp.Object
	if len(enums) > 0 {
		ref = enums[0]
	}
	return histcmp.Match(enums...), ref, nil
}
