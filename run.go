package histcmp

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Title describes the compared inputs on the opening page of a document.
type Title struct {
	Directory string
	Inputs    []string
	Labels    []string
}

// Renderer receives the output of a comparison run. Begin is called before
// the first job and End after the last one.
type Renderer interface {
	Begin(title Title) error
	Render(job Job) error
	End() error
}

// Summary counts what a run did.
type Summary struct {
	Objects int // matched paths
	Jobs    int // jobs rendered
	Skipped int // matched paths without a job
}

// Run plans every path of set in order and hands the jobs to r.
// The first error stops the run.
func Run(p *Planner, title Title, set []string, r Renderer, log *zap.Logger) (Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var sum Summary
	if err := r.Begin(title); err != nil {
		return sum, errors.Wrap(err, "could not begin output")
	}

	for _, path := range set {
		sum.Objects++
		jobs, err := p.Plan(path)
		if err != nil {
			return sum, err
		}
		if len(jobs) == 0 {
			sum.Skipped++
			continue
		}
		for _, job := range jobs {
			log.Info("rendering", zap.String("page", job.Info().Title()))
			if err := r.Render(job); err != nil {
				return sum, errors.Wrapf(err, "could not render %q", job.Info().Title())
			}
			sum.Jobs++
		}
	}

	if err := r.End(); err != nil {
		return sum, errors.Wrap(err, "could not finish output")
	}
	return sum, nil
}
