package render

import (
	"go.uber.org/multierr"

	"github.com/decibelcooper/histcmp"
)

type multi []histcmp.Renderer

// Multi forwards every call to each of rs in order. End is forwarded to
// all of them even when one fails.
func Multi(rs ...histcmp.Renderer) histcmp.Renderer {
	return multi(rs)
}

func (m multi) Begin(title histcmp.Title) error {
	for _, r := range m {
		if err := r.Begin(title); err != nil {
			return err
		}
	}
	return nil
}

func (m multi) Render(job histcmp.Job) error {
	for _, r := range m {
		if err := r.Render(job); err != nil {
			return err
		}
	}
	return nil
}

func (m multi) End() error {
	var err error
	for _, r := range m {
		err = multierr.Append(err, r.End())
	}
	return err
}
