package render

import (
	"fmt"
	"path"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook"

	"github.com/decibelcooper/histcmp"
)

var _ histcmp.Renderer = (*Archive)(nil)

// Archive writes the compared objects to a ROOT file, keeping the directory
// layout of the inputs. Object i of path p is stored as "p_i", its ratio to
// the reference as "p_i_ratio".
type Archive struct {
	f   *riofs.File
	dir riofs.Directory
}

// CreateArchive creates (or truncates) the ROOT file at name.
func CreateArchive(name string) (*Archive, error) {
	f, err := groot.Create(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create %q", name)
	}
	return &Archive{f: f, dir: riofs.Dir(f)}, nil
}

func (a *Archive) Begin(histcmp.Title) error { return nil }

// ArchiveKey is the key under which input i of a job is stored.
func ArchiveKey(info *histcmp.JobInfo, i int) string {
	key := fmt.Sprintf("%s_%d", info.Path, i)
	if info.Ratio {
		key += "_ratio"
	}
	return key
}

func (a *Archive) Render(job histcmp.Job) error {
	info := job.Info()
	switch job := job.(type) {
	case *histcmp.OverlayJob:
		for i, h := range job.Hists {
			key := ArchiveKey(info, i)
			name(h.Annotation(), key, info.Labels[i])
			if err := a.put(key, rhist.NewH1DFrom(h)); err != nil {
				return err
			}
		}
	case *histcmp.GridJob:
		for i, h := range job.Hists {
			key := ArchiveKey(info, i)
			name(h.Annotation(), key, info.Labels[i])
			if err := a.put(key, rhist.NewH2DFrom(h)); err != nil {
				return err
			}
		}
	case *histcmp.GraphJob:
		for i, g := range job.Graphs {
			key := ArchiveKey(info, i)
			name(g.Annotation(), key, info.Labels[i])
			if err := a.put(key, rhist.NewGraphAsymmErrorsFrom(g)); err != nil {
				return err
			}
		}
	case *histcmp.MultiGraphJob:
		for i, graphs := range job.Graphs {
			for j, g := range graphs {
				key := fmt.Sprintf("%s_g%d", ArchiveKey(info, i), j)
				name(g.Annotation(), key, info.Labels[i])
				if err := a.put(key, rhist.NewGraphAsymmErrorsFrom(g)); err != nil {
					return err
				}
			}
		}
	default:
		return errors.Errorf("render: unsupported job %T", job)
	}
	return nil
}

func name(ann hbook.Annotation, key, title string) {
	ann["name"] = path.Base(key)
	ann["title"] = title
}

func (a *Archive) put(key string, obj root.Object) error {
	if err := a.dir.Put(key, obj); err != nil {
		return errors.Wrapf(err, "could not write %q", key)
	}
	return nil
}

func (a *Archive) End() error {
	return a.f.Close()
}
