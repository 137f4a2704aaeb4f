package histcmp

import (
	"strings"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook"
)

// memDir is an in-memory Container holding real groot objects.
type memDir struct {
	entries []memEntry
}

type memEntry struct {
	name string
	obj  root.Object
	dir  *memDir
}

func newMemDir() *memDir { return &memDir{} }

func (d *memDir) put(name string, obj root.Object) *memDir {
	d.entries = append(d.entries, memEntry{name: name, obj: obj})
	return d
}

func (d *memDir) mkdir(name string) *memDir {
	sub := newMemDir()
	d.entries = append(d.entries, memEntry{name: name, dir: sub})
	return sub
}

func (d *memDir) find(name string) (memEntry, bool) {
	for _, e := range d.entries {
		if e.name == name {
			return e, true
		}
	}
	return memEntry{}, false
}

func (d *memDir) Keys() ([]Key, error) {
	keys := make([]Key, len(d.entries))
	for i, e := range d.entries {
		class := "TDirectoryFile"
		if e.dir == nil {
			class = e.obj.Class()
		}
		keys[i] = Key{Name: e.name, Class: class}
	}
	return keys, nil
}

func (d *memDir) Dir(name string) (Container, error) {
	e, ok := d.find(name)
	if !ok || e.dir == nil {
		return nil, errors.Wrapf(ErrNotDir, "%q", name)
	}
	return e.dir, nil
}

func (d *memDir) Get(path string) (root.Object, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	dir := d
	for i, part := range parts {
		e, ok := dir.find(part)
		if !ok {
			return nil, errors.Errorf("no object %q", path)
		}
		if i == len(parts)-1 {
			if e.dir != nil {
				return nil, errors.Errorf("%q is a directory", path)
			}
			return e.obj, nil
		}
		if e.dir == nil {
			return nil, errors.Wrapf(ErrNotDir, "%q", part)
		}
		dir = e.dir
	}
	return nil, errors.Errorf("no object %q", path)
}

// junk stands for objects that are never compared, e.g. functions.
type junk struct{}

func (junk) Class() string { return "TF1" }

// newH1 returns a unit-width histogram on [0, len(ws)) with bin i holding ws[i].
func newH1(ws ...float64) *hbook.H1D {
	h := hbook.NewH1D(len(ws), 0, float64(len(ws)))
	for i, w := range ws {
		if w != 0 {
			h.Fill(float64(i)+0.5, w)
		}
	}
	return h
}

// newH2 returns a unit-area nx*ny histogram filled with w in every bin.
func newH2(nx, ny int, w float64) *hbook.H2D {
	h := hbook.NewH2D(nx, 0, float64(nx), ny, 0, float64(ny))
	if w == 0 {
		return h
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			h.Fill(float64(i)+0.5, float64(j)+0.5, w)
		}
	}
	return h
}

func newS2(ys ...float64) *hbook.S2D {
	pts := make([]hbook.Point2D, len(ys))
	for i, y := range ys {
		pts[i] = hbook.Point2D{X: float64(i), Y: y, ErrY: hbook.Range{Min: 0.1, Max: 0.1}}
	}
	return hbook.NewS2D(pts...)
}

func rootH1(ws ...float64) root.Object { return rhist.NewH1DFrom(newH1(ws...)) }

func rootH2(nx, ny int, w float64) root.Object { return rhist.NewH2DFrom(newH2(nx, ny, w)) }

func rootGraph(ys ...float64) root.Object { return rhist.NewGraphAsymmErrorsFrom(newS2(ys...)) }
