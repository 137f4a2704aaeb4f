package histcmp

import (
	"strings"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"
	"go.uber.org/multierr"
)

// ErrNotDir is returned when a path expected to name a directory does not.
var ErrNotDir = errors.New("histcmp: not a directory")

// Key names one entry of a Container together with its ROOT class.
type Key struct {
	Name  string
	Class string
}

// Container is a read-only view of a hierarchical namespace of objects.
type Container interface {
	// Keys lists the entries directly inside the container, in listing order.
	Keys() ([]Key, error)
	// Dir opens the nested container stored under name.
	Dir(name string) (Container, error)
	// Get reads the object at the /-separated path relative to the container.
	Get(path string) (root.Object, error)
}

type dirContainer struct {
	dir riofs.Directory
}

// NewContainer wraps a groot directory.
func NewContainer(dir riofs.Directory) Container {
	return dirContainer{dir: dir}
}

func (c dirContainer) Keys() ([]Key, error) {
	var (
		keys []Key
		seen = make(map[string]bool)
	)
	// later cycles of a key share its name; keep the first one listed
	for _, k := range c.dir.Keys() {
		name := k.Name()
		if seen[name] {
			continue
		}
		seen[name] = true
		keys = append(keys, Key{Name: name, Class: k.ClassName()})
	}
	return keys, nil
}

func (c dirContainer) Dir(name string) (Container, error) {
	obj, err := c.dir.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read directory %q", name)
	}
	dir, ok := obj.(riofs.Directory)
	if !ok {
		return nil, errors.Wrapf(ErrNotDir, "%q is a %s", name, obj.Class())
	}
	return dirContainer{dir: dir}, nil
}

func (c dirContainer) Get(path string) (root.Object, error) {
	obj, err := riofs.Dir(c.dir).Get(strings.Trim(path, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %q", path)
	}
	return obj, nil
}

// File is an opened input file scoped to one of its directories.
type File struct {
	Container
	Name string

	f *riofs.File
}

// OpenFile opens a ROOT file read-only. A non-empty dir scopes the returned
// Container to that sub-directory.
func OpenFile(name, dir string) (*File, error) {
	f, err := groot.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", name)
	}

	var c Container = dirContainer{dir: f}
	if dir = strings.Trim(dir, "/"); dir != "" {
		obj, err := riofs.Dir(f).Get(dir)
		if err != nil {
			_ = f.Close()
			return nil, errors.Wrapf(err, "could not find directory %q in %q", dir, name)
		}
		sub, ok := obj.(riofs.Directory)
		if !ok {
			_ = f.Close()
			return nil, errors.Wrapf(ErrNotDir, "%q in %q", dir, name)
		}
		c = dirContainer{dir: sub}
	}

	return &File{Container: c, Name: name, f: f}, nil
}

// Close releases the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

// OpenFiles opens every named file scoped to dir. On failure the files
// opened so far are closed again.
func OpenFiles(names []string, dir string) ([]*File, error) {
	files := make([]*File, 0, len(names))
	for _, name := range names {
		f, err := OpenFile(name, dir)
		if err != nil {
			return nil, multierr.Append(err, CloseFiles(files))
		}
		files = append(files, f)
	}
	return files, nil
}

// CloseFiles closes all files and reports every close error.
func CloseFiles(files []*File) error {
	var err error
	for _, f := range files {
		err = multierr.Append(err, f.Close())
	}
	return err
}

// Containers returns the scoped container of each file.
func Containers(files []*File) []Container {
	cs := make([]Container, len(files))
	for i, f := range files {
		cs[i] = f.Container
	}
	return cs
}
