package histcmp

import (
	"github.com/pkg/errors"
)

// Object is a plottable entry discovered by Enumerate.
type Object struct {
	Path string
	Kind Kind
}

// Enumerate lists the plottable objects of c depth-first, in key order.
// Nested directories are entered while the current depth is below maxDepth,
// so a maxDepth of 0 only looks at c itself.
func Enumerate(c Container, maxDepth int) ([]Object, error) {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return enumerate(c, "", 0, maxDepth)
}

func enumerate(c Container, prefix string, depth, maxDepth int) ([]Object, error) {
	keys, err := c.Keys()
	if err != nil {
		return nil, errors.Wrapf(err, "could not list keys of %q", prefix)
	}

	var objs []Object
	for _, key := range keys {
		path := key.Name
		if prefix != "" {
			path = prefix + "/" + key.Name
		}

		if kind := KindOf(key.Class); kind.Plottable() {
			objs = append(objs, Object{Path: path, Kind: kind})
			continue
		}

		if !isDirClass(key.Class) || depth >= maxDepth {
			continue
		}

		sub, err := c.Dir(key.Name)
		if err != nil {
			return nil, err
		}
		subObjs, err := enumerate(sub, path, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		objs = append(objs, subObjs...)
	}
	return objs, nil
}
