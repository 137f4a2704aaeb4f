// Package histcmp finds the objects shared by several ROOT files and plans
// side-by-side and ratio comparisons of them.
package histcmp

import "strings"

// Kind classifies an object found in a Container.
type Kind int

const (
	Other Kind = iota
	Histogram1D
	Histogram2D
	Profile1D
	Profile2D
	Graph
	MultiGraph
)

var kindNames = [...]string{
	Other:       "other",
	Histogram1D: "hist1d",
	Histogram2D: "hist2d",
	Profile1D:   "profile1d",
	Profile2D:   "profile2d",
	Graph:       "graph",
	MultiGraph:  "multigraph",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Other]
	}
	return kindNames[k]
}

// Plottable reports whether objects of this kind take part in comparisons.
func (k Kind) Plottable() bool {
	return k != Other && int(k) < len(kindNames)
}

// KindOf maps a ROOT class name onto a Kind.
func KindOf(class string) Kind {
	switch {
	case strings.HasPrefix(class, "TProfile3D"), strings.HasPrefix(class, "TH2Poly"):
		return Other
	case strings.HasPrefix(class, "TProfile2D"):
		return Profile2D
	case strings.HasPrefix(class, "TProfile"):
		return Profile1D
	case strings.HasPrefix(class, "TH1"):
		return Histogram1D
	case strings.HasPrefix(class, "TH2"):
		return Histogram2D
	case class == "TMultiGraph":
		return MultiGraph
	case strings.HasPrefix(class, "TGraph2D"):
		return Other
	case strings.HasPrefix(class, "TGraph"):
		return Graph
	}
	return Other
}

func isDirClass(class string) bool {
	return class == "TDirectoryFile" || class == "TDirectory"
}
