package histcmp

import (
	"path"
	"strings"

	"go.uber.org/zap"
)

// DefaultLabel derives a display label from a file name: the directory
// prefix and a trailing ".root" are dropped.
func DefaultLabel(file string) string {
	return strings.TrimSuffix(path.Base(file), ".root")
}

// Labels returns exactly one label per input. Explicit labels are used in
// order; missing ones are derived with DefaultLabel and surplus ones are
// dropped, both with a warning.
func Labels(inputs, labels []string, log *zap.Logger) []string {
	if log == nil {
		log = zap.NewNop()
	}
	if len(labels) > 0 && len(labels) != len(inputs) {
		log.Warn("number of labels differs from number of input files",
			zap.Int("labels", len(labels)),
			zap.Int("inputs", len(inputs)),
		)
	}

	out := make([]string, len(inputs))
	for i, input := range inputs {
		if i < len(labels) && labels[i] != "" {
			out[i] = labels[i]
			continue
		}
		out[i] = DefaultLabel(input)
	}
	return out
}
