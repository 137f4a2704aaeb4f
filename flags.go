package histcmp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*RangeFlag)(nil)

// RangeFlag is a flag value parsed from "min,max".
type RangeFlag struct {
	Range Range
}

func (f *RangeFlag) Set(valueStr string) error {
	parts := strings.Split(valueStr, ",")
	if len(parts) != 2 {
		return errors.Errorf("invalid range %q: expected min,max", valueStr)
	}

	var bounds [2]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return errors.Wrapf(err, "invalid range %q", valueStr)
		}
		bounds[i] = value
	}

	r := Range{Min: bounds[0], Max: bounds[1]}
	if !r.Valid() {
		return errors.Errorf("invalid range %q: min must be below max", valueStr)
	}
	f.Range = r
	return nil
}

func (f *RangeFlag) String() string {
	return fmt.Sprintf("%g,%g", f.Range.Min, f.Range.Max)
}

func (f *RangeFlag) Type() string {
	return "range"
}
