package histcmp

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeFlag(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{in: "0,4", want: Range{Min: 0, Max: 4}},
		{in: "0.5, 1.5", want: Range{Min: 0.5, Max: 1.5}},
		{in: "-1,1e1", want: Range{Min: -1, Max: 10}},
		{in: "4,0", wantErr: true},
		{in: "1,1", wantErr: true},
		{in: "1", wantErr: true},
		{in: "1,2,3", wantErr: true},
		{in: "a,b", wantErr: true},
		{in: "", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			f := RangeFlag{Range: DefaultRatioRange}
			err := f.Set(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, DefaultRatioRange, f.Range)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.Range)
		})
	}
}

func TestRangeFlagSet(t *testing.T) {
	f := &RangeFlag{Range: DefaultRatioRange}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(f, "ratio-range", "")

	flag := fs.Lookup("ratio-range")
	assert.Equal(t, "0,4", flag.DefValue)
	assert.Equal(t, "range", flag.Value.Type())

	require.NoError(t, fs.Parse([]string{"--ratio-range", "0.8,1.25"}))
	assert.Equal(t, Range{Min: 0.8, Max: 1.25}, f.Range)
	assert.Equal(t, "0.8,1.25", f.String())

	assert.Error(t, fs.Parse([]string{"--ratio-range", "x"}))
}
