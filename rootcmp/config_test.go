package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/histcmp"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("labels", []string{})
	v.SetDefault("depth", 10)
	v.SetDefault("ratio-range", "0,4")
	v.SetDefault("log-level", "info")
	return v
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("ROOTCMP_LABELS", "data,mc")
	t.Setenv("ROOTCMP_RATIO_RANGE", "0.5,2")
	t.Setenv("ROOTCMP_DEPTH", "3")

	cfg, err := loadConfig(newViper(), "", []string{"a.root", "b.root"})
	require.NoError(t, err)

	assert.Equal(t, []string{"data", "mc"}, cfg.Labels)
	assert.Equal(t, 3, cfg.Depth)
	assert.Equal(t, []string{"a.root", "b.root"}, cfg.Inputs)

	r, err := cfg.ratioRange()
	require.NoError(t, err)
	assert.Equal(t, histcmp.Range{Min: 0.5, Max: 2}, r)
}

func TestLoadConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "cmp.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(`
input: [ref.root, new.root]
labels: [ref, new]
depth: 2
ratio: true
output: plots/cmp
`), 0o644))

	cfg, err := loadConfig(newViper(), fname, []string{"extra.root"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ref.root", "new.root", "extra.root"}, cfg.Inputs)
	assert.Equal(t, []string{"ref", "new"}, cfg.Labels)
	assert.Equal(t, 2, cfg.Depth)
	assert.True(t, cfg.Ratio)
	assert.Equal(t, "plots/cmp", cfg.outputBase())
	assert.NoError(t, cfg.validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(newViper(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	ok := Config{Inputs: []string{"a", "b"}, Depth: 1}
	assert.NoError(t, ok.validate())

	for name, cfg := range map[string]Config{
		"one input":   {Inputs: []string{"a"}},
		"no input":    {},
		"depth":       {Inputs: []string{"a", "b"}, Depth: -1},
		"ratio range": {Inputs: []string{"a", "b"}, RatioRange: "1,0"},
	} {
		assert.Error(t, cfg.validate(), name)
	}
}

func TestOutputBase(t *testing.T) {
	for in, want := range map[string]string{
		"comp":           "comp",
		"comp.pdf":       "comp",
		"out/comp.root":  "out/comp",
		"comp.pdf.root":  "comp",
		"comp.rootfiles": "comp.rootfiles",
	} {
		assert.Equal(t, want, Config{Output: in}.outputBase(), in)
	}
}
