package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/decibelcooper/histcmp"
)

// Config holds the settings of one run, merged from flags, ROOTCMP_*
// environment variables and an optional config file.
type Config struct {
	Inputs     []string `mapstructure:"input"`
	Labels     []string `mapstructure:"labels"`
	Output     string   `mapstructure:"output"`
	Directory  string   `mapstructure:"directory"`
	Depth      int      `mapstructure:"depth"`
	Rescale    bool     `mapstructure:"rescale"`
	Ratio      bool     `mapstructure:"ratio"`
	RatioRange string   `mapstructure:"ratio-range"`
	ROOT       bool     `mapstructure:"root"`
	PDF        bool     `mapstructure:"pdf"`
	LogLevel   string   `mapstructure:"log-level"`
	Profile    string   `mapstructure:"profile"`
}

func loadConfig(v *viper.Viper, cfgFile string, args []string) (Config, error) {
	v.SetEnvPrefix("ROOTCMP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("rootcmp")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rootcmp"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "could not read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "could not decode config")
	}
	cfg.Inputs = append(cfg.Inputs, args...)
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Inputs) < 2 {
		return errors.Errorf("at least two input files are needed, got %d", len(c.Inputs))
	}
	if c.Depth < 0 {
		return errors.Errorf("invalid depth %d", c.Depth)
	}
	if _, err := c.ratioRange(); err != nil {
		return err
	}
	return nil
}

func (c Config) ratioRange() (histcmp.Range, error) {
	if c.RatioRange == "" {
		return histcmp.DefaultRatioRange, nil
	}
	var f histcmp.RangeFlag
	if err := f.Set(c.RatioRange); err != nil {
		return histcmp.Range{}, err
	}
	return f.Range, nil
}

// outputBase is the output path without its extension; ".pdf" and ".root"
// are appended per output.
func (c Config) outputBase() string {
	base := c.Output
	for _, ext := range []string{".root", ".pdf"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
