package main

import (
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/decibelcooper/histcmp"
)

type stopper interface{ Stop() }

type app struct {
	v            *viper.Viper
	fs           afero.Fs
	cfgFile      string
	startProfile func(mode string) (stopper, error)

	cfg  Config
	log  *zap.Logger
	prof stopper
}

func newApp() *app {
	return &app{
		v:            viper.New(),
		fs:           afero.NewOsFs(),
		startProfile: startProfile,
		log:          zap.NewNop(),
	}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rootcmp [flags] [input files...]",
		Short: "Compare histograms across ROOT files",
		Long: `rootcmp compares the histograms and graphs found under the same path in
two or more ROOT files. The first input is the reference: its listing order
fixes the page order and ratios are taken with respect to it.

Each compared object gets a page in <output>.pdf and is copied, rescaled,
to <output>.root.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.teardown()
			return a.compare()
		},
	}

	ratioRange := histcmp.RangeFlag{Range: histcmp.DefaultRatioRange}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./rootcmp.yaml or $HOME/.config/rootcmp/rootcmp.yaml)")
	flags.StringSliceP("input", "i", nil, "input ROOT files, the first one is the reference")
	flags.StringSliceP("labels", "l", nil, "labels for each input file (default: file name without .root)")
	flags.StringP("directory", "d", "", "directory to compare (default: file root)")
	flags.Int("depth", 10, "maximum depth of the directory search")
	flags.String("log-level", histcmp.LogLevelInfo, "log level: debug, info, warn, error or none")

	local := cmd.Flags()
	local.StringP("output", "o", "comp", "output path, .pdf and .root are appended")
	local.Bool("rescale", true, "rescale histograms to the integral of the reference")
	local.BoolP("ratio", "r", false, "add a ratio page after each comparison")
	local.Var(&ratioRange, "ratio-range", "display window of ratio pages as min,max")
	local.Bool("root", true, "write the compared objects to <output>.root")
	local.Bool("pdf", true, "write the comparison pages to <output>.pdf")
	local.String("profile", "", "write a cpu or mem profile to the working directory")
	_ = local.MarkHidden("profile")

	_ = a.v.BindPFlags(flags)
	_ = a.v.BindPFlags(local)

	cmd.AddCommand(newListCmd(a))
	return cmd
}

func (a *app) setup(args []string) error {
	cfg, err := loadConfig(a.v, a.cfgFile, args)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := histcmp.NewLogger(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	a.log = log

	if cfg.Profile != "" {
		prof, err := a.startProfile(cfg.Profile)
		if err != nil {
			return err
		}
		a.prof = prof
	}
	return nil
}

// teardown runs after every command, failed or not.
func (a *app) teardown() {
	if a.prof != nil {
		a.prof.Stop()
		a.prof = nil
	}
	_ = a.log.Sync()
}

func startProfile(mode string) (stopper, error) {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet), nil
	}
	return nil, errors.Errorf("unknown profile %q", mode)
}
