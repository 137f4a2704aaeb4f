package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/decibelcooper/histcmp"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [flags] [input files...]",
		Short: "List the objects common to all input files",
		Long: `list prints the objects that would be compared, in page order, together
with their kind and the page layout used for them. No output is written.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.teardown()
			return a.list(cmd)
		},
	}
}

func (a *app) list(cmd *cobra.Command) (err error) {
	if err := a.cfg.validate(); err != nil {
		return err
	}

	files, err := histcmp.OpenFiles(a.cfg.Inputs, a.cfg.Directory)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, histcmp.CloseFiles(files)) }()

	set, ref, err := comparisonSet(files, a.cfg.Depth)
	if err != nil {
		return err
	}

	kinds := make(map[string]histcmp.Kind, len(ref))
	for _, obj := range ref {
		kinds[obj.Path] = obj.Kind
	}

	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("PATH", "KIND", "LAYOUT")
	for _, path := range set {
		kind := kinds[path]
		table.AddRow(path, kind, layout(kind))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, table)
	fmt.Fprintf(out, "%d objects common to %d files\n", len(set), len(files))
	return nil
}

func layout(kind histcmp.Kind) string {
	switch kind {
	case histcmp.Histogram1D, histcmp.Profile1D:
		return "overlay"
	case histcmp.Histogram2D, histcmp.Profile2D:
		return "grid"
	case histcmp.Graph:
		return "graph overlay"
	case histcmp.MultiGraph:
		return "multi-graph grid"
	}
	return "-"
}
