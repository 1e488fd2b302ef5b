package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	input := new(Input)
	if err := createRootCommand(ctx, input, version).Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "mstbench",
		Short:        "Benchmark Kruskal's minimum spanning tree on generated sparse graphs.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")

	runCmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Run the sorting, union-find and combined phases for each scenario",
		Long: "Run the sorting, union-find and combined phases for each scenario.\n" +
			"Without --config a single scenario is built from the flags. With --config,\n" +
			"explicitly set flags override every selected scenario.",
		RunE: newRunCommand(ctx, input),
	}
	input.addRunFlags(runCmd.Flags())
	rootCmd.AddCommand(runCmd)

	return rootCmd
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		}

		scenarios, err := input.scenarios(cmd, args)
		if err != nil {
			return err
		}

		runID := uuid.NewString()
		log.WithFields(log.Fields{"run": runID, "scenarios": len(scenarios)}).Info("starting run")

		reports := make([]Report, 0, len(scenarios))
		for _, sc := range scenarios {
			rep, err := RunScenario(ctx, log.StandardLogger(), runID, sc)
			if err != nil {
				return err
			}
			reports = append(reports, rep)
		}

		return writeReports(cmd.OutOrStdout(), reports)
	}
}

// scenarios resolves the scenario list from --config and flag overrides.
func (i *Input) scenarios(cmd *cobra.Command, args []string) ([]Scenario, error) {
	fs := cmd.Flags()
	if i.configPath == "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("scenario names %v require --config: %w", args, ErrInvalidScenario)
		}
		sc := i.override(fs, DefaultScenario())
		if err := sc.Validate(); err != nil {
			return nil, err
		}
		return []Scenario{sc}, nil
	}

	log.Debugf("Reading profile from %s", i.configPath)
	profile, err := LoadProfile(i.configPath)
	if err != nil {
		return nil, err
	}
	selected, err := profile.Select(args)
	if err != nil {
		return nil, err
	}
	out := make([]Scenario, len(selected))
	for k, sc := range selected {
		out[k] = i.override(fs, sc)
		if err := out[k].Validate(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// writeReports prints one aligned row per scenario.
func writeReports(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tNODES\tEDGES\tACCEPTED\tCOMPONENTS\tWEIGHT\tSORT(min/mean)\tUNION-FIND(min/mean)\tBOTH(min/mean)")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%s/%s\t%s/%s\t%s/%s\n",
			r.Scenario, r.Nodes, r.Edges, r.Accepted, r.Components, r.TotalWeight,
			r.Sorting.Min, r.Sorting.Mean,
			r.UnionFind.Min, r.UnionFind.Mean,
			r.Both.Min, r.Both.Mean)
	}

	return tw.Flush()
}
