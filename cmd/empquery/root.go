package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/DimkaBraginskiy/apbd15-tut05/empdept"
	"github.com/DimkaBraginskiy/apbd15-tut05/internal/logging"
	"github.com/DimkaBraginskiy/apbd15-tut05/scenario"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "empquery",
		Short:             "Relational queries over the employee database",
		Long:              "Runs and verifies the canonical queries over the EMP, DEPT and SALGRADE sample tables",
		PersistentPreRunE: persistentPreRunE,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().String("fixture", "", "YAML file holding the employees, departments and salgrades to query (default: the embedded sample)")
	rootCmd.PersistentFlags().String("log-level", "info", "verbosity of logging (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", `format of the logs ("console", "json")`)

	return rootCmd
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return fmt.Errorf("unknown log level %q", levelName)
	}

	var out io.Writer = cmd.ErrOrStderr()
	format, _ := cmd.Flags().GetString("log-format")
	switch format {
	case "console":
		out = zerolog.ConsoleWriter{Out: out}
	case "json":
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	logging.SetGlobalLogger(zerolog.New(out).Level(level).With().Timestamp().Logger())
	return nil
}

// queries builds the scenario queries over the dataset named by --fixture.
func queries(cmd *cobra.Command) (*scenario.Queries, error) {
	path, _ := cmd.Flags().GetString("fixture")
	if path == "" {
		return scenario.New(empdept.Default()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := empdept.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logging.Debug().Str("fixture", path).Msg("using fixture file")
	return scenario.New(d), nil
}

func registerListCmd(rootCmd *cobra.Command) {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists the queries and the SQL they mirror",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, s := range scenario.All() {
				fmt.Fprintf(w, "%-18s %s\n", s.Name, s.SQL)
			}
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)
}

func registerRunCmd(rootCmd *cobra.Command) {
	runCmd := &cobra.Command{
		Use:   "run [query...]",
		Short: "Runs queries and prints their results, all of them if none are named",
		RunE:  runQueries,
	}
	rootCmd.AddCommand(runCmd)
}

func runQueries(cmd *cobra.Command, args []string) error {
	selected := scenario.All()
	if len(args) > 0 {
		selected = selected[:0]
		for _, name := range args {
			s, ok := scenario.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown query %q, expected one of: %s", name, strings.Join(scenario.Names(), ", "))
			}
			selected = append(selected, s)
		}
	}

	q, err := queries(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, s := range selected {
		if i > 0 {
			fmt.Fprintln(w)
		}
		logging.Debug().Str("query", s.Name).Msg("running query")
		fmt.Fprintf(w, "-- %s\n%s\n", s.SQL, s.Render(q))
	}
	return nil
}

func registerVerifyCmd(rootCmd *cobra.Command) {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Checks the results of every query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := queries(cmd)
			if err != nil {
				return err
			}
			if err := scenario.VerifyAll(q); err != nil {
				logging.Error().Err(err).Msg("queries failed verification")
				return err
			}
			logging.Info().Int("queries", len(scenario.All())).Msg("all queries verified")
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	rootCmd.AddCommand(verifyCmd)
}
