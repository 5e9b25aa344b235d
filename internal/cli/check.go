package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jub0bs/corsflow/internal/scenario"
	"github.com/jub0bs/corsflow/internal/util"
)

var checkFormatFlag string

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkFormatFlag, "format", "f", formatText, "Output format (text|json)")
}

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Run scenario files and compare outcomes with expectations",
	Long: "Loads YAML scenario files, classifies each case, and reports which cases\n" +
		"produced a result (or step sequence) other than the expected one.\n" +
		"Exits with a non-zero status if any case fails.",
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := checkFormat(checkFormatFlag); err != nil {
		return err
	}
	var results []*scenario.RunResult
	failed := 0
	for _, path := range args {
		r, err := scenario.LoadAndRun(path)
		if err != nil {
			return err
		}
		logger.Debug("scenario checked", "file", path, "passed", r.Passed, "failed", r.Failed)
		failed += r.Failed
		results = append(results, r)
	}

	switch checkFormatFlag {
	case formatJSON:
		out, err := scenario.FormatJSON(results)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	default:
		fmt.Fprint(cmd.OutOrStdout(), scenario.FormatText(results))
	}

	if failed > 0 {
		return util.Errorf("%d scenario case(s) failed", failed)
	}
	return nil
}
