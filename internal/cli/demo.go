package cli

import (
	"github.com/spf13/cobra"

	"github.com/jub0bs/corsflow"
)

var demoFormat string

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVarP(&demoFormat, "format", "f", formatText, "Output format (text|json)")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the guided-tour requests in order",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := checkFormat(demoFormat); err != nil {
		return err
	}
	entries, err := classifyAll(corsflow.DemoScenarios())
	if err != nil {
		return err
	}
	return writeEntries(cmd.OutOrStdout(), demoFormat, entries)
}
