package cli

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jub0bs/corsflow"
)

var tableFormat string

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringVarP(&tableFormat, "format", "f", formatText, "Output format (text|json)")
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Classify every combination of method and flags",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func runTable(cmd *cobra.Command, args []string) error {
	if err := checkFormat(tableFormat); err != nil {
		return err
	}
	entries, err := classifyAll(slices.Collect(corsflow.Combinations()))
	if err != nil {
		return err
	}
	if tableFormat == formatJSON {
		return writeEntries(cmd.OutOrStdout(), tableFormat, entries)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tSAME-ORIGIN\tCORS\tCUSTOM-HEADERS\tRESULT\tPREFLIGHT\tSTATUS")
	for _, e := range entries {
		o := e.Outcome
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Method, onOff(e.SameOrigin), onOff(e.CORSEnabled), onOff(e.CustomHeaders),
			o.Result(), yesNo(o.PreflightRequired()), o.Status())
	}
	return tw.Flush()
}
