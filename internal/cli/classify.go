package cli

import (
	"github.com/spf13/cobra"

	"github.com/jub0bs/corsflow"
)

var (
	classifyMethod        string
	classifySameOrigin    bool
	classifyCORS          bool
	classifyCustomHeaders bool
	classifyFormat        string
)

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVarP(&classifyMethod, "method", "m", "GET", "Request method (GET|POST|PUT|DELETE)")
	classifyCmd.Flags().BoolVar(&classifySameOrigin, "same-origin", false, "Target shares scheme, host, and port with the requester")
	classifyCmd.Flags().BoolVar(&classifyCORS, "cors", false, "Server response grants cross-origin access")
	classifyCmd.Flags().BoolVar(&classifyCustomHeaders, "custom-headers", false, "Request carries a non-safelisted header (e.g. Authorization)")
	classifyCmd.Flags().StringVarP(&classifyFormat, "format", "f", formatText, "Output format (text|json)")
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify one request",
	Args:  cobra.NoArgs,
	RunE:  runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	if err := checkFormat(classifyFormat); err != nil {
		return err
	}
	req, err := corsflow.NewRequest(classifyMethod, classifySameOrigin, classifyCORS, classifyCustomHeaders)
	if err != nil {
		return err
	}
	entries, err := classifyAll([]corsflow.Request{req})
	if err != nil {
		return err
	}
	return writeEntries(cmd.OutOrStdout(), classifyFormat, entries)
}
