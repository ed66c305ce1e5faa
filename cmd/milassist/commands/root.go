// Package commands holds the milassist cobra command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/logger"
)

// NewRootCmd builds the command tree. A fresh tree per call keeps flag
// state out of package globals.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "milassist",
		Short: "milassist - APP-6D symbol codes and mission planning commands",
		Long: `milassist - APP-6D / MIL-STD-2525D symbol identification codes (SIDC)
and natural-language mission planning commands.

Available commands:
  encode     - Build a SIDC from unit attributes
  decode     - Explain a SIDC column by column
  validate   - Check that a SIDC renders to a known icon
  resolve    - Find the main icon code for a unit category
  name       - Name a main icon code
  symbolsets - List symbol sets or one catalog
  command    - Turn a natural-language command into a map feature
  server     - Start the HTTP API
  am         - Manage configuration ("I am")

Examples:
  milassist encode --identity Friend --echelon Battalion --category Infantry
  milassist decode 10031000161211000000
  milassist resolve "Land Unit" armor
  milassist command "hostile tank company at Lahore"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			jsonLogs := false
			if cfg, err := am.Load(); err == nil {
				jsonLogs = cfg.Log.JSON
			}
			if err := logger.Initialize(jsonLogs, verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	root.PersistentFlags().Bool("json", false, "Output JSON")

	root.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newValidateCmd(),
		newResolveCmd(),
		newNameCmd(),
		newSymbolSetsCmd(),
		newCommandCmd(),
		newServerCmd(),
		newAmCmd(),
		newVersionCmd(),
	)
	return root
}
