package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/milassist/display"
	"github.com/teranos/milassist/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show milassist version information",
		Long:  `Display version, build time, commit hash, and platform information for the milassist binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, info)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, info.String())
			fmt.Fprintf(w, "Platform: %s\n", info.Platform)
			fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
}
