package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/display"
	"github.com/teranos/milassist/errors"
)

func newAmCmd() *cobra.Command {
	amCmd := &cobra.Command{
		Use:   "am",
		Short: "Manage milassist configuration",
		Long: `am - Manage milassist configuration ("I am")

Configuration sources (in order of precedence):
1. Environment variables (MILASSIST_* prefix)
2. Project config (./am.toml, searched upwards)
3. User config (~/.milassist/am.toml)
4. System config (/etc/milassist/config.toml)
5. Default values

Examples:
  milassist am show                    # Show current configuration
  milassist am show --format json      # Show configuration as JSON
  milassist am get mapbox.base_url     # Get one value
  milassist am validate                # Validate current configuration`,
	}
	amCmd.AddCommand(newAmShowCmd(), newAmGetCmd(), newAmValidateCmd())
	return amCmd
}

func newAmShowCmd() *cobra.Command {
	var (
		format string
		reveal bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from all sources. Secrets are masked unless --reveal is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := am.Load(); err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			if display.ShouldOutputJSON(cmd) {
				format = am.FormatJSON
			}
			out, err := am.Render(am.Settings(am.GetViper(), reveal), format)
			if err != nil {
				return err
			}
			if format != am.FormatJSON {
				fmt.Fprintln(cmd.OutOrStdout(), "# milassist configuration")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", am.FormatTOML, "Output format: toml, json, yaml")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print secrets in clear text")
	return cmd
}

func newAmGetCmd() *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a configuration value using dot notation (e.g., server.port, command.timeout_seconds)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := am.Load(); err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			key := args[0]
			v := am.GetViper()
			if !v.IsSet(key) {
				return errors.NewNotFoundError("configuration key %q not found", key)
			}
			value := v.Get(key)
			if am.IsSensitive(key) && !reveal && v.GetString(key) != "" {
				value = "********"
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print secrets in clear text")
	return cmd
}

func newAmValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := am.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			display.Success(cmd.OutOrStdout(), "Configuration is valid")
			return nil
		},
	}
}
