package commands

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/command"
	"github.com/teranos/milassist/display"
	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/logger"
)

// processFunc is swapped in tests so the command runs without a model.
var processFunc = func(ctx context.Context, cfg *am.Config, text string) (*command.Result, error) {
	return command.NewProcessorFromConfig(cfg, logger.ComponentLogger("command")).Process(ctx, text)
}

func newCommandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command <text>",
		Short: "Turn a natural-language command into a map feature",
		Long: `Send a planning command to the configured model and print the resulting
map feature: a located symbol or a route between two places. Without a
model the built-in pattern parser is used.`,
		Example: `  milassist command "friendly infantry battalion at Lahore"
  milassist command "route from Paris to Berlin for 3rd Armored" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := am.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := processFunc(ctx, cfg, strings.Join(args, " "))
			if err != nil {
				return errors.New(command.UserMessage(err))
			}
			return printResult(cmd, res)
		},
	}
}

func printResult(cmd *cobra.Command, res *command.Result) error {
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd, res)
	}
	w := cmd.OutOrStdout()
	switch {
	case res.Symbol != nil:
		md := res.Symbol.Metadata
		coords := res.Symbol.Feature.Geometry.Coordinates
		return display.KeyValues(w, [][2]string{
			{"SIDC", md.SIDC},
			{"Unit", md.FunctionName},
			{"Label", md.AILabel},
			{"Identity", md.StandardIdentity},
			{"Echelon", md.Echelon},
			{"Location", md.LocationName},
			{"Coordinates", formatPoint(coords[1], coords[0])},
			{"Source", string(md.Stage)},
		})
	case res.Route != nil:
		d := res.Route.Data
		return display.KeyValues(w, [][2]string{
			{"Start", formatPoint(d.Start.Latitude, d.Start.Longitude)},
			{"End", formatPoint(d.End.Latitude, d.End.Longitude)},
			{"Path", d.PathType},
			{"Unit", d.UnitInfo},
		})
	}
	return errors.New("empty result")
}
