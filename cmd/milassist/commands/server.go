package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/command"
	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/logger"
	"github.com/teranos/milassist/server"
)

func newServerCmd() *cobra.Command {
	var (
		port int
		dev  bool
	)
	cmd := &cobra.Command{
		Use:     "server",
		Aliases: []string{"serve"},
		Short:   "Start the milassist HTTP API",
		Long: `Serve the command, SIDC and catalog endpoints. The port comes from
--port, then server.port in am.toml, then 9002 with fallbacks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to Info for the server
			verbosity, _ := cmd.Flags().GetCount("verbose")
			if verbosity == 0 {
				verbosity = 1
			}

			cfg, err := am.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "invalid configuration")
			}
			if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			if dev {
				cfg.Server.Dev = true
			}
			if !cmd.Flags().Changed("port") {
				port = cfg.GetServerPort()
			}

			printStartupBanner(cmd.OutOrStdout(), cfg, verbosity, port)

			srv := server.New(server.Options{
				Config:    cfg,
				Processor: command.NewProcessorFromConfig(cfg, logger.ComponentLogger("command")),
				Logger:    logger.ComponentLogger("server"),
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			errChan := make(chan error, 1)
			go func() {
				errChan <- srv.Start(ctx, port)
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case err := <-errChan:
				if err != nil {
					return errors.Wrap(err, "server failed to start")
				}
				return nil
			case <-sigChan:
				pterm.Info.Println("\nShutting down gracefully (press Ctrl+C again to force)...")

				shutdownDone := make(chan error, 1)
				go func() {
					shutdownDone <- srv.Stop()
				}()

				select {
				case err := <-shutdownDone:
					if err != nil {
						return errors.Wrap(err, "shutdown error")
					}
					pterm.Success.Println("Server stopped cleanly")
					return nil
				case <-sigChan:
					pterm.Warning.Println("\nForce shutdown - exiting immediately")
					os.Exit(1)
					return nil
				}
			}
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", am.DefaultServerPort, "Port to listen on")
	cmd.Flags().BoolVar(&dev, "dev", false, "Development mode: allow any CORS origin")
	return cmd
}
