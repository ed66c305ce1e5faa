package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/logger"
	"github.com/teranos/milassist/version"
)

func printStartupBanner(w io.Writer, cfg *am.Config, verbosity, port int) {
	info := version.Get()

	fmt.Fprintln(w)
	fmt.Fprintln(w, pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack, pterm.Bold)).
		Sprint("milassist - mission planning assistant"))

	mapbox := "not configured (place names cannot be located)"
	if cfg.Mapbox.AccessToken != "" {
		mapbox = "configured"
	}
	origins := "*"
	if !cfg.Server.Dev {
		origins = strings.Join(cfg.GetServerAllowedOrigins(), ", ")
	}

	box := pterm.DefaultBox.WithTitle("Info").WithTitleTopLeft()
	fmt.Fprintln(w, box.Sprint(strings.Join([]string{
		fmt.Sprintf("Version:   %s (commit %s)", info.Version, info.Short()),
		fmt.Sprintf("Built:     %s", info.BuildTime),
		fmt.Sprintf("Verbosity: %s", logger.LevelName(verbosity)),
		fmt.Sprintf("Port:      %d", port),
		fmt.Sprintf("Model:     %s", cfg.LLMProviderName()),
		fmt.Sprintf("Mapbox:    %s", mapbox),
		fmt.Sprintf("Origins:   %s", origins),
	}, "\n")))
	fmt.Fprintln(w, pterm.LightBlue("Press Ctrl+C to stop"))
	fmt.Fprintln(w)
}
