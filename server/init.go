package server

import (
	"github.com/teranos/milassist/am"
)

// setupConfigWatcher reloads the CORS allow-list and dev flag when the
// project config file changes. Without a config file nothing is watched.
func (s *Server) setupConfigWatcher(configPath string) {
	if configPath == "" {
		s.logger.Infow("No config file found, using defaults (config watching disabled)")
		return
	}

	watcher, err := am.NewConfigWatcher(configPath, s.logger)
	if err != nil {
		s.logger.Warnw("Failed to create config watcher, restart required for config changes", "error", err)
		return
	}
	watcher.OnReload(s.applyConfig)
	watcher.Start()
	s.configWatcher = watcher
	s.logger.Infow("Config watcher started", "path", watcher.Path())
}

// applyConfig swaps in the reloadable parts of cfg.
func (s *Server) applyConfig(cfg *am.Config) error {
	origins := cfg.GetServerAllowedOrigins()
	s.setOrigins(origins)
	s.dev.Store(cfg.Server.Dev)
	s.logger.Infow("Config reloaded", "allowed_origins", origins, "dev", cfg.Server.Dev)
	return nil
}
