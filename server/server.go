// Package server exposes the SIDC codec and the command pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/command"
	"github.com/teranos/milassist/logger"
	"github.com/teranos/milassist/milsymbol"
	"github.com/teranos/milassist/sidc"
)

// CommandProcessor turns a free-text command into a map feature.
type CommandProcessor interface {
	Process(ctx context.Context, cmd string) (*command.Result, error)
}

// Options wires a Server. Nil Renderer uses milsymbol.
type Options struct {
	Config    *am.Config
	Processor CommandProcessor
	Renderer  sidc.Renderer
	Logger    *zap.SugaredLogger
}

// Server is the milassist HTTP API.
type Server struct {
	cfg       *am.Config
	processor CommandProcessor
	renderer  sidc.Renderer
	logger    *zap.SugaredLogger

	// CORS allow-list, replaced when the config file changes
	originsMu sync.RWMutex
	origins   []string
	dev       atomic.Bool

	commandLimiter *rate.Limiter // nil = unlimited
	configWatcher  *am.ConfigWatcher
	httpServer     *http.Server
	handler        http.Handler
	state          atomic.Int32
}

// New creates a Server. Routes are built once here.
func New(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = &am.Config{}
	}
	s := &Server{
		cfg:       cfg,
		processor: opts.Processor,
		renderer:  opts.Renderer,
		logger:    logger.OrNop(opts.Logger),
	}
	if s.renderer == nil {
		s.renderer = milsymbol.Renderer{}
	}
	s.setOrigins(cfg.GetServerAllowedOrigins())
	s.dev.Store(cfg.Server.Dev)

	if rpm := cfg.Command.RequestsPerMinute; rpm > 0 {
		burst := rpm / 6
		if burst < 1 {
			burst = 1
		}
		s.commandLimiter = rate.NewLimiter(rate.Limit(float64(rpm)/60), burst)
	}

	s.handler = s.setupHTTPRoutes()
	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) setOrigins(origins []string) {
	cp := append([]string(nil), origins...)
	s.originsMu.Lock()
	s.origins = cp
	s.originsMu.Unlock()
}

func (s *Server) allowedOrigins() []string {
	s.originsMu.RLock()
	defer s.originsMu.RUnlock()
	return s.origins
}

func (s *Server) isDevMode() bool {
	return s.dev.Load()
}
