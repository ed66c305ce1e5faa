package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/teranos/milassist/logger"
)

// setupHTTPRoutes builds the mux. Middleware order: request ID, logging,
// CORS, then the route.
func (s *Server) setupHTTPRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.HandleHealth)
	mux.HandleFunc("POST /api/command", s.HandleCommand)                                    // Natural-language command to feature
	mux.HandleFunc("POST /api/sidc", s.HandleEncode)                                        // Record to SIDC
	mux.HandleFunc("GET /api/sidc/{code}", s.HandleDecode)                                  // SIDC to labels and metadata
	mux.HandleFunc("GET /api/fields", s.HandleFields)                                       // Options for every enumerated column
	mux.HandleFunc("GET /api/symbolsets", s.HandleSymbolSets)                               // Symbol sets in canonical order
	mux.HandleFunc("GET /api/symbolsets/{name}", s.HandleSymbolSet)                         // Catalog options
	mux.HandleFunc("GET /api/symbolsets/{name}/function-id", s.HandleFindFunctionID)        // ?category= to code
	mux.HandleFunc("GET /api/symbolsets/{name}/function-id/{code}", s.HandleFunctionIDName) // Code to name
	mux.HandleFunc("GET /api/symbolsets/{name}/modifiers/{sector}/{code}", s.HandleModifierName)

	return s.requestIDMiddleware(s.loggingMiddleware(s.corsMiddleware(mux)))
}

// corsMiddleware adds CORS headers for allowed origins and answers preflight
// requests before routing.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(origin, s.allowedOrigins()) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if s.isDevMode() {
			w.Header().Set("Access-Control-Allow-Methods", "*")
			w.Header().Set("Access-Control-Allow-Headers", "*")
		} else {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware tags each request with an ID, reusing X-Request-ID
// when the client sent one.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.FromContext(r.Context(), s.logger).Debugw("HTTP request",
			logger.FieldMethod, r.Method,
			logger.FieldPath, r.URL.Path,
			logger.FieldStatus, rec.status,
			logger.FieldDurationMS, time.Since(start).Milliseconds(),
		)
	})
}
