package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/teranos/milassist/ai/provider"
	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/command"
	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/logger"
	"github.com/teranos/milassist/sidc"
	"github.com/teranos/milassist/version"
)

// HandleHealth reports liveness and which backends are configured.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()
	health := map[string]interface{}{
		"status":            "ok",
		"version":           versionInfo.Version,
		"commit":            versionInfo.CommitHash,
		"build_time":        versionInfo.BuildTime,
		"llm_provider":      s.cfg.LLMProviderName(),
		"llm_backends":      backendNames(s.cfg),
		"geocoder":          s.cfg.Mapbox.AccessToken != "",
		"command_available": s.processor != nil,
	}
	_ = writeJSON(w, http.StatusOK, health)
}

// backendNames lists the usable LLM backends; never nil so it encodes as [].
func backendNames(cfg *am.Config) []string {
	out := []string{}
	for _, p := range provider.Available(cfg) {
		out = append(out, string(p))
	}
	return out
}

// HandleCommand runs the command pipeline. Failures are answered with an
// ActionResult whose error is the user-facing message.
func (s *Server) HandleCommand(w http.ResponseWriter, r *http.Request) {
	if s.processor == nil {
		writeError(w, http.StatusServiceUnavailable, "command processing is not configured")
		return
	}
	if s.commandLimiter != nil && !s.commandLimiter.Allow() {
		w.Header().Set("Retry-After", "5")
		writeError(w, http.StatusTooManyRequests, "Too many commands, please slow down")
		return
	}

	var req CommandRequest
	if err := readJSON(w, r, &req); err != nil {
		return
	}

	log := logger.FromContext(r.Context(), s.logger)
	res, err := s.processor.Process(r.Context(), req.Command)
	if err != nil {
		msg := command.UserMessage(err)
		status := statusFor(err, http.StatusBadGateway)
		log.Infow("Command failed", logger.FieldCommand, req.Command, logger.FieldError, err, logger.FieldStatus, status)
		_ = writeJSON(w, status, ActionResult{Error: &msg})
		return
	}
	_ = writeJSON(w, http.StatusOK, ActionResult{Feature: res})
}

// HandleEncode composes a SIDC from a record and asks the renderer about it.
func (s *Server) HandleEncode(w http.ResponseWriter, r *http.Request) {
	var rec sidc.Record
	if err := readJSON(w, r, &rec); err != nil {
		return
	}
	code := sidc.Generate(rec)
	_ = writeJSON(w, http.StatusOK, EncodeResponse{
		SIDC:     code,
		Valid:    sidc.Validate(s.renderer, code),
		Metadata: sidc.Metadata(s.renderer, code),
	})
}

// HandleDecode explains a SIDC column by column.
func (s *Server) HandleDecode(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	desc, err := sidc.Describe(code)
	if err != nil {
		writeWrappedError(w, s.logger, err, "failed to decode SIDC", http.StatusBadRequest)
		return
	}
	_ = writeJSON(w, http.StatusOK, DecodeResponse{
		Description: desc,
		Valid:       sidc.Validate(s.renderer, code),
		Metadata:    sidc.Metadata(s.renderer, code),
	})
}

// HandleFields lists the options of every enumerated column.
func (s *Server) HandleFields(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, FieldOptions{
		Contexts:           options(sidc.Contexts()),
		StandardIdentities: options(sidc.StandardIdentities()),
		SymbolSets:         options(sidc.SymbolSets()),
		Statuses:           options(sidc.Statuses()),
		HQTFDs:             options(sidc.HQTFDs()),
		Echelons:           options(sidc.Echelons()),
	})
}

type enumValue interface {
	Code() string
	String() string
}

func options[T enumValue](vs []T) []sidc.Option {
	out := make([]sidc.Option, len(vs))
	for i, v := range vs {
		out[i] = sidc.Option{Name: v.String(), Code: v.Code()}
	}
	return out
}

// HandleSymbolSets lists every symbol set in canonical order.
func (s *Server) HandleSymbolSets(w http.ResponseWriter, r *http.Request) {
	sets := sidc.SymbolSets()
	out := make([]SymbolSetSummary, 0, len(sets))
	for _, set := range sets {
		c, _ := sidc.CatalogFor(set.Code())
		out = append(out, SymbolSetSummary{
			Name:         set.String(),
			Code:         set.Code(),
			HasMainIcons: c != nil && c.HasMainIcons(),
		})
	}
	_ = writeJSON(w, http.StatusOK, out)
}

// catalog resolves the {name} path value or answers 404.
func (s *Server) catalog(w http.ResponseWriter, r *http.Request) (*sidc.Catalog, bool) {
	name := r.PathValue("name")
	c, ok := sidc.CatalogFor(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown symbol set: "+name)
		return nil, false
	}
	return c, true
}

// HandleSymbolSet returns the form options of one catalog.
func (s *Server) HandleSymbolSet(w http.ResponseWriter, r *http.Request) {
	c, ok := s.catalog(w, r)
	if !ok {
		return
	}
	_ = writeJSON(w, http.StatusOK, c.Options())
}

// HandleFindFunctionID resolves ?category= to a main icon code.
func (s *Server) HandleFindFunctionID(w http.ResponseWriter, r *http.Request) {
	c, ok := s.catalog(w, r)
	if !ok {
		return
	}
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		writeError(w, http.StatusBadRequest, "category query parameter is required")
		return
	}
	id, found := c.FindFunctionID(category)
	if !found {
		writeWrappedError(w, s.logger, errors.NewNotFoundError("no main icon matches %q", category), "lookup failed", http.StatusNotFound)
		return
	}
	setName := c.SymbolSet().String()
	_ = writeJSON(w, http.StatusOK, FunctionIDResponse{
		SymbolSet:  setName,
		FunctionID: id,
		Name:       sidc.FunctionIDName(setName, id),
	})
}

// HandleFunctionIDName resolves a main icon code to its name. Unknown codes
// answer 200 with "Unknown Function", matching FunctionIDName.
func (s *Server) HandleFunctionIDName(w http.ResponseWriter, r *http.Request) {
	c, ok := s.catalog(w, r)
	if !ok {
		return
	}
	setName := c.SymbolSet().String()
	code := r.PathValue("code")
	_ = writeJSON(w, http.StatusOK, FunctionIDResponse{
		SymbolSet:  setName,
		FunctionID: code,
		Name:       sidc.FunctionIDName(setName, code),
	})
}

// HandleModifierName resolves a sector 1 or 2 modifier code to its name.
func (s *Server) HandleModifierName(w http.ResponseWriter, r *http.Request) {
	c, ok := s.catalog(w, r)
	if !ok {
		return
	}
	sector, err := strconv.Atoi(r.PathValue("sector"))
	if err != nil || (sector != 1 && sector != 2) {
		writeError(w, http.StatusBadRequest, "sector must be 1 or 2")
		return
	}
	code := r.PathValue("code")
	_ = writeJSON(w, http.StatusOK, map[string]string{
		"symbolSet": c.SymbolSet().String(),
		"code":      code,
		"name":      sidc.ModifierName(c.SymbolSet().String(), sector, code),
	})
}
