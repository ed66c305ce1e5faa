package server

import (
	"time"

	"github.com/teranos/milassist/command"
	"github.com/teranos/milassist/sidc"
)

const (
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout = 15 * time.Second
	// maxBodyBytes caps request bodies.
	maxBodyBytes = 64 << 10
)

// ServerState is the lifecycle state.
type ServerState int

const (
	ServerStateRunning  ServerState = iota // Normal operation
	ServerStateDraining                    // Graceful shutdown in progress
	ServerStateStopped                     // Shutdown complete
)

// CommandRequest is the body of POST /api/command.
type CommandRequest struct {
	Command string `json:"command"`
}

// ActionResult answers a command. Exactly one of Feature and Error is set.
type ActionResult struct {
	Feature *command.Result `json:"feature"`
	Error   *string         `json:"error"`
}

// EncodeResponse answers POST /api/sidc.
type EncodeResponse struct {
	SIDC     string              `json:"sidc"`
	Valid    bool                `json:"valid"`
	Metadata sidc.SymbolMetadata `json:"metadata"`
}

// DecodeResponse answers GET /api/sidc/{code}.
type DecodeResponse struct {
	Description sidc.Description    `json:"description"`
	Valid       bool                `json:"valid"`
	Metadata    sidc.SymbolMetadata `json:"metadata"`
}

// SymbolSetSummary is one entry of GET /api/symbolsets.
type SymbolSetSummary struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	HasMainIcons bool   `json:"hasMainIcons"`
}

// FunctionIDResponse answers the function-id lookups.
type FunctionIDResponse struct {
	SymbolSet  string `json:"symbolSet"`
	FunctionID string `json:"functionId"`
	Name       string `json:"name"`
}

// FieldOptions lists the selectable values of every enumerated column.
type FieldOptions struct {
	Contexts           []sidc.Option `json:"contexts"`
	StandardIdentities []sidc.Option `json:"standardIdentities"`
	SymbolSets         []sidc.Option `json:"symbolSets"`
	Statuses           []sidc.Option `json:"statuses"`
	HQTFDs             []sidc.Option `json:"hqtfds"`
	Echelons           []sidc.Option `json:"echelons"`
}
