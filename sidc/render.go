package sidc

import "fmt"

// RenderInfo is what a renderer reports about a symbol it built.
type RenderInfo struct {
	Affiliation  string
	Context      string
	Dimension    string
	Echelon      string
	Headquarters bool
	TaskForce    bool
	Activity     bool
	Civilian     bool
	Condition    string
}

// RenderedSymbol is a symbol built by a Renderer.
type RenderedSymbol interface {
	ValidIcon() bool
	Info() RenderInfo
}

// Renderer builds symbols from SIDC strings. It is the authority on whether
// a code maps to a drawable icon.
type Renderer interface {
	Render(code string) (RenderedSymbol, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(code string) (RenderedSymbol, error)

func (f RendererFunc) Render(code string) (RenderedSymbol, error) { return f(code) }

// SymbolMetadata is the decoded view of a SIDC used by detail panels.
type SymbolMetadata struct {
	Affiliation  string `json:"affiliation"`
	Context      string `json:"context"`
	Dimension    string `json:"dimension"`
	Echelon      string `json:"echelon"`
	Headquarters bool   `json:"headquarters"`
	TaskForce    bool   `json:"taskForce"`
	Activity     bool   `json:"activity"`
	Civilian     bool   `json:"civilian"`
	Condition    string `json:"condition,omitempty"`
	Valid        bool   `json:"valid"`
	Error        string `json:"error,omitempty"`
}

func unknownMetadata() SymbolMetadata {
	return SymbolMetadata{
		Affiliation: "Unknown",
		Context:     "Unknown",
		Dimension:   "Unknown",
		Echelon:     "Unknown",
	}
}

// Validate reports whether r considers code a valid, drawable symbol.
// Renderer errors and panics count as invalid.
func Validate(r Renderer, code string) (valid bool) {
	defer func() {
		if rec := recover(); rec != nil {
			valid = false
		}
	}()
	if r == nil {
		return false
	}
	sym, err := r.Render(code)
	if err != nil || sym == nil {
		return false
	}
	return sym.ValidIcon()
}

// Metadata decodes code through r. It never panics; on failure Valid is
// false, Error carries the reason and the string fields stay "Unknown".
func Metadata(r Renderer, code string) (md SymbolMetadata) {
	md = unknownMetadata()
	defer func() {
		if rec := recover(); rec != nil {
			md = unknownMetadata()
			md.Error = fmt.Sprint(rec)
		}
	}()
	if r == nil {
		md.Error = "no renderer configured"
		return md
	}
	sym, err := r.Render(code)
	if err != nil {
		md.Error = err.Error()
		return md
	}
	if sym == nil {
		md.Error = "renderer returned no symbol"
		return md
	}
	info := sym.Info()
	md.Affiliation = orUnknown(info.Affiliation)
	md.Context = orUnknown(info.Context)
	md.Dimension = orUnknown(info.Dimension)
	md.Echelon = orUnknown(info.Echelon)
	md.Headquarters = info.Headquarters
	md.TaskForce = info.TaskForce
	md.Activity = info.Activity
	md.Civilian = info.Civilian
	md.Condition = info.Condition
	md.Valid = sym.ValidIcon()
	return md
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
