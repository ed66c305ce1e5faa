package sidc

// Record is the encoder input: one map symbol described by free-text labels
// (as typed into a form or returned by the LLM) plus the already-coded icon
// and modifier columns.
type Record struct {
	Context          string `json:"context,omitempty"`
	StandardIdentity string `json:"standardIdentity,omitempty"`
	SymbolSet        string `json:"symbolSet,omitempty"`
	Status           string `json:"status,omitempty"`
	HQTFD            string `json:"hqtfd,omitempty"`
	Echelon          string `json:"echelon,omitempty"`
	MainIconID       string `json:"mainIconId,omitempty"`
	Modifier1        string `json:"modifier1,omitempty"`
	Modifier2        string `json:"modifier2,omitempty"`
}

// Code resolves every label through its table, substituting defaults on a
// miss: Reality, Unknown, Land Unit, Present, Not Applicable, Unspecified.
func (r Record) Code() Code {
	return Code{
		Context:          contexts.resolve(r.Context),
		StandardIdentity: identities.resolve(r.StandardIdentity),
		SymbolSet:        symbolSets.resolve(r.SymbolSet),
		Status:           statuses.resolve(r.Status),
		HQTFD:            hqtfds.resolve(r.HQTFD),
		Echelon:          echelons.resolve(r.Echelon),
		MainIcon:         fit(r.MainIconID, MainIconWidth, DefaultIcon),
		Modifier1:        fit(r.Modifier1, ModifierWidth, DefaultModifier),
		Modifier2:        fit(r.Modifier2, ModifierWidth, DefaultModifier),
	}
}

// Generate composes the twenty character SIDC for r. It never fails:
//
//	Generate(Record{}) == "10011000000000000000"
func Generate(r Record) string {
	return r.Code().String()
}
