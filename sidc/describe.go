package sidc

// Description is a column-by-column human reading of a SIDC.
type Description struct {
	SIDC             string `json:"sidc"`
	Context          string `json:"context"`
	StandardIdentity string `json:"standardIdentity"`
	SymbolSet        string `json:"symbolSet"`
	Status           string `json:"status"`
	HQTFD            string `json:"hqtfd"`
	Echelon          string `json:"echelon"`
	MainIconID       string `json:"mainIconId"`
	MainIcon         string `json:"mainIcon"`
	Modifier1Code    string `json:"modifier1Code"`
	Modifier1        string `json:"modifier1"`
	Modifier2Code    string `json:"modifier2Code"`
	Modifier2        string `json:"modifier2"`
}

// Describe strictly parses code and labels each column.
func Describe(code string) (Description, error) {
	c, err := Parse(code)
	if err != nil {
		return Description{}, err
	}
	set := c.SymbolSet.Code()
	return Description{
		SIDC:             code,
		Context:          c.Context.String(),
		StandardIdentity: c.StandardIdentity.String(),
		SymbolSet:        c.SymbolSet.String(),
		Status:           c.Status.String(),
		HQTFD:            c.HQTFD.String(),
		Echelon:          c.Echelon.String(),
		MainIconID:       c.MainIcon,
		MainIcon:         FunctionIDName(set, c.MainIcon),
		Modifier1Code:    c.Modifier1,
		Modifier1:        ModifierName(set, 1, c.Modifier1),
		Modifier2Code:    c.Modifier2,
		Modifier2:        ModifierName(set, 2, c.Modifier2),
	}, nil
}
