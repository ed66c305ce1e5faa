package milsymbol

import (
	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/sidc"
)

const sidcLength = 20

// Symbol is a parsed SIDC ready for drawing.
type Symbol struct {
	SIDC string

	context   string
	identity  string
	symbolSet string
	status    string
	hqtfd     string
	echelon   string
	mainIcon  string
}

// Meta is the letter-code metadata of a symbol.
type Meta struct {
	Affiliation  string
	Context      string
	Dimension    string
	Echelon      string
	Headquarters bool
	TaskForce    bool
	Feint        bool
	Activity     bool
	Civilian     bool
	Condition    string
}

// New parses code into a Symbol. Only the shape is checked here: twenty
// ASCII digits. Whether the symbol is drawable is ValidIcon's call.
func New(code string) (*Symbol, error) {
	if len(code) != sidcLength {
		return nil, errors.Newf("milsymbol: SIDC must be %d digits, got %d", sidcLength, len(code))
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return nil, errors.Newf("milsymbol: non-digit %q at offset %d", code[i], i)
		}
	}
	return &Symbol{
		SIDC:      code,
		context:   code[2:3],
		identity:  code[3:4],
		symbolSet: code[4:6],
		status:    code[6:7],
		hqtfd:     code[7:8],
		echelon:   code[8:10],
		mainIcon:  code[10:16],
	}, nil
}

var affiliations = map[string]string{
	"0": "Unknown", // pending
	"1": "Unknown",
	"2": "Friend", // assumed friend
	"3": "Friend",
	"4": "Neutral",
	"5": "Hostile", // suspect
	"6": "Hostile",
}

var contextNames = map[string]string{
	"0": "Reality",
	"1": "Exercise",
	"2": "Simulation",
}

var dimensions = map[string]string{
	"01": "Air",
	"02": "Air",
	"05": "Space",
	"06": "Space",
	"10": "Ground",
	"11": "Ground",
	"15": "Ground",
	"20": "Ground",
	"25": "Control",
	"27": "Ground",
	"30": "Sea",
	"35": "Subsurface",
	"36": "Subsurface",
	"40": "Activity",
	"50": "Air",
	"51": "Space",
	"52": "Ground",
	"53": "Sea",
	"54": "Subsurface",
	"60": "Cyberspace",
}

var echelonNames = map[string]string{
	"11": "Team",
	"12": "Squad",
	"13": "Section",
	"14": "Platoon",
	"15": "Company",
	"16": "Battalion",
	"17": "Regiment",
	"18": "Brigade",
	"21": "Division",
	"22": "Corps",
	"23": "Army",
	"24": "Army Group/Front",
	"25": "Region/Theater",
	"26": "Command",
}

var conditions = map[string]string{
	"2": "FullyCapable",
	"3": "Damaged",
	"4": "Destroyed",
	"5": "FullToCapacity",
}

// ValidIcon reports whether the symbol can be drawn: known context,
// identity, symbol set and status, and a main icon in that set's glyph
// table.
func (s *Symbol) ValidIcon() bool {
	if s == nil {
		return false
	}
	if _, ok := contextNames[s.context]; !ok {
		return false
	}
	if _, ok := affiliations[s.identity]; !ok {
		return false
	}
	if _, ok := dimensions[s.symbolSet]; !ok {
		return false
	}
	if s.status > "5" || s.hqtfd > "7" {
		return false
	}
	return knownIcon(s.symbolSet, s.mainIcon)
}

// Metadata decodes the letter-code semantics. Unmapped columns are "".
func (s *Symbol) Metadata() Meta {
	if s == nil {
		return Meta{}
	}
	flags := sidc.HQTFD(s.hqtfd)
	return Meta{
		Affiliation:  affiliations[s.identity],
		Context:      contextNames[s.context],
		Dimension:    dimensions[s.symbolSet],
		Echelon:      echelonNames[s.echelon],
		Headquarters: flags.Headquarters(),
		TaskForce:    flags.TaskForce(),
		Feint:        flags.FeintDummy(),
		Activity:     s.symbolSet == "40",
		Civilian:     s.symbolSet == "11",
		Condition:    conditions[s.status],
	}
}
