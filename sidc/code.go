package sidc

import (
	"strings"

	"github.com/teranos/milassist/errors"
)

// Column layout of a twenty character SIDC.
const (
	Length = 20

	Version = "10" // APP-6D

	MainIconWidth   = 6
	ModifierWidth   = 2
	DefaultIcon     = "000000"
	DefaultModifier = "00"
)

// Column offsets.
const (
	offsetVersion   = 0
	offsetContext   = 2
	offsetIdentity  = 3
	offsetSymbolSet = 4
	offsetStatus    = 6
	offsetHQTFD     = 7
	offsetEchelon   = 8
	offsetMainIcon  = 10
	offsetModifier1 = 16
	offsetModifier2 = 18
)

// Code is a SIDC split into its typed columns.
type Code struct {
	Context          Context          `json:"context"`
	StandardIdentity StandardIdentity `json:"standard_identity"`
	SymbolSet        SymbolSet        `json:"symbol_set"`
	Status           Status           `json:"status"`
	HQTFD            HQTFD            `json:"hqtfd"`
	Echelon          Echelon          `json:"echelon"`
	MainIcon         string           `json:"main_icon"`
	Modifier1        string           `json:"modifier_1"`
	Modifier2        string           `json:"modifier_2"`
}

// String encodes the code. Free-form columns are fitted to their width and
// the whole result is fitted to Length, so a Code built by hand with bad
// values still yields twenty characters.
func (c Code) String() string {
	var b strings.Builder
	b.Grow(Length)
	b.WriteString(Version)
	b.WriteString(fit(string(c.Context), 1, string(ContextReality)))
	b.WriteString(fit(string(c.StandardIdentity), 1, string(IdentityUnknown)))
	b.WriteString(fit(string(c.SymbolSet), 2, string(SymbolSetLandUnit)))
	b.WriteString(fit(string(c.Status), 1, string(StatusPresent)))
	b.WriteString(fit(string(c.HQTFD), 1, string(HQTFDNotApplicable)))
	b.WriteString(fit(string(c.Echelon), 2, string(EchelonUnspecified)))
	b.WriteString(fit(c.MainIcon, MainIconWidth, DefaultIcon))
	b.WriteString(fit(c.Modifier1, ModifierWidth, DefaultModifier))
	b.WriteString(fit(c.Modifier2, ModifierWidth, DefaultModifier))
	return padTo(b.String(), Length)
}

// fit forces v to exactly width characters: empty becomes def, longer input
// keeps its first width characters, shorter input is left-padded with "0".
// Anything outside 0-9, multi-byte runes included, becomes "0".
func fit(v string, width int, def string) string {
	if v == "" {
		v = def
	}
	v = digitsOnly(v)
	if len(v) > width {
		return v[:width]
	}
	return strings.Repeat("0", width-len(v)) + v
}

// padTo right-pads with "0" or truncates s to n characters.
func padTo(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + strings.Repeat("0", n-len(s))
}

func digitsOnly(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return strings.Map(func(r rune) rune {
				if r < '0' || r > '9' {
					return '0'
				}
				return r
			}, s)
		}
	}
	return s
}

// Parse strictly decodes a twenty digit SIDC. Every enumerated column must
// be in its table; the main icon and modifiers are taken as opaque digits.
// Errors wrap errors.ErrInvalidSIDC.
func Parse(s string) (Code, error) {
	if len(s) != Length {
		return Code{}, errors.WithHintf(
			errors.Wrapf(errors.ErrInvalidSIDC, "length %d", len(s)),
			"a SIDC is exactly %d digits", Length)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Code{}, errors.Wrapf(errors.ErrInvalidSIDC, "non-digit %q at offset %d", s[i], i)
		}
	}
	if v := s[offsetVersion:offsetContext]; v != Version {
		return Code{}, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidSIDC, "unsupported version %q", v),
			"only APP-6D version 10 codes are supported")
	}

	c := Code{
		Context:          Context(s[offsetContext:offsetIdentity]),
		StandardIdentity: StandardIdentity(s[offsetIdentity:offsetSymbolSet]),
		SymbolSet:        SymbolSet(s[offsetSymbolSet:offsetStatus]),
		Status:           Status(s[offsetStatus:offsetHQTFD]),
		HQTFD:            HQTFD(s[offsetHQTFD:offsetEchelon]),
		Echelon:          Echelon(s[offsetEchelon:offsetMainIcon]),
		MainIcon:         s[offsetMainIcon:offsetModifier1],
		Modifier1:        s[offsetModifier1:offsetModifier2],
		Modifier2:        s[offsetModifier2:],
	}

	checks := []struct {
		column string
		offset int
		ok     bool
	}{
		{"context", offsetContext, c.Context.Valid()},
		{"standard identity", offsetIdentity, c.StandardIdentity.Valid()},
		{"symbol set", offsetSymbolSet, c.SymbolSet.Valid()},
		{"status", offsetStatus, c.Status.Valid()},
		{"hqtfd", offsetHQTFD, c.HQTFD.Valid()},
		{"echelon", offsetEchelon, c.Echelon.Valid()},
	}
	for _, chk := range checks {
		if !chk.ok {
			return Code{}, errors.WithHintf(
				errors.Wrapf(errors.ErrInvalidSIDC, "unknown %s code", chk.column),
				"check the %s column at offset %d", chk.column, chk.offset)
		}
	}
	return c, nil
}
