package command

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/sidc"
)

// Kind discriminates the Feature union.
type Kind string

const (
	KindSymbol Kind = "symbol"
	KindRoute  Kind = "route"
)

// Feature is what the LLM extracts from a command: exactly one of Symbol or
// Route is set, matching Kind.
type Feature struct {
	Kind   Kind
	Symbol *SymbolData
	Route  *RouteData
}

// Amplifiers are the free-text fields drawn around a symbol. Values longer
// than their maximum are truncated on decode.
type Amplifiers struct {
	AdditionalInformation string `json:"additionalInformation,omitempty"`
	AltitudeDepth         string `json:"altitudeDepth,omitempty"`
	CombatEffectiveness   string `json:"combatEffectiveness,omitempty"`
	CommonIdentifier      string `json:"commonIdentifier,omitempty"`
	Direction             string `json:"direction,omitempty"`
	DTG                   string `json:"dtg,omitempty"`
	EquipmentTeardownTime string `json:"equipmentTeardownTime,omitempty"`
	EvaluationRating      string `json:"evaluationRating,omitempty"`
	HeadquartersElement   string `json:"headquartersElement,omitempty"`
	HigherFormation       string `json:"higherFormation,omitempty"`
	Hostile               string `json:"hostile,omitempty"`
	IFFSIF                string `json:"iffSif,omitempty"`
	Location              string `json:"location,omitempty"`
	PlatformType          string `json:"platformType,omitempty"`
	Quantity              string `json:"quantity,omitempty"`
	ReinforcedReduced     string `json:"reinforcedReduced,omitempty"`
	SignatureEquipment    string `json:"signatureEquipment,omitempty"`
	SpecialHeadquarters   string `json:"specialHeadquarters,omitempty"`
	Speed                 string `json:"speed,omitempty"`
	StaffComments         string `json:"staffComments,omitempty"`
	Type                  string `json:"type,omitempty"`
	UniqueDesignation     string `json:"uniqueDesignation,omitempty"`
}

// MaxAILabel is the longest label accepted for a unit designation.
const MaxAILabel = 21

func (a *Amplifiers) limits() []struct {
	field *string
	max   int
} {
	return []struct {
		field *string
		max   int
	}{
		{&a.AdditionalInformation, 20},
		{&a.AltitudeDepth, 14},
		{&a.CombatEffectiveness, 5},
		{&a.CommonIdentifier, 12},
		{&a.Direction, 4},
		{&a.DTG, 16},
		{&a.EquipmentTeardownTime, 3},
		{&a.EvaluationRating, 2},
		{&a.HeadquartersElement, 4},
		{&a.HigherFormation, 21},
		{&a.Hostile, 3},
		{&a.IFFSIF, 5},
		{&a.Location, 19},
		{&a.PlatformType, 10},
		{&a.Quantity, 9},
		{&a.ReinforcedReduced, 1},
		{&a.SignatureEquipment, 1},
		{&a.SpecialHeadquarters, 9},
		{&a.Speed, 8},
		{&a.StaffComments, 20},
		{&a.Type, 24},
		{&a.UniqueDesignation, 21},
	}
}

// Truncate clips every amplifier to its maximum length in runes.
func (a *Amplifiers) Truncate() {
	for _, l := range a.limits() {
		*l.field = truncate(strings.TrimSpace(*l.field), l.max)
	}
}

// SymbolData is a single unit placed on the map. Enumerated fields hold
// display labels ("Friend", "Battalion"); MainIconID and the modifiers may
// also carry codes directly.
type SymbolData struct {
	Context          string   `json:"context,omitempty"`
	StandardIdentity string   `json:"symbolStandardIdentity"`
	SymbolSet        string   `json:"symbolSet"`
	SymbolCategory   string   `json:"symbolCategory"`
	Status           string   `json:"status,omitempty"`
	HQTFD            string   `json:"hqtfd,omitempty"`
	Echelon          string   `json:"symbolEchelon,omitempty"`
	Modifier1        string   `json:"modifier1,omitempty"`
	Modifier2        string   `json:"modifier2,omitempty"`
	MainIconID       string   `json:"mainIconId,omitempty"`
	AILabel          string   `json:"aiLabel,omitempty"`
	LocationName     string   `json:"locationName,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Amplifiers
}

// HasCoordinates reports whether both latitude and longitude are present.
func (d *SymbolData) HasCoordinates() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// SetCoordinates stores a position.
func (d *SymbolData) SetCoordinates(lat, lng float64) {
	d.Latitude, d.Longitude = &lat, &lng
}

// Record converts the labels into a codec record. Categories and modifiers
// are resolved against the symbol set catalog; misses become zero codes so
// the SIDC stays drawable as a frame.
func (d *SymbolData) Record() sidc.Record {
	set := d.SymbolSet
	if set == "" {
		set = sidc.SymbolSetLandUnit.String()
	}

	r := sidc.Record{
		Context:          d.Context,
		StandardIdentity: d.StandardIdentity,
		SymbolSet:        set,
		Status:           d.Status,
		HQTFD:            d.HQTFD,
		Echelon:          d.Echelon,
		MainIconID:       "000000",
		Modifier1:        "00",
		Modifier2:        "00",
	}

	// Explicit digit codes win over the category; Generate fits them to six
	// columns, so "1234567890" becomes "123456".
	if icon := strings.TrimSpace(d.MainIconID); isDigits(icon, len(icon)) && strings.Trim(icon, "0") != "" {
		r.MainIconID = icon
	} else if id, ok := sidc.FindFunctionID(set, d.SymbolCategory); ok {
		r.MainIconID = id
	}

	r.Modifier1 = resolveModifier(d.Modifier1, func(s string) (string, bool) { return sidc.FindModifier1(set, s) })
	r.Modifier2 = resolveModifier(d.Modifier2, func(s string) (string, bool) { return sidc.FindModifier2(set, s) })

	// "Airborne" resolves to the infantry icon; the airborne part lives in
	// sector 2.
	if r.Modifier2 == "00" && sidc.Normalize(d.SymbolCategory) == "AIRBORNE" {
		if code, ok := sidc.FindModifier2(set, "Airborne"); ok {
			r.Modifier2 = code
		}
	}
	return r
}

func resolveModifier(v string, find func(string) (string, bool)) string {
	v = strings.TrimSpace(v)
	if isDigits(v, 2) {
		return v
	}
	if code, ok := find(v); ok {
		return code
	}
	return "00"
}

// RouteData is a path between two named places.
type RouteData struct {
	StartLocationName string `json:"startLocationName"`
	EndLocationName   string `json:"endLocationName"`
	PathType          string `json:"pathType,omitempty"`
	UnitInfo          string `json:"unitInfo,omitempty"`
}

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// DecodeFeature parses LLM output into a Feature. It accepts the tagged form
// {"type":"symbol","data":{...}}, bare symbol data, and either of those
// inside a ```json fence. Enumerated labels must be known values; amplifiers
// are truncated.
func DecodeFeature(raw []byte) (Feature, error) {
	raw = stripFence(raw)
	if len(raw) == 0 {
		return Feature{}, errors.Wrap(errors.ErrInvalidRequest, "empty model output")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Feature{}, errors.Wrap(err, "model output is not a JSON object")
	}

	switch Kind(strings.ToLower(env.Type)) {
	case KindSymbol:
		return decodeSymbol(env.Data)
	case KindRoute:
		return decodeRoute(env.Data)
	case "":
		return decodeSymbol(raw)
	default:
		if len(env.Data) > 0 {
			return Feature{}, errors.Newf("unrecognized feature type %q", env.Type)
		}
		// Bare symbol data whose "type" is the equipment amplifier.
		return decodeSymbol(raw)
	}
}

func decodeSymbol(raw json.RawMessage) (Feature, error) {
	if len(raw) == 0 {
		return Feature{}, errors.New("symbol feature has no data")
	}
	var d SymbolData
	if err := json.Unmarshal(raw, &d); err != nil {
		return Feature{}, errors.Wrap(err, "invalid symbol data")
	}
	if err := d.validate(); err != nil {
		return Feature{}, err
	}
	d.Truncate()
	d.AILabel = truncate(strings.TrimSpace(d.AILabel), MaxAILabel)
	return Feature{Kind: KindSymbol, Symbol: &d}, nil
}

func (d *SymbolData) validate() error {
	if _, ok := sidc.ParseStandardIdentity(d.StandardIdentity); !ok {
		return errors.Newf("invalid symbolStandardIdentity %q", d.StandardIdentity)
	}
	if strings.TrimSpace(d.SymbolSet) == "" {
		return errors.New("symbolSet is required")
	}
	if _, ok := sidc.ParseSymbolSet(d.SymbolSet); !ok {
		return errors.Newf("invalid symbolSet %q", d.SymbolSet)
	}
	if strings.TrimSpace(d.SymbolCategory) == "" {
		return errors.New("symbolCategory is required")
	}
	optional := []struct {
		name, value string
		ok          func(string) bool
	}{
		{"context", d.Context, func(s string) bool { _, ok := sidc.ParseContext(s); return ok }},
		{"status", d.Status, func(s string) bool { _, ok := sidc.ParseStatus(s); return ok }},
		{"hqtfd", d.HQTFD, func(s string) bool { _, ok := sidc.ParseHQTFD(s); return ok }},
		{"symbolEchelon", d.Echelon, func(s string) bool { _, ok := sidc.ParseEchelon(s); return ok }},
	}
	for _, f := range optional {
		if f.value != "" && !f.ok(f.value) {
			return errors.Newf("invalid %s %q", f.name, f.value)
		}
	}
	if !d.HasCoordinates() && strings.TrimSpace(d.LocationName) == "" {
		return errors.Wrap(errors.ErrNoCoordinates, "symbol has neither coordinates nor a location name")
	}
	return nil
}

func decodeRoute(raw json.RawMessage) (Feature, error) {
	if len(raw) == 0 {
		return Feature{}, errors.New("route feature has no data")
	}
	var r RouteData
	if err := json.Unmarshal(raw, &r); err != nil {
		return Feature{}, errors.Wrap(err, "invalid route data")
	}
	r.StartLocationName = strings.TrimSpace(r.StartLocationName)
	r.EndLocationName = strings.TrimSpace(r.EndLocationName)
	if r.StartLocationName == "" || r.EndLocationName == "" {
		return Feature{}, errors.New("route needs both startLocationName and endLocationName")
	}
	return Feature{Kind: KindRoute, Route: &r}, nil
}

// stripFence removes a surrounding markdown code fence and any prose before
// the first brace.
func stripFence(raw []byte) []byte {
	s := bytes.TrimSpace(raw)
	if bytes.HasPrefix(s, []byte("```")) {
		s = s[3:]
		if nl := bytes.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		}
		if end := bytes.LastIndex(s, []byte("```")); end >= 0 {
			s = s[:end]
		}
		s = bytes.TrimSpace(s)
	}
	if start, end := bytes.IndexByte(s, '{'), bytes.LastIndexByte(s, '}'); start > 0 && end > start {
		s = s[start : end+1]
	}
	return s
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
