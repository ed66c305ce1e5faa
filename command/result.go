package command

import (
	"encoding/json"

	"github.com/teranos/milassist/geocode"
	"github.com/teranos/milassist/sidc"
)

// Result is either a SymbolResult or a RouteResult. It marshals as the
// populated variant.
type Result struct {
	Kind   Kind
	Symbol *SymbolResult
	Route  *RouteResult
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindSymbol:
		return json.Marshal(r.Symbol)
	case KindRoute:
		return json.Marshal(r.Route)
	}
	return []byte("null"), nil
}

// SymbolResult carries a GeoJSON point and the symbol it stands for.
type SymbolResult struct {
	Type     Kind          `json:"type"`
	Feature  GeoFeature    `json:"feature"`
	Metadata SymbolDetails `json:"metadata"`
}

// GeoFeature is a GeoJSON Feature with Point geometry.
type GeoFeature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// Geometry holds [lng, lat].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type FeatureProperties struct {
	ID         string `json:"id"`
	SIDC       string `json:"sidc"`
	MainIconID string `json:"mainIconId"`
}

// SymbolDetails is the extracted symbol plus everything derived from it.
type SymbolDetails struct {
	SymbolData
	SIDC         string              `json:"sidc"`
	Valid        bool                `json:"sidcValid"`
	FunctionName string              `json:"functionName"`
	Render       sidc.SymbolMetadata `json:"render"`
	Stage        Stage               `json:"stage"`
}

// RouteResult is a geocoded path.
type RouteResult struct {
	Type Kind            `json:"type"`
	Data RouteResultData `json:"data"`
}

type RouteResultData struct {
	Start    geocode.Point `json:"start"`
	End      geocode.Point `json:"end"`
	PathType string        `json:"pathType,omitempty"`
	UnitInfo string        `json:"unitInfo,omitempty"`
}
