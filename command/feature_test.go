package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/milassist/errors"
)

func TestDecodeFeature_Symbol(t *testing.T) {
	raw := "```json\n" + `{"type":"symbol","data":{"symbolStandardIdentity":"Hostile","symbolSet":"Land Unit","symbolCategory":"Armored","symbolEchelon":"Company","latitude":31.5,"longitude":74.3,"aiLabel":"Task Force Bravo Extra Long Name","speed":"120 km/h and rising"}}` + "\n```"

	f, err := DecodeFeature([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, KindSymbol, f.Kind)
	require.NotNil(t, f.Symbol)
	assert.Nil(t, f.Route)
	assert.Equal(t, "Hostile", f.Symbol.StandardIdentity)
	assert.Equal(t, "Task Force Bravo Extr", f.Symbol.AILabel)
	assert.Equal(t, "120 km/h", f.Symbol.Speed)
	assert.InDelta(t, 31.5, *f.Symbol.Latitude, 1e-9)
}

func TestDecodeFeature_BareSymbol(t *testing.T) {
	f, err := DecodeFeature([]byte(`Here you go: {"symbolStandardIdentity":"Friend","symbolSet":"Land Unit","symbolCategory":"Infantry","type":"M1 Abrams","locationName":"Lahore"}`))
	require.NoError(t, err)
	assert.Equal(t, KindSymbol, f.Kind)
	assert.Equal(t, "M1 Abrams", f.Symbol.Type)
	assert.Equal(t, "Lahore", f.Symbol.LocationName)
	assert.False(t, f.Symbol.HasCoordinates())
}

func TestDecodeFeature_Route(t *testing.T) {
	f, err := DecodeFeature([]byte(`{"type":"route","data":{"startLocationName":" Paris ","endLocationName":"Berlin","pathType":"Axis of Advance"}}`))
	require.NoError(t, err)
	assert.Equal(t, KindRoute, f.Kind)
	assert.Equal(t, "Paris", f.Route.StartLocationName)
	assert.Equal(t, "Axis of Advance", f.Route.PathType)
}

func TestDecodeFeature_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", "empty model output"},
		{"not json", "I cannot help with that.", "not a JSON object"},
		{"empty object", `{}`, "symbolStandardIdentity"},
		{"unknown kind", `{"type":"polygon","data":{}}`, "unrecognized feature type"},
		{"bad identity", `{"type":"symbol","data":{"symbolStandardIdentity":"Enemy","symbolSet":"Land Unit","symbolCategory":"Infantry","latitude":1,"longitude":2}}`, "symbolStandardIdentity"},
		{"bad echelon", `{"type":"symbol","data":{"symbolStandardIdentity":"Friend","symbolSet":"Land Unit","symbolCategory":"Infantry","symbolEchelon":"Legion","latitude":1,"longitude":2}}`, "symbolEchelon"},
		{"no category", `{"type":"symbol","data":{"symbolStandardIdentity":"Friend","symbolSet":"Land Unit","latitude":1,"longitude":2}}`, "symbolCategory"},
		{"route missing end", `{"type":"route","data":{"startLocationName":"Paris"}}`, "endLocationName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFeature([]byte(tt.raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeFeature_NoPosition(t *testing.T) {
	_, err := DecodeFeature([]byte(`{"type":"symbol","data":{"symbolStandardIdentity":"Friend","symbolSet":"Land Unit","symbolCategory":"Infantry"}}`))
	assert.True(t, errors.Is(err, errors.ErrNoCoordinates))
}

func TestAmplifiers_Truncate(t *testing.T) {
	a := Amplifiers{
		ReinforcedReduced: "(+)",
		EvaluationRating:  "A1B",
		HigherFormation:   strings.Repeat("x", 30),
		Direction:         " 045 ",
	}
	a.Truncate()
	assert.Equal(t, "(", a.ReinforcedReduced)
	assert.Equal(t, "A1", a.EvaluationRating)
	assert.Len(t, a.HigherFormation, 21)
	assert.Equal(t, "045", a.Direction)
	assert.Len(t, a.limits(), 22)
}

func TestSymbolData_Record(t *testing.T) {
	tests := []struct {
		name string
		in   SymbolData
		want string
	}{
		{
			name: "labels resolved",
			in:   SymbolData{StandardIdentity: "Friend", SymbolSet: "Land Unit", SymbolCategory: "Infantry", Echelon: "Battalion", Modifier1: "Attack", Modifier2: "Heavy"},
			want: "10031000161211000315",
		},
		{
			name: "american spelling",
			in:   SymbolData{StandardIdentity: "Hostile", SymbolSet: "Land Unit", SymbolCategory: "armored", Echelon: "Company"},
			want: "10061000151205000000",
		},
		{
			name: "airborne becomes infantry with modifier",
			in:   SymbolData{StandardIdentity: "Friend", SymbolSet: "Land Unit", SymbolCategory: "Airborne"},
			want: "10031000001211000001",
		},
		{
			name: "explicit codes kept",
			in:   SymbolData{StandardIdentity: "Friend", SymbolCategory: "whatever", MainIconID: "130300", Modifier1: "41", Modifier2: "47"},
			want: "10031000001303004147",
		},
		{
			name: "long explicit icon truncated",
			in:   SymbolData{StandardIdentity: "Friend", SymbolCategory: "Infantry", MainIconID: "1234567890"},
			want: "10031000001234560000",
		},
		{
			name: "zero icon falls back to category",
			in:   SymbolData{StandardIdentity: "Friend", SymbolCategory: "Infantry", MainIconID: "000000"},
			want: "10031000001211000000",
		},
		{
			name: "non-digit icon falls back to category",
			in:   SymbolData{StandardIdentity: "Friend", SymbolCategory: "Infantry", MainIconID: "abc"},
			want: "10031000001211000000",
		},
		{
			name: "unknown category",
			in:   SymbolData{StandardIdentity: "Friend", SymbolSet: "Land Unit", SymbolCategory: "Unicorn Cavalry"},
			want: "10031000000000000000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.in.Record()
			assert.Equal(t, tt.want, r.Code().String())
		})
	}
}
