package sidc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFunctionID(t *testing.T) {
	tests := []struct {
		name     string
		set      string
		category string
		want     string
		ok       bool
	}{
		{"exact", "Land Unit", "Infantry", "121100", true},
		{"exact by set key", "LAND_UNIT", "infantry", "121100", true},
		{"exact by set code", "10", "Infantry", "121100", true},
		{"input contains key", "Land Unit", "infantryman", "121100", true},
		{"alias armor", "Land Unit", "Armor", "120500", true},
		{"alias tank", "Land Unit", "tank", "120500", true},
		{"alias mp beats substring", "Land Unit", "MP", "141200", true},
		{"alias recon", "Land Unit", "Recon", "121300", true},
		{"alias artillery", "Land Unit", "Artillery", "130300", true},
		{"key contains input", "Land Unit", "Rotary Wing", "120600", true},
		{"multi word exact", "Land Unit", "Field Artillery", "130300", true},
		{"unknown unit", "Land Unit", "Unicorn Cavalry", "", false},
		{"empty category", "Land Unit", "", "", false},
		{"punctuation only", "Land Unit", "---", "", false},
		{"unknown set", "Narnia", "Infantry", "", false},
		{"empty catalog", "Air", "Infantry", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindFunctionID(tt.set, tt.category)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindFunctionID_TieBreaks(t *testing.T) {
	// "SPECIAL" is contained in SPECIAL_FORCES and SPECIAL_OPERATIONS_FORCES;
	// the shorter key wins.
	got, ok := FindFunctionID("Land Unit", "Special")
	require.True(t, ok)
	assert.Equal(t, "121700", got)

	// "COMBAT" is the exact key, not COMBINED_ARMS or a longer key containing it.
	got, ok = FindFunctionID("Land Unit", "combat")
	require.True(t, ok)
	assert.Equal(t, "120900", got)

	// Input containing several keys resolves to the longest one.
	got, ok = FindFunctionID("Land Unit", "mechanized field artillery battery")
	require.True(t, ok)
	assert.Equal(t, "130300", got)
}

func TestFindModifiers(t *testing.T) {
	code, ok := FindModifier1("Land Unit", "Attack")
	require.True(t, ok)
	assert.Equal(t, "03", code)

	code, ok = FindModifier2("Land Unit", "Heavy")
	require.True(t, ok)
	assert.Equal(t, "15", code)

	code, ok = FindModifier1("Land Unit", "EOD explosive ordnance disposal")
	require.True(t, ok)
	assert.Equal(t, "24", code)

	_, ok = FindModifier2("Land Unit", "Attack")
	assert.False(t, ok)

	_, ok = FindModifier1("Air", "Attack")
	assert.False(t, ok)
}

func TestFunctionIDName(t *testing.T) {
	assert.Equal(t, "Infantry", FunctionIDName("Land Unit", "121100"))
	assert.Equal(t, "Antitank Antiarmour", FunctionIDName("Land Unit", "120400"))
	assert.Equal(t, "CBRN", FunctionIDName("Land Unit", "140100"))
	assert.Equal(t, "Unknown Function", FunctionIDName("Land Unit", "000000"))
	assert.Equal(t, "Unknown Function", FunctionIDName("Land Unit", "999999"))
	assert.Equal(t, "Unknown Function", FunctionIDName("Narnia", "121100"))
}

func TestFunctionIDName_InvertsFindFunctionID(t *testing.T) {
	c, ok := CatalogFor("Land Unit")
	require.True(t, ok)
	for _, opt := range c.MainIcons() {
		code, ok := FindFunctionID("Land Unit", opt.Name)
		require.True(t, ok, opt.Name)
		assert.Equal(t, opt.Code, code, opt.Name)
		assert.Equal(t, opt.Name, FunctionIDName("Land Unit", code))
	}
}

func TestModifierName(t *testing.T) {
	assert.Equal(t, "Unspecified", ModifierName("Land Unit", 1, "00"))
	assert.Equal(t, "Attack", ModifierName("Land Unit", 1, "03"))
	assert.Equal(t, "Towed", ModifierName("Land Unit", 2, "47"))
	assert.Equal(t, "Unknown Modifier", ModifierName("Land Unit", 2, "03"))
	assert.Equal(t, "Unknown Modifier", ModifierName("Land Unit", 3, "01"))
}

func TestCatalogOptions(t *testing.T) {
	c, ok := CatalogFor("land unit")
	require.True(t, ok)
	opts := c.Options()

	assert.Equal(t, "Land Unit", opts.SymbolSet)
	assert.Equal(t, "10", opts.Code)
	require.Len(t, opts.MainIcons, 35)
	require.Len(t, opts.Modifier1, 25)
	require.Len(t, opts.Modifier2, 12)
	assert.Equal(t, UnspecifiedOption, opts.MainIcons[0])
	assert.Equal(t, Option{Name: "Command And Control", Code: "110000"}, opts.MainIcons[1])
	assert.Equal(t, Option{Name: "Amphibious", Code: "60"}, opts.Modifier2[11])

	air, ok := CatalogFor("Air")
	require.True(t, ok)
	assert.False(t, air.HasMainIcons())
	assert.Equal(t, []Option{UnspecifiedOption}, air.Options().MainIcons)
}

func TestDescribe(t *testing.T) {
	d, err := Describe("10031000161211000315")
	require.NoError(t, err)

	want := Description{
		SIDC:             "10031000161211000315",
		Context:          "Reality",
		StandardIdentity: "Friend",
		SymbolSet:        "Land Unit",
		Status:           "Present",
		HQTFD:            "Not Applicable",
		Echelon:          "Battalion",
		MainIconID:       "121100",
		MainIcon:         "Infantry",
		Modifier1Code:    "03",
		Modifier1:        "Attack",
		Modifier2Code:    "15",
		Modifier2:        "Heavy",
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("Describe mismatch (-want +got):\n%s", diff)
	}

	_, err = Describe("garbage")
	assert.Error(t, err)
}
