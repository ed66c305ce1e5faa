package sidc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Land Unit", "LAND_UNIT"},
		{"assumed friend", "ASSUMED_FRIEND"},
		{" Task  Force ", "TASK_FORCE"},
		{"Army Group/Front", "ARMY_GROUP_FRONT"},
		{"--Infantry--", "INFANTRY"},
		{"Réconnaissance", "RECONNAISSANCE"},
		{"", ""},
		{"   ", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Land Unit", "Army Group/Front", " a-b_c ", "Réconnaissance", "région/théâtre", "x__y"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Antitank Antiarmour", TitleCase("ANTITANK_ANTIARMOUR"))
	assert.Equal(t, "CBRN", TitleCase("CBRN"))
	assert.Equal(t, "Field Artillery", TitleCase("FIELD_ARTILLERY"))
	assert.Equal(t, "", TitleCase(""))
}
