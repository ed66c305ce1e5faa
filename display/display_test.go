package display

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldOutputJSON(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	root.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "child"}
	root.AddCommand(child)

	t.Setenv(OutputEnv, "")
	assert.False(t, ShouldOutputJSON(child))

	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))

	t.Setenv(OutputEnv, "JSON")
	assert.True(t, ShouldOutputJSON(nil))
}

func TestMarshalJSON(t *testing.T) {
	t.Setenv(OutputEnv, "")
	pretty, err := MarshalJSON(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(pretty))

	t.Setenv(OutputEnv, "json")
	compact, err := MarshalJSON(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(compact))
}

func TestTable(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, []string{"Name", "Code"}, [][]string{{"Land Unit", "10"}}))
	assert.Contains(t, buf.String(), "Land Unit")
	assert.Contains(t, buf.String(), "Code")

	buf.Reset()
	require.NoError(t, KeyValues(&buf, [][2]string{{"SIDC", "10031000161211000000"}}))
	assert.Contains(t, buf.String(), "10031000161211000000")
}
