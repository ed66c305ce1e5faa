package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/command"
	"github.com/teranos/milassist/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MILASSIST_OUTPUT", "")
	am.Reset()
	t.Cleanup(am.Reset)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncode(t *testing.T) {
	out, err := run(t, "encode", "--json", "--identity", "Friend", "--echelon", "Battalion", "--category", "Infantry")
	require.NoError(t, err)

	var got struct {
		SIDC  string `json:"sidc"`
		Valid bool   `json:"valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "10031000161211000000", got.SIDC)
	assert.True(t, got.Valid)
}

func TestEncode_Table(t *testing.T) {
	out, err := run(t, "encode", "--identity", "hostile", "--category", "armour")
	require.NoError(t, err)
	assert.Contains(t, out, "10061000001205000000")
}

func TestEncode_LongIconTruncated(t *testing.T) {
	out, err := run(t, "encode", "--identity", "Friend", "--category", "Infantry", "--icon", "1234567890")
	require.NoError(t, err)
	assert.Contains(t, out, "10031000001234560000")
	assert.Contains(t, out, "123456 Unknown Function")
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "--json", "10031000161211000000")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Friend", got["standardIdentity"])
	assert.Equal(t, "Land Unit", got["symbolSet"])
	assert.Equal(t, "Battalion", got["echelon"])
	assert.Equal(t, "121100", got["mainIconId"])
}

func TestDecode_Invalid(t *testing.T) {
	_, err := run(t, "decode", "1003")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "10031000161211000000")
	require.NoError(t, err)
	assert.Contains(t, out, "drawable")

	_, err = run(t, "validate", "not-a-sidc")
	require.Error(t, err)
}

func TestResolveAndName(t *testing.T) {
	out, err := run(t, "resolve", "--json", "Land Unit", "infantry")
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "121100", got["functionId"])

	out, err = run(t, "name", "Land Unit", "121100")
	require.NoError(t, err)
	assert.Equal(t, "Infantry\n", out)

	_, err = run(t, "resolve", "Land Unit", "zzzz-nothing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSymbolSets(t *testing.T) {
	out, err := run(t, "symbolsets", "--json")
	require.NoError(t, err)
	var sets []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &sets))
	assert.Len(t, sets, 21)

	out, err = run(t, "symbolsets", "--json", "Land Unit")
	require.NoError(t, err)
	var opts struct {
		MainIcons []map[string]string `json:"mainIcons"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &opts))
	assert.Len(t, opts.MainIcons, 35)

	_, err = run(t, "symbolsets", "Atlantis")
	require.Error(t, err)
}

func TestCommand(t *testing.T) {
	orig := processFunc
	t.Cleanup(func() { processFunc = orig })

	var gotText string
	processFunc = func(ctx context.Context, cfg *am.Config, text string) (*command.Result, error) {
		gotText = text
		return command.NewProcessor(command.Options{}).Process(ctx, text)
	}

	out, err := run(t, "command", "--json", "friendly", "infantry", "platoon")
	require.NoError(t, err)
	assert.Equal(t, "friendly infantry platoon", gotText)
	assert.Contains(t, out, `"sidc"`)

	processFunc = func(ctx context.Context, cfg *am.Config, text string) (*command.Result, error) {
		return nil, errors.Mark(errors.New("upstream 503"), errors.ErrModelBusy)
	}
	_, err = run(t, "command", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currently busy")
}

func TestAm(t *testing.T) {
	out, err := run(t, "am", "get", "command.default_symbol_set")
	require.NoError(t, err)
	assert.Equal(t, "Land Unit\n", out)

	_, err = run(t, "am", "get", "no.such.key")
	require.Error(t, err)

	t.Setenv("OPENROUTER_API_KEY", "sk-secret")
	out, err = run(t, "am", "show", "--format", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "sk-secret")
	assert.Contains(t, out, "********")

	out, err = run(t, "am", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dev", got["version"])
}
