package am

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teranos/milassist/internal/util"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated instance: no user/system/project files.
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.GetServerPort())
	assert.Equal(t, DefaultMapboxBaseURL, cfg.Mapbox.BaseURL)
	assert.Equal(t, DefaultOpenRouterModel, cfg.OpenRouter.Model)
	require.NotNil(t, cfg.OpenRouter.Temperature)
	assert.Equal(t, 0.2, *cfg.OpenRouter.Temperature)
	require.NotNil(t, cfg.OpenRouter.MaxTokens)
	assert.Equal(t, 1000, *cfg.OpenRouter.MaxTokens)
	assert.False(t, cfg.LocalInference.Enabled)
	assert.Equal(t, "Land Unit", cfg.GetDefaultSymbolSet())
	assert.Equal(t, 60*time.Second, cfg.GetCommandTimeout())
	assert.Equal(t, 10*time.Second, cfg.GetMapboxTimeout())
	assert.NoError(t, cfg.Validate())
}

func TestZeroValueGetters(t *testing.T) {
	var cfg Config
	assert.Equal(t, DefaultServerPort, cfg.GetServerPort())
	assert.NotEmpty(t, cfg.GetServerAllowedOrigins())
	assert.Equal(t, DefaultMapboxBaseURL, cfg.GetMapboxBaseURL())
	assert.Equal(t, DefaultSymbolSet, cfg.GetDefaultSymbolSet())
	assert.Equal(t, "openrouter", cfg.LLMProviderName())
	assert.NotContains(t, cfg.String(), "token")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"zero config is valid", Config{}, ""},
		{"zero port is invalid", Config{Server: ServerConfig{Port: util.Ptr(0)}}, "server.port cannot be 0"},
		{"negative port", Config{Server: ServerConfig{Port: util.Ptr(-1)}}, "server.port"},
		{"port too large", Config{Server: ServerConfig{Port: util.Ptr(70000)}}, "server.port"},
		{"zero rate limit is unlimited", Config{Command: CommandConfig{RequestsPerMinute: 0}}, ""},
		{"negative rate limit", Config{Command: CommandConfig{RequestsPerMinute: -1}}, "command.requests_per_minute"},
		{"negative mapbox rate", Config{Mapbox: MapboxConfig{RequestsPerMinute: -5}}, "mapbox.requests_per_minute"},
		{"bad mapbox url", Config{Mapbox: MapboxConfig{BaseURL: "ftp://x"}}, "mapbox.base_url"},
		{"temperature too hot", Config{OpenRouter: OpenRouterConfig{Temperature: util.Ptr(3.0)}}, "openrouter.temperature"},
		{"zero max tokens", Config{OpenRouter: OpenRouterConfig{MaxTokens: util.Ptr(0)}}, "openrouter.max_tokens"},
		{"local enabled without url", Config{LocalInference: LocalInferenceConfig{Enabled: true, Model: "m", TimeoutSeconds: 1}}, "local_inference.base_url"},
		{"local enabled without model", Config{LocalInference: LocalInferenceConfig{Enabled: true, BaseURL: "http://localhost:11434", TimeoutSeconds: 1}}, "local_inference.model"},
		{"local enabled zero timeout", Config{LocalInference: LocalInferenceConfig{Enabled: true, BaseURL: "http://localhost:11434", Model: "m"}}, "local_inference.timeout_seconds"},
		{"local disabled ignores fields", Config{LocalInference: LocalInferenceConfig{Enabled: false}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")
	content := `
[server]
port = 8080
allowed_origins = ["https://planner.example.com"]

[mapbox]
access_token = "pk.test"

[command]
default_symbol_set = "Air"
`
	require.NoError(t, os.WriteFile(path, []byte(content), DefaultFilePermissions))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.GetServerPort())
	assert.Equal(t, []string{"https://planner.example.com"}, cfg.GetServerAllowedOrigins())
	assert.Equal(t, "pk.test", cfg.Mapbox.AccessToken)
	assert.Equal(t, "Air", cfg.GetDefaultSymbolSet())
	assert.Equal(t, DefaultOpenRouterModel, cfg.OpenRouter.Model, "defaults survive")
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestMergeConfigFiles_Precedence(t *testing.T) {
	dir := t.TempDir()
	low := filepath.Join(dir, "system.toml")
	high := filepath.Join(dir, "project.toml")
	require.NoError(t, os.WriteFile(low, []byte("[server]\nport = 1111\ndev = true\n"), DefaultFilePermissions))
	require.NoError(t, os.WriteFile(high, []byte("[server]\nport = 2222\n"), DefaultFilePermissions))

	v := viper.New()
	SetDefaults(v)
	mergeConfigFiles(v, []string{low, filepath.Join(dir, "missing.toml"), high})

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, 2222, cfg.GetServerPort())
	assert.True(t, cfg.Server.Dev, "keys absent from the higher file keep the lower value")
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("MILASSIST_SERVER_PORT", "7000")
	t.Setenv("OPENROUTER_API_KEY", "sk-env")
	t.Setenv("NEXT_PUBLIC_MAPBOX_ACCESS_TOKEN", "pk-env")

	Reset()
	t.Cleanup(Reset)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.GetServerPort())
	assert.Equal(t, "sk-env", cfg.OpenRouter.APIKey)
	assert.Equal(t, "pk-env", cfg.Mapbox.AccessToken)
}

func TestFindConfigUpwards(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, DefaultDirPermissions))

	assert.Equal(t, "", findConfigUpwards(sub))

	path := filepath.Join(root, "a", "am.toml")
	require.NoError(t, os.WriteFile(path, nil, DefaultFilePermissions))
	assert.Equal(t, path, findConfigUpwards(sub))
}

func TestSettingsAndRender(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("openrouter.api_key", "sk-secret")

	settings := Settings(v, false)
	out, err := Render(settings, FormatJSON)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "sk-secret")
	assert.Contains(t, string(out), masked)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "server")

	out, err = Render(Settings(v, true), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "sk-secret")
	var y map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &y))

	out, err = Render(settings, FormatTOML)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), "[openrouter]"), string(out))

	_, err = Render(settings, "xml")
	assert.Error(t, err)
}

func TestKeysAndSensitivity(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	keys := Keys(v)
	assert.Contains(t, keys, "server.port")
	assert.IsIncreasing(t, keys)
	assert.True(t, IsSensitive("OpenRouter.API_Key"))
	assert.False(t, IsSensitive("server.port"))
}
