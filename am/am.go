// Package am ("as minimal") holds milassist configuration: defaults, TOML
// files merged by precedence, MILASSIST_* environment overrides, validation
// and a file watcher for hot reload.
package am

// Config is the full milassist configuration.
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Mapbox         MapboxConfig         `mapstructure:"mapbox"`
	OpenRouter     OpenRouterConfig     `mapstructure:"openrouter"`
	LocalInference LocalInferenceConfig `mapstructure:"local_inference"`
	Command        CommandConfig        `mapstructure:"command"`
	Log            LogConfig            `mapstructure:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           *int     `mapstructure:"port"` // nil = DefaultServerPort, 0 is invalid
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Dev            bool     `mapstructure:"dev"` // permissive CORS for local front-end work
}

// Server port constants
const (
	DefaultServerPort  = 9002 // matches the front-end dev proxy
	FallbackServerPort = 9003
)

// MapboxConfig configures the geocoder.
type MapboxConfig struct {
	AccessToken    string `mapstructure:"access_token"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	// RequestsPerMinute caps outbound geocoding calls; 0 = unlimited.
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
}

// OpenRouterConfig configures OpenRouter.ai API access.
type OpenRouterConfig struct {
	APIKey      string   `mapstructure:"api_key"`
	Model       string   `mapstructure:"model"`
	BaseURL     string   `mapstructure:"base_url"`
	Temperature *float64 `mapstructure:"temperature"` // nil = default 0.2
	MaxTokens   *int     `mapstructure:"max_tokens"`  // nil = default 1000
}

// LocalInferenceConfig configures an OpenAI-compatible local server
// (Ollama, LocalAI) used instead of OpenRouter when enabled.
type LocalInferenceConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BaseURL        string `mapstructure:"base_url"` // e.g. "http://localhost:11434"
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// CommandConfig configures the natural-language command pipeline.
type CommandConfig struct {
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute"` // inbound limit on /api/command; 0 = unlimited
	DefaultSymbolSet  string `mapstructure:"default_symbol_set"`
}

// LogConfig configures logging output.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)
