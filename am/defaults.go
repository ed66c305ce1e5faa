package am

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Default values shared with the clients that consume them.
const (
	DefaultMapboxBaseURL     = "https://api.mapbox.com"
	DefaultOpenRouterModel   = "openai/gpt-4o-mini"
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultSymbolSet         = "Land Unit"
)

var defaultAllowedOrigins = []string{
	"http://localhost",
	"https://localhost",
	"http://127.0.0.1",
	"https://127.0.0.1",
	"http://localhost:3000",
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", defaultAllowedOrigins)
	v.SetDefault("server.dev", false)

	v.SetDefault("mapbox.base_url", DefaultMapboxBaseURL)
	v.SetDefault("mapbox.timeout_seconds", 10)
	v.SetDefault("mapbox.requests_per_minute", 600) // Mapbox free tier ceiling

	v.SetDefault("openrouter.model", DefaultOpenRouterModel)
	v.SetDefault("openrouter.base_url", DefaultOpenRouterBaseURL)
	v.SetDefault("openrouter.temperature", 0.2)
	v.SetDefault("openrouter.max_tokens", 1000)

	v.SetDefault("local_inference.enabled", false)
	v.SetDefault("local_inference.base_url", "http://localhost:11434")
	v.SetDefault("local_inference.model", "llama3.2:3b")
	v.SetDefault("local_inference.timeout_seconds", 120)

	v.SetDefault("command.timeout_seconds", 60)
	v.SetDefault("command.requests_per_minute", 30)
	v.SetDefault("command.default_symbol_set", DefaultSymbolSet)

	v.SetDefault("log.json", false)
}

// BindSensitiveEnvVars binds secrets explicitly, including the variable
// names the web front end already uses.
func BindSensitiveEnvVars(v *viper.Viper) {
	_ = v.BindEnv("mapbox.access_token", "MILASSIST_MAPBOX_ACCESS_TOKEN", "NEXT_PUBLIC_MAPBOX_ACCESS_TOKEN", "MAPBOX_ACCESS_TOKEN")
	_ = v.BindEnv("openrouter.api_key", "MILASSIST_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	_ = v.BindEnv("local_inference.enabled", "MILASSIST_LOCAL_INFERENCE_ENABLED")
	_ = v.BindEnv("local_inference.base_url", "MILASSIST_LOCAL_INFERENCE_BASE_URL")
	_ = v.BindEnv("local_inference.model", "MILASSIST_LOCAL_INFERENCE_MODEL")
}

// GetServerPort returns server.port or DefaultServerPort.
func (c *Config) GetServerPort() int {
	if c.Server.Port == nil {
		return DefaultServerPort
	}
	return *c.Server.Port
}

// GetServerAllowedOrigins returns the CORS allow-list.
func (c *Config) GetServerAllowedOrigins() []string {
	if len(c.Server.AllowedOrigins) == 0 {
		return append([]string(nil), defaultAllowedOrigins...)
	}
	return c.Server.AllowedOrigins
}

// GetMapboxBaseURL returns mapbox.base_url or the public API.
func (c *Config) GetMapboxBaseURL() string {
	if c.Mapbox.BaseURL == "" {
		return DefaultMapboxBaseURL
	}
	return c.Mapbox.BaseURL
}

// GetMapboxTimeout returns the geocoding timeout (default 10s).
func (c *Config) GetMapboxTimeout() time.Duration {
	return secondsOr(c.Mapbox.TimeoutSeconds, 10)
}

// GetCommandTimeout bounds a whole command pipeline run (default 60s).
func (c *Config) GetCommandTimeout() time.Duration {
	return secondsOr(c.Command.TimeoutSeconds, 60)
}

// GetDefaultSymbolSet returns the symbol set used when the LLM omits one.
func (c *Config) GetDefaultSymbolSet() string {
	if c.Command.DefaultSymbolSet == "" {
		return DefaultSymbolSet
	}
	return c.Command.DefaultSymbolSet
}

func secondsOr(n, def int) time.Duration {
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

// String returns a short summary without secrets.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Server: {Port: %d}, LLM: %s, Mapbox: {Configured: %t}}",
		c.GetServerPort(), c.LLMProviderName(), c.Mapbox.AccessToken != "")
}

// LLMProviderName is "local" or "openrouter", whichever the factory will pick.
func (c *Config) LLMProviderName() string {
	if c.LocalInference.Enabled {
		return "local"
	}
	return "openrouter"
}
