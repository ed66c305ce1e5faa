package am

import (
	"net/url"

	"github.com/teranos/milassist/errors"
)

// Validate checks the configuration. Zero means zero: a zero rate limit is
// "unlimited" and valid, while a zero port or timeout is an error. Nil
// pointers mean "use the default".
func (c *Config) Validate() error {
	if c.Server.Port != nil && *c.Server.Port == 0 {
		return errors.Newf("server.port cannot be 0 (omit for default port %d)", DefaultServerPort)
	}
	if c.Server.Port != nil && (*c.Server.Port < 0 || *c.Server.Port > 65535) {
		return errors.Newf("server.port must be between 1 and 65535, got %d", *c.Server.Port)
	}

	if c.Mapbox.TimeoutSeconds < 0 {
		return errors.Newf("mapbox.timeout_seconds must be >= 0, got %d", c.Mapbox.TimeoutSeconds)
	}
	if c.Mapbox.RequestsPerMinute < 0 {
		return errors.Newf("mapbox.requests_per_minute must be >= 0, got %d", c.Mapbox.RequestsPerMinute)
	}
	if c.Mapbox.BaseURL != "" {
		if err := validateURL("mapbox.base_url", c.Mapbox.BaseURL); err != nil {
			return err
		}
	}

	if t := c.OpenRouter.Temperature; t != nil && (*t < 0 || *t > 2) {
		return errors.Newf("openrouter.temperature must be between 0 and 2, got %g", *t)
	}
	if n := c.OpenRouter.MaxTokens; n != nil && *n <= 0 {
		return errors.Newf("openrouter.max_tokens must be > 0, got %d (omit for default)", *n)
	}
	if c.OpenRouter.BaseURL != "" {
		if err := validateURL("openrouter.base_url", c.OpenRouter.BaseURL); err != nil {
			return err
		}
	}

	if c.LocalInference.Enabled {
		if c.LocalInference.BaseURL == "" {
			return errors.New("local_inference.base_url cannot be empty when enabled")
		}
		if err := validateURL("local_inference.base_url", c.LocalInference.BaseURL); err != nil {
			return err
		}
		if c.LocalInference.Model == "" {
			return errors.New("local_inference.model cannot be empty when enabled")
		}
		if c.LocalInference.TimeoutSeconds <= 0 {
			return errors.Newf("local_inference.timeout_seconds must be > 0, got %d", c.LocalInference.TimeoutSeconds)
		}
	}

	if c.Command.TimeoutSeconds < 0 {
		return errors.Newf("command.timeout_seconds must be >= 0, got %d", c.Command.TimeoutSeconds)
	}
	if c.Command.RequestsPerMinute < 0 {
		return errors.Newf("command.requests_per_minute must be >= 0, got %d", c.Command.RequestsPerMinute)
	}

	return nil
}

func validateURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrapf(err, "%s is not a valid URL", key)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Newf("%s must be an http(s) URL, got %q", key, raw)
	}
	if u.Host == "" {
		return errors.Newf("%s is missing a host: %q", key, raw)
	}
	return nil
}
