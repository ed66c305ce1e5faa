package am

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/teranos/milassist/errors"
)

// Output formats for Render.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// sensitiveKeys are masked by Settings unless reveal is set.
var sensitiveKeys = map[string]bool{
	"mapbox.access_token": true,
	"openrouter.api_key":  true,
}

const masked = "********"

// Settings returns the effective settings of v as a nested map with
// secrets masked.
func Settings(v *viper.Viper, reveal bool) map[string]interface{} {
	all := v.AllSettings()
	if !reveal {
		for key := range sensitiveKeys {
			maskKey(all, strings.Split(key, "."))
		}
	}
	return all
}

func maskKey(m map[string]interface{}, path []string) {
	if len(path) == 1 {
		if s, ok := m[path[0]].(string); ok && s != "" {
			m[path[0]] = masked
		}
		return
	}
	child, ok := m[path[0]].(map[string]interface{})
	if !ok {
		return
	}
	maskKey(child, path[1:])
}

// Render encodes settings as toml, json or yaml.
func Render(settings map[string]interface{}, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatTOML, "":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(settings); err != nil {
			return nil, errors.Wrap(err, "failed to encode toml")
		}
		return buf.Bytes(), nil
	case FormatJSON:
		out, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode json")
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(settings)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode yaml")
		}
		return out, nil
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown format %q", format),
			"use one of: toml, json, yaml")
	}
}

// Keys lists every dotted key known to v, sorted.
func Keys(v *viper.Viper) []string {
	keys := v.AllKeys()
	sort.Strings(keys)
	return keys
}

// IsSensitive reports whether key holds a secret.
func IsSensitive(key string) bool {
	return sensitiveKeys[strings.ToLower(key)]
}
