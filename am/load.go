package am

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/milassist/errors"
)

// EnvPrefix is the prefix of every environment override (MILASSIST_SERVER_PORT).
const EnvPrefix = "MILASSIST"

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads configuration once and caches it.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViperLocked())
	if err != nil {
		return nil, err
	}
	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the shared Viper instance.
func GetViper() *viper.Viper {
	mu.Lock()
	defer mu.Unlock()
	return initViperLocked()
}

// LoadWithViper unmarshals v into a Config.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads defaults plus one TOML file, ignoring the environment.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config from %s", configPath)
	}
	return cfg, nil
}

// Reset clears the cached configuration.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
}

// NewViper builds a fresh instance with every source applied: defaults <
// system < user < project < environment.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindSensitiveEnvVars(v)
	SetDefaults(v)
	mergeConfigFiles(v, configPaths())
	return v
}

func initViperLocked() *viper.Viper {
	if viperInstance == nil {
		viperInstance = NewViper()
	}
	return viperInstance
}

// ProjectConfigPath finds am.toml by walking up from the working directory.
// Returns "" when there is none.
func ProjectConfigPath() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigUpwards(dir)
}

func findConfigUpwards(dir string) string {
	for {
		p := filepath.Join(dir, "am.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// configPaths lists candidate files, lowest precedence first.
func configPaths() []string {
	paths := []string{"/etc/milassist/config.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".milassist", "am.toml"))
	}
	if p := ProjectConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return paths
}

// mergeConfigFiles layers each existing file over v. Unreadable files are
// skipped. Env vars still win since AutomaticEnv is consulted first on Get.
func mergeConfigFiles(v *viper.Viper, paths []string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		tmp := viper.New()
		tmp.SetConfigFile(p)
		tmp.SetConfigType("toml")
		if err := tmp.ReadInConfig(); err != nil {
			continue
		}
		if err := v.MergeConfigMap(tmp.AllSettings()); err != nil {
			continue
		}
	}
}

// Get returns a value by dotted key.
func Get(key string) interface{} {
	return GetViper().Get(key)
}

// GetString returns a string value by dotted key.
func GetString(key string) string {
	return GetViper().GetString(key)
}
