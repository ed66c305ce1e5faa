package am

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestConfigWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nallowed_origins = [\"http://a\"]\n"), DefaultFilePermissions))

	cw, err := NewConfigWatcher(path, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cw.Stop() })

	cw.debouncePeriod = 20 * time.Millisecond
	cw.load = func() (*Config, error) { return LoadFromFile(path) }

	got := make(chan []string, 4)
	cw.OnReload(func(c *Config) error {
		got <- c.GetServerAllowedOrigins()
		return nil
	})
	cw.Start()

	require.NoError(t, os.WriteFile(path, []byte("[server]\nallowed_origins = [\"http://b\"]\n"), DefaultFilePermissions))

	select {
	case origins := <-got:
		assert.Equal(t, []string{"http://b"}, origins)
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback not called")
	}
}

func TestConfigWatcher_InvalidConfigKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")
	require.NoError(t, os.WriteFile(path, nil, DefaultFilePermissions))

	cw, err := NewConfigWatcher(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cw.Stop() })

	zero := 0
	cw.load = func() (*Config, error) { return &Config{Server: ServerConfig{Port: &zero}}, nil }

	var calls atomic.Int32
	cw.OnReload(func(*Config) error { calls.Add(1); return nil })

	assert.Error(t, cw.reload())
	assert.Equal(t, int32(0), calls.Load())
}

func TestConfigWatcher_StopTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "am.toml")
	require.NoError(t, os.WriteFile(path, nil, DefaultFilePermissions))
	cw, err := NewConfigWatcher(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, cw.Path())
	assert.NoError(t, cw.Stop())
	assert.NoError(t, cw.Stop())
}
