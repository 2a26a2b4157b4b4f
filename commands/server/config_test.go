package server

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/swap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempHome(t *testing.T) (string, func()) {
	t.Helper()
	home, err := ioutil.TempDir("", "swapd-home")
	require.NoError(t, err)
	return home, func() { os.RemoveAll(home) }
}

func TestLoadConfigDefaults(t *testing.T) {
	home, cleanup := tempHome(t)
	defer cleanup()

	v := NewViper("swaptest")
	v.Set(FlagHome, home)
	cfg, err := LoadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "tcp://localhost:26658", cfg.Bind)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.Equal(t, filepath.Join(home, "swaptest.db"), cfg.DBPath())
}

func TestLoadConfigSources(t *testing.T) {
	home, cleanup := tempHome(t)
	defer cleanup()

	file := []byte("bind = \"tcp://0.0.0.0:1234\"\nlog_level = \"debug\"\ndb = \"\"\n")
	require.NoError(t, ioutil.WriteFile(filepath.Join(home, "swaptest.toml"), file, 0600))

	os.Setenv("SWAPTEST_LOG_LEVEL", "error")
	defer os.Unsetenv("SWAPTEST_LOG_LEVEL")

	v := NewViper("swaptest")
	v.Set(FlagHome, home)
	cfg, err := LoadConfig(v)
	require.NoError(t, err)

	// the file overrides defaults, the environment overrides the file
	assert.Equal(t, "tcp://0.0.0.0:1234", cfg.Bind)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "", cfg.DBPath())
}

func TestLoadConfigBrokenFile(t *testing.T) {
	home, cleanup := tempHome(t)
	defer cleanup()
	require.NoError(t, ioutil.WriteFile(filepath.Join(home, "swaptest.toml"), []byte("bind = = ="), 0600))

	v := NewViper("swaptest")
	v.Set(FlagHome, home)
	_, err := LoadConfig(v)
	assert.True(t, errors.ErrInvalidInput.Is(err), "got %+v", err)
}

func TestConfigLogger(t *testing.T) {
	cfg := Config{LogLevel: "info"}
	logger, err := cfg.Logger("test")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogLevel = "chatty"
	_, err = cfg.Logger("test")
	assert.True(t, errors.ErrInvalidInput.Is(err), "got %+v", err)
}

func TestDBPath(t *testing.T) {
	cases := map[string]struct {
		db   string
		want string
	}{
		"relative": {db: "data/swap.db", want: filepath.Join("/srv/swap", "data/swap.db")},
		"absolute": {db: "/var/lib/swap.db", want: "/var/lib/swap.db"},
		"memory":   {db: "", want: ""},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			cfg := Config{Home: "/srv/swap", DB: tc.db}
			assert.Equal(t, tc.want, cfg.DBPath())
		})
	}
}
