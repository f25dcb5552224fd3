package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/tmux-bookmark-popup/internal/autofill"
	"github.com/atomicstack/tmux-bookmark-popup/internal/kv"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, kv.BackendSQLite, cfg.App.Store.Backend)
	assert.Equal(t, "", cfg.App.Store.Path)
	assert.Equal(t, "127.0.0.1:6379", cfg.App.Store.Redis.Address)
	assert.Equal(t, "tmux-bookmark-popup:", cfg.App.Store.Redis.Prefix)
	assert.Equal(t, autofill.SourcePane, cfg.App.Autofill)
	assert.Equal(t, 2*time.Second, cfg.App.SyncInterval)
	assert.Equal(t, 5*time.Second, cfg.App.StoreTimeout)
	assert.Zero(t, cfg.App.Width)
	assert.False(t, cfg.App.ShowFooter)
	assert.False(t, cfg.Logging.Trace)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsReadsEnvironment(t *testing.T) {
	environ := []string{
		"TMUX_BOOKMARK_POPUP_SOCKET=/tmp/tmux-1/default",
		"TMUX_BOOKMARK_POPUP_WIDTH=90",
		"TMUX_BOOKMARK_POPUP_FOOTER=true",
		"TMUX_BOOKMARK_POPUP_STORE=redis",
		"TMUX_BOOKMARK_POPUP_REDIS_ADDR=redis:6379",
		"TMUX_BOOKMARK_POPUP_REDIS_DB=3",
		"TMUX_BOOKMARK_POPUP_AUTOFILL=clipboard",
		"TMUX_BOOKMARK_POPUP_SYNC_INTERVAL=750ms",
		"TMUX_BOOKMARK_POPUP_TRACE=1",
		"UNRELATED",
	}
	cfg, err := LoadArgs(nil, environ)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tmux-1/default", cfg.App.SocketPath)
	assert.Equal(t, 90, cfg.App.Width)
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, kv.BackendRedis, cfg.App.Store.Backend)
	assert.Equal(t, "redis:6379", cfg.App.Store.Redis.Address)
	assert.Equal(t, 3, cfg.App.Store.Redis.DB)
	assert.Equal(t, autofill.SourceClipboard, cfg.App.Autofill)
	assert.Equal(t, 750*time.Millisecond, cfg.App.SyncInterval)
	assert.True(t, cfg.Logging.Trace)
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{"TMUX_BOOKMARK_POPUP_STORE=redis", "TMUX_BOOKMARK_POPUP_HEIGHT=40"}
	args := []string{"-store", "Memory", "-height", "20", "-sync-interval", "0", "-verbose"}
	cfg, err := LoadArgs(args, environ)
	require.NoError(t, err)

	assert.Equal(t, kv.BackendMemory, cfg.App.Store.Backend)
	assert.Equal(t, 20, cfg.App.Height)
	assert.Zero(t, cfg.App.SyncInterval)
	assert.True(t, cfg.App.Verbose)
	assert.True(t, cfg.Features.Verbose)
	assert.Equal(t, args, cfg.Args)
	assert.Equal(t, "Memory", cfg.Flags["store"])
	assert.Equal(t, "0s", cfg.Flags["syncInterval"])
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	environ := []string{
		"TMUX_BOOKMARK_POPUP_WIDTH=wide",
		"TMUX_BOOKMARK_POPUP_FOOTER=maybe",
		"TMUX_BOOKMARK_POPUP_STORE_TIMEOUT=soon",
	}
	cfg, err := LoadArgs(nil, environ)
	require.NoError(t, err)
	assert.Zero(t, cfg.App.Width)
	assert.False(t, cfg.App.ShowFooter)
	assert.Equal(t, 5*time.Second, cfg.App.StoreTimeout)
}

func TestLoadArgsRejectsBadValues(t *testing.T) {
	_, err := LoadArgs([]string{"-width", "-1"}, nil)
	assert.Error(t, err)
	_, err = LoadArgs([]string{"-height", "-5"}, nil)
	assert.Error(t, err)
	_, err = LoadArgs([]string{"-no-such-flag"}, nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"-store", "etcd"}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, Validate(cfg), kv.ErrUnsupportedBackend)

	cfg, err = LoadArgs([]string{"-autofill", "browser"}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, Validate(cfg), autofill.ErrUnsupportedSource)

	cfg, err = LoadArgs([]string{"-sync-interval", "-1s"}, nil)
	require.NoError(t, err)
	assert.Error(t, Validate(cfg))

	cfg, err = LoadArgs([]string{"-store-timeout", "-1s"}, nil)
	require.NoError(t, err)
	assert.Error(t, Validate(cfg))
}

func TestReadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env")
	require.NoError(t, os.WriteFile(path, []byte("TMUX_BOOKMARK_POPUP_STORE=memory\n# comment\nTMUX_BOOKMARK_POPUP_WIDTH=70\n"), 0o644))

	entries, err := readEnvFile(map[string]string{envFile: path})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"TMUX_BOOKMARK_POPUP_STORE=memory", "TMUX_BOOKMARK_POPUP_WIDTH=70"}, entries)

	// process environment entries come later and win
	cfg, err := LoadArgs(nil, append(entries, "TMUX_BOOKMARK_POPUP_WIDTH=100"))
	require.NoError(t, err)
	assert.Equal(t, kv.BackendMemory, cfg.App.Store.Backend)
	assert.Equal(t, 100, cfg.App.Width)
}

func TestReadEnvFileMissingExplicitPath(t *testing.T) {
	_, err := readEnvFile(map[string]string{envFile: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}
