package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/atomicstack/tmux-bookmark-popup/internal/app"
	"github.com/atomicstack/tmux-bookmark-popup/internal/autofill"
	"github.com/atomicstack/tmux-bookmark-popup/internal/kv"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envPrefix        = "TMUX_BOOKMARK_POPUP_"
	envFile          = envPrefix + "ENV_FILE"
	envSocketPath    = envPrefix + "SOCKET"
	envWidth         = envPrefix + "WIDTH"
	envHeight        = envPrefix + "HEIGHT"
	envShowFooter    = envPrefix + "FOOTER"
	envVerbose       = envPrefix + "VERBOSE"
	envTrace         = envPrefix + "TRACE"
	envLogFile       = envPrefix + "LOG_FILE"
	envStore         = envPrefix + "STORE"
	envStorePath     = envPrefix + "STORE_PATH"
	envRedisAddr     = envPrefix + "REDIS_ADDR"
	envRedisPassword = envPrefix + "REDIS_PASSWORD"
	envRedisDB       = envPrefix + "REDIS_DB"
	envRedisPrefix   = envPrefix + "REDIS_PREFIX"
	envAutofill      = envPrefix + "AUTOFILL"
	envSyncInterval  = envPrefix + "SYNC_INTERVAL"
	envStoreTimeout  = envPrefix + "STORE_TIMEOUT"
)

const (
	defaultRedisAddr    = "127.0.0.1:6379"
	defaultRedisPrefix  = "tmux-bookmark-popup:"
	defaultSyncInterval = 2 * time.Second
	defaultStoreTimeout = 5 * time.Second
)

// Load parses configuration from CLI arguments and environment variables.
// Values from the env file sit underneath the process environment.
func Load() (Config, error) {
	environ := os.Environ()
	fileEnv, err := readEnvFile(parseEnv(environ))
	if err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], append(fileEnv, environ...))
}

// readEnvFile returns the entries of the configured env file. A missing
// default file is not an error; a missing explicit one is.
func readEnvFile(env map[string]string) ([]string, error) {
	path, explicit := env[envFile]
	if !explicit || strings.TrimSpace(path) == "" {
		explicit = false
		path = DefaultEnvFile()
		if path == "" {
			return nil, nil
		}
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	entries := make([]string, 0, len(values))
	for k, v := range values {
		entries = append(entries, k+"="+v)
	}
	return entries, nil
}

// DefaultEnvFile returns the env file read when none is configured, or ""
// when the user config directory is unknown.
func DefaultEnvFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tmux-bookmark-popup", "env")
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-bookmark-popup", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	store := fs.String("store", envOrDefault(env, envStore, kv.BackendSQLite), "storage backend: sqlite, redis or memory")
	storePath := fs.String("store-path", envOrDefault(env, envStorePath, ""), "sqlite database path (defaults to the user config dir)")
	redisAddr := fs.String("redis-addr", envOrDefault(env, envRedisAddr, defaultRedisAddr), "redis address for the synced store")
	redisPassword := fs.String("redis-password", envOrDefault(env, envRedisPassword, ""), "redis password")
	redisDB := fs.Int("redis-db", envOrInt(env, envRedisDB, 0), "redis database number")
	redisPrefix := fs.String("redis-prefix", envOrDefault(env, envRedisPrefix, defaultRedisPrefix), "prefix for redis keys")
	autofillSource := fs.String("autofill", envOrDefault(env, envAutofill, autofill.SourcePane), "autofill source: pane, buffer or clipboard")
	syncInterval := fs.Duration("sync-interval", envOrDuration(env, envSyncInterval, defaultSyncInterval), "poll interval for remote changes (0 disables)")
	storeTimeout := fs.Duration("store-timeout", envOrDuration(env, envStoreTimeout, defaultStoreTimeout), "timeout for each storage call")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			SocketPath: *socket,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Store: kv.Options{
				Backend: strings.ToLower(strings.TrimSpace(*store)),
				Path:    *storePath,
				Redis: kv.RedisOptions{
					Address:  *redisAddr,
					Password: *redisPassword,
					DB:       *redisDB,
					Prefix:   *redisPrefix,
				},
			},
			Autofill:     strings.ToLower(strings.TrimSpace(*autofillSource)),
			SyncInterval: *syncInterval,
			StoreTimeout: *storeTimeout,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"socket":       *socket,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
			"store":        *store,
			"storePath":    *storePath,
			"redisAddr":    *redisAddr,
			"redisDB":      strconv.Itoa(*redisDB),
			"redisPrefix":  *redisPrefix,
			"autofill":     *autofillSource,
			"syncInterval": syncInterval.String(),
			"storeTimeout": storeTimeout.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects unknown backends and sources and negative durations.
func Validate(cfg Config) error {
	if !contains(kv.Backends(), cfg.App.Store.Backend) {
		return fmt.Errorf("%w: %q (want one of %s)", kv.ErrUnsupportedBackend, cfg.App.Store.Backend, strings.Join(kv.Backends(), ", "))
	}
	if !contains(autofill.Sources(), cfg.App.Autofill) {
		return fmt.Errorf("%w: %q (want one of %s)", autofill.ErrUnsupportedSource, cfg.App.Autofill, strings.Join(autofill.Sources(), ", "))
	}
	if cfg.App.SyncInterval < 0 {
		return fmt.Errorf("sync-interval must be >= 0 (got %s)", cfg.App.SyncInterval)
	}
	if cfg.App.StoreTimeout < 0 {
		return fmt.Errorf("store-timeout must be >= 0 (got %s)", cfg.App.StoreTimeout)
	}
	if cfg.App.Store.Redis.DB < 0 {
		return fmt.Errorf("redis-db must be >= 0 (got %d)", cfg.App.Store.Redis.DB)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
