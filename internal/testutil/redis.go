package testutil

import (
	"net"
	"os"
	"strings"
	"testing"
	"time"
)

// EnvRedisAddr names the variable pointing tests at a disposable Redis server.
const EnvRedisAddr = "TMUX_BOOKMARK_POPUP_TEST_REDIS"

// RequireRedis returns the test Redis address, skipping the calling test when
// none is configured or reachable.
func RequireRedis(t *testing.T) string {
	t.Helper()
	addr := strings.TrimSpace(os.Getenv(EnvRedisAddr))
	if addr == "" {
		t.Skipf("skipping: %s not set", EnvRedisAddr)
	}
	conn, err := net.DialTimeout("tcp", addr, time.Second)
	if err != nil {
		t.Skipf("skipping: redis at %s unreachable: %v", addr, err)
	}
	conn.Close()
	return addr
}
