package integration

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/notes-release/internal/config"
	domain "github.com/oshokin/notes-release/internal/domain/layout"
	"github.com/oshokin/notes-release/internal/service/client"
	"github.com/oshokin/notes-release/internal/service/common"
	"github.com/oshokin/notes-release/internal/service/server"
)

// startGRPC starts a layout server with a temporary config and the given state file.
// Returns a stop function that shuts the server down.
func startGRPC(t *testing.T, addr, statePath string) (cfgPath string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cfgPath = filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			Layout: config.LayoutConfig{
				ServerAddress: addr,
				StateFile:     statePath,
				Timeout:       time.Second,
				Language:      "en",
			},
		}),
	)

	done := make(chan struct{})

	go func() {
		defer close(done)

		options := &server.Options{
			ConfigPath:    cfgPath,
			ListenAddress: addr,
		}

		_ = server.Run(ctx, options) //nolint:errcheck // Failures surface as client errors below.
	}()

	waitForServer(t, addr)

	return cfgPath, func() {
		cancel()
		<-done
	}
}

// waitForServer polls until addr accepts connections.
func waitForServer(t *testing.T, addr string) {
	t.Helper()

	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", addr, 50*time.Millisecond)
		if err != nil {
			return false
		}

		_ = conn.Close()

		return true
	}, 3*time.Second, 20*time.Millisecond)
}

// reservePort returns an address on a free TCP port and closes it.
func reservePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}

func testActor() *domain.Actor {
	return &domain.Actor{
		Hostname: "test-hostname",
		Username: "test-user",
	}
}

// TestGRPC_Roundtrip exercises toggle and get against the real server with on-disk persistence.
func TestGRPC_Roundtrip(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)
	statePath := filepath.Join(t.TempDir(), "layout-state.json")

	_, stop := startGRPC(t, addr, statePath)
	defer stop()

	ctx := context.Background()

	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	initial, err := c.GetLayout(ctx)
	require.NoError(t, err)
	require.True(t, initial.SidebarOpen)

	toggled, err := c.ToggleSidebar(ctx, testActor())
	require.NoError(t, err)
	require.False(t, toggled.SidebarOpen)
	require.Equal(t, "test-user@test-hostname", toggled.LastActor.String())

	got, err := c.GetLayout(ctx)
	require.NoError(t, err)
	require.False(t, got.SidebarOpen)

	_, err = os.Stat(statePath)
	require.NoError(t, err)
}

// TestGRPC_StateSurvivesRestart restores the persisted flag on the next start.
func TestGRPC_StateSurvivesRestart(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "layout-state.json")
	ctx := context.Background()

	addr := reservePort(t)
	_, stop := startGRPC(t, addr, statePath)

	c, err := common.Dial(ctx, addr)
	require.NoError(t, err)

	_, err = c.ToggleSidebar(ctx, testActor())
	require.NoError(t, err)
	require.NoError(t, c.Close())
	stop()

	addr = reservePort(t)
	_, stop = startGRPC(t, addr, statePath)
	defer stop()

	c, err = common.Dial(ctx, addr)
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	got, err := c.GetLayout(ctx)
	require.NoError(t, err)
	require.False(t, got.SidebarOpen)
	require.Equal(t, testActor(), got.LastActor)
}

// TestGRPC_Watch delivers the current layout and then each toggle to a watcher.
func TestGRPC_Watch(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)

	_, stop := startGRPC(t, addr, filepath.Join(t.TempDir(), "layout-state.json"))
	defer stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := common.Dial(ctx, addr)
	require.NoError(t, err)

	defer func() {
		_ = watcher.Close()
	}()

	var (
		mu       sync.Mutex
		observed []bool
		done     = make(chan error, 1)
	)

	go func() {
		done <- watcher.WatchLayout(ctx, func(state *domain.State) {
			mu.Lock()
			defer mu.Unlock()

			observed = append(observed, state.SidebarOpen)
		})
	}()

	seen := func(n int) func() bool {
		return func() bool {
			mu.Lock()
			defer mu.Unlock()

			return len(observed) >= n
		}
	}

	require.Eventually(t, seen(1), 3*time.Second, 10*time.Millisecond)

	toggler, err := common.Dial(ctx, addr)
	require.NoError(t, err)

	defer func() {
		_ = toggler.Close()
	}()

	_, err = toggler.ToggleSidebar(ctx, testActor())
	require.NoError(t, err)

	require.Eventually(t, seen(2), 3*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()

	require.Equal(t, []bool{true, false}, observed[:2])
}

// TestClientCommands_PrintTooltip runs the toggle and status commands against the server.
func TestClientCommands_PrintTooltip(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)

	cfgPath, stop := startGRPC(t, addr, filepath.Join(t.TempDir(), "layout-state.json"))
	defer stop()

	var out bytes.Buffer

	options := &client.Options{
		ConfigPath: cfgPath,
		Language:   "ru",
		Output:     &out,
	}

	require.NoError(t, client.Toggle(context.Background(), options))
	require.Contains(t, out.String(), "sidebar collapsed by ")
	require.Contains(t, out.String(), "[app-sidebar-arrow-button-expand] Развернуть боковую панель")

	out.Reset()

	require.NoError(t, client.Status(context.Background(), options))
	require.True(t, strings.HasPrefix(out.String(), "sidebar collapsed by "))
}
