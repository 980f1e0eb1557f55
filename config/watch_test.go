package config_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/s-hama/sigma-js-primes/config"
	"github.com/s-hama/sigma-js-primes/sieve"
	"github.com/s-hama/sigma-js-primes/store"
)

type reload struct {
	settings store.Settings
	err      error
}

// startWatcher runs a watcher on path until the returned stop func is called.
func startWatcher(t *testing.T, path string, st *store.Store, opts ...config.WatchOption) (<-chan reload, func()) {
	t.Helper()
	events := make(chan reload, 8)
	opts = append(opts,
		config.WithDebounce(20*time.Millisecond),
		config.OnReload(func(s store.Settings, err error) { events <- reload{s, err} }),
	)

	w, err := config.NewWatcher(path, st, zaptest.NewLogger(t), opts...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	return events, func() {
		cancel()
		require.NoError(t, <-done)
	}
}

func awaitReload(t *testing.T, events <-chan reload) reload {
	t.Helper()
	select {
	case r := <-events:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")

		return reload{}
	}
}

func TestWatch_AppliesAndRejects(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fsnotify keeps background goroutines on windows")
	}
	defer goleak.VerifyNone(t)
	clearEnv(t)

	path := writeFile(t, "sieve:\n  max_bound: 100\n")
	st, err := store.New(store.WithMaxBound(100))
	require.NoError(t, err)

	events, stop := startWatcher(t, path, st)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("sieve:\n  max_bound: 1000\n  algorithm: atkin\n"), 0o644))
	r := awaitReload(t, events)
	require.NoError(t, r.err)
	assert.Equal(t, store.Settings{MinBound: 1, MaxBound: 1000, Algorithm: sieve.Atkin}, r.settings)
	assert.Equal(t, 168, st.Len())

	// An invalid document is rejected and the store keeps its table.
	require.NoError(t, os.WriteFile(path, []byte("sieve:\n  min_bound: 5000\n"), 0o644))
	r = awaitReload(t, events)
	require.ErrorIs(t, r.err, store.ErrOutOfRange)
	assert.Equal(t, int64(1000), st.MaxBound())
	assert.Equal(t, 168, st.Len())
}

func TestWatch_OverridesWin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fsnotify keeps background goroutines on windows")
	}
	defer goleak.VerifyNone(t)
	clearEnv(t)

	path := writeFile(t, "sieve:\n  max_bound: 100\n")
	st, err := store.New(store.WithMaxBound(100))
	require.NoError(t, err)

	events, stop := startWatcher(t, path, st, config.WithOverrides(store.Config{MaxBound: ptr(int64(50))}))
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("sieve:\n  max_bound: 900\n  min_bound: 10\n"), 0o644))
	r := awaitReload(t, events)
	require.NoError(t, r.err)
	assert.Equal(t, int64(10), r.settings.MinBound)
	assert.Equal(t, int64(50), r.settings.MaxBound)
}

func TestWatch_IgnoresSiblings(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fsnotify keeps background goroutines on windows")
	}
	defer goleak.VerifyNone(t)
	clearEnv(t)

	path := writeFile(t, "sieve:\n  max_bound: 100\n")
	st, err := store.New(store.WithMaxBound(100))
	require.NoError(t, err)

	events, stop := startWatcher(t, path, st)
	defer stop()

	sibling := filepath.Join(filepath.Dir(path), "other.yaml")
	require.NoError(t, os.WriteFile(sibling, []byte("sieve:\n  max_bound: 7\n"), 0o644))

	select {
	case r := <-events:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
	assert.Equal(t, int64(100), st.MaxBound())
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	st, err := store.New(store.WithMaxBound(10))
	require.NoError(t, err)

	_, err = config.NewWatcher(filepath.Join(t.TempDir(), "nope", "primes.yaml"), st, nil)
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }
