package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jsphweid/chordmark/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func startWatch(t *testing.T, path string, delay time.Duration) (*syncBuffer, context.CancelFunc, chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, out, path, delay, sheet.DefaultOptions())
	}()

	require.Eventually(t, func() bool {
		return out.String() != ""
	}, 2*time.Second, 10*time.Millisecond)
	return out, cancel, done
}

func TestWatchRendersOnWrite(t *testing.T) {
	path := writeSheet(t, t.TempDir(), "verse.cm", "C")
	out, cancel, done := startWatch(t, path, 20*time.Millisecond)
	defer cancel()

	require.NoError(t, os.WriteFile(path, []byte("D"), 0o644))

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "|D  |")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchDropsPendingRenderOnStop(t *testing.T) {
	path := writeSheet(t, t.TempDir(), "verse.cm", "C")
	out, cancel, done := startWatch(t, path, 300*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("D"), 0o644))
	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, "|C  |\n", out.String())
}
