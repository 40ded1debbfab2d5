package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtspresp/internal/inspect"
)

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(ok, []byte("RTSP/1.0 200 OK\r\nCSeq: 1\r\n\r\n"), 0o644))
	capture := filepath.Join(dir, "capture.txt")
	require.NoError(t, os.WriteFile(capture, []byte("RTSP/1.0 200 OK\r\nCSeq: 2\r\n\r\n\r\nRTSP/1.0 200 OK\r\nCSeq: 3\r\n\r\n\r\n"), 0o644))

	var out bytes.Buffer
	inspector := inspect.NewInspector(inspect.DefaultConfig(), &out)
	inspector.Start()

	err := run(context.Background(), inspector, []string{ok}, false, nil)
	require.NoError(t, err)
	err = run(context.Background(), inspector, []string{capture}, true, nil)
	require.NoError(t, err)
	inspector.Stop()

	assert.EqualValues(t, 3, inspector.Inputs())
	assert.EqualValues(t, 0, inspector.Failures())
	assert.Contains(t, out.String(), "capture.txt#2")
}

func TestRun_MissingFile(t *testing.T) {
	inspector := inspect.NewInspector(inspect.DefaultConfig(), io.Discard)
	inspector.Start()
	defer inspector.Stop()

	err := run(context.Background(), inspector, []string{filepath.Join(t.TempDir(), "nope")}, false, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_CancelWhileReadingStdin(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	inspector := inspect.NewInspector(inspect.DefaultConfig(), io.Discard)
	inspector.Start()
	defer inspector.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, inspector, []string{"-"}, false, pr)
	}()

	// stdin stays open
	_, err := pw.Write([]byte(strings.Repeat("x", 16)))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
