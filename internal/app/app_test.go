package app

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeRunner struct {
	err error
}

func (f fakeRunner) Run(ctx context.Context) error { return f.err }

type fakeTerm struct {
	quit chan struct{}
}

func (f *fakeTerm) Quit() { close(f.quit) }

func restoreLog(t *testing.T) {
	t.Helper()
	flags, prefix := log.Flags(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
		log.SetPrefix(prefix)
	})
}

func TestStartSession_QuitsTerminalWhenLoopEnds(t *testing.T) {
	boom := errors.New("boom")
	for _, want := range []error{nil, boom} {
		term := &fakeTerm{quit: make(chan struct{})}
		done := startSession(context.Background(), fakeRunner{err: want}, term)

		select {
		case got := <-done:
			if !errors.Is(got, want) {
				t.Fatalf("session error = %v, want %v", got, want)
			}
		case <-time.After(time.Second):
			t.Fatal("session did not finish")
		}
		select {
		case <-term.quit:
		default:
			t.Fatal("terminal was not asked to quit")
		}
	}
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	restoreLog(t)
	path := filepath.Join(t.TempDir(), "state", "yt-tui.log")

	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	log.Printf("hello from test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log file = %q, want the logged line", data)
	}
}

func TestSetupLogging_EmptyPathDiscards(t *testing.T) {
	restoreLog(t)
	closeLog, err := setupLogging("  ")
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	defer closeLog()
	if log.Writer() == os.Stderr {
		t.Fatal("log output still goes to stderr")
	}
}

func TestRun_InvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	err := Run(context.Background(), Options{ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run error = %v, want load config failure", err)
	}
}
