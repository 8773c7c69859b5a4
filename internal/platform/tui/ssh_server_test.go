package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/float-runner/internal/storage"
)

// drainingListener records whether the scores database was still usable
// while the server shut down.
type drainingListener struct {
	srv      *SSHServer
	saveErr  error
	stopped  bool
	hadStore bool
}

func (d *drainingListener) ListenAndServe() error { return nil }

func (d *drainingListener) Shutdown(context.Context) error {
	d.stopped = true
	d.hadStore = d.srv.store != nil
	if d.hadStore {
		_, d.saveErr = d.srv.store.SaveRun("easy", 42)
	}
	return nil
}

func TestSSHServerShutdownKeepsStoreUntilDrained(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	srv := &SSHServer{
		config: DefaultSSHServerConfig(),
		store:  store,
		logger: log.New(io.Discard),
	}
	l := &drainingListener{srv: srv}
	srv.server = l

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	if !l.stopped {
		t.Fatal("server was not shut down")
	}
	if !l.hadStore {
		t.Fatal("store was closed before sessions drained")
	}
	if l.saveErr != nil {
		t.Errorf("run saved during drain failed: %v", l.saveErr)
	}
	if srv.store != nil {
		t.Error("store should be released after shutdown")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.TickRate != 60 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if _, err := cfg.Game.Profile(cfg.Game.DefaultDifficulty); err != nil {
		t.Errorf("default game config has no default preset: %v", err)
	}
}
