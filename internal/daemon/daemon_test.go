package daemon_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"printwatch/internal/config"
	"printwatch/internal/daemon"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	// Nothing listens here; the listener logs connect failures and backs
	// off, which is fine for lifecycle tests.
	cfg.Server.URL = "http://127.0.0.1:1"
	cfg.Notify.Desktop = false
	cfg.Notify.Console = true
	cfg.History.Enabled = false
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}

func TestDaemonStartStop(t *testing.T) {
	d, err := daemon.New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	defer d.Close()

	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !d.Running() {
		t.Fatal("daemon should report running")
	}
	d.Stop()
	if d.Running() {
		t.Fatal("daemon should report stopped")
	}
}

func TestSecondInstanceIsRejected(t *testing.T) {
	cfg := testConfig(t)

	first, err := daemon.New(cfg, nil)
	if err != nil {
		t.Fatalf("new first daemon: %v", err)
	}
	defer first.Close()
	if err := first.Start(context.Background()); err != nil {
		t.Fatalf("start first: %v", err)
	}

	second, err := daemon.New(cfg, nil)
	if err != nil {
		t.Fatalf("new second daemon: %v", err)
	}
	defer second.Close()

	err = second.Start(context.Background())
	if err == nil {
		t.Fatal("second instance should fail to start")
	}
	if !strings.Contains(err.Error(), "already running") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStartTwiceFails(t *testing.T) {
	d, err := daemon.New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("new daemon: %v", err)
	}
	defer d.Close()

	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := d.Start(context.Background()); err == nil {
		t.Fatal("second start on same daemon should fail")
	}
}
