package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"printwatch/internal/bridge"
	"printwatch/internal/config"
	"printwatch/internal/history"
	"printwatch/internal/logging"
	"printwatch/internal/notify"
	"printwatch/internal/octoprint"
)

// Daemon owns the push listener and enforces single-instance execution.
type Daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *history.Store
	listener *octoprint.PushListener

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	cancel  context.CancelFunc
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("daemon requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	notifier := notify.FromConfig(cfg, logger)

	var store *history.Store
	if cfg.History.Enabled {
		opened, err := history.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("open history store: %w", err)
		}
		store = opened
		notifier = newRecordingNotifier(notifier, store, cfg.Plugin.Identity, logger)
	}

	br := bridge.New(cfg.Plugin.Identity, cfg.Plugin.NotificationTitle, notifier, logger)
	client := octoprint.NewClient(cfg)
	listener := octoprint.NewPushListener(client, logger, br.HandleMessage)

	lockPath := filepath.Join(cfg.Paths.DataDir, "printwatch.lock")
	return &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		store:    store,
		listener: listener,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the instance lock and begins listening for push messages.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another printwatch instance is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	if err := d.listener.Start(runCtx); err != nil {
		cancel()
		_ = d.lock.Unlock()
		return fmt.Errorf("start push listener: %w", err)
	}
	d.cancel = cancel

	if d.store != nil && d.cfg.History.RetentionDays > 0 {
		retention := time.Duration(d.cfg.History.RetentionDays) * 24 * time.Hour
		if err := d.store.Prune(runCtx, retention); err != nil {
			d.logger.Warn("history prune failed", logging.Error(err))
		}
	}

	d.running.Store(true)
	d.logger.Info("printwatch daemon started",
		logging.String(logging.FieldPlugin, d.cfg.Plugin.Identity),
		logging.String("server", d.cfg.Server.URL),
		logging.String("lock", d.lockPath),
	)
	return nil
}

// Stop stops the listener and releases the instance lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.listener.Stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("printwatch daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Running reports whether the daemon has been started.
func (d *Daemon) Running() bool {
	return d.running.Load()
}
