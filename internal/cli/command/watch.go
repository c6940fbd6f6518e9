package command

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/propkit/internal/infra/confloader"
	"github.com/yndnr/propkit/internal/infra/shutdown"
	"github.com/yndnr/propkit/internal/telemetry/logger"
)

const shutdownTimeout = 5 * time.Second

// WatchCommand reloads a properties file whenever it or its schema changes.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Reload on change and report when the resolved values change",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			schemaFlag(),
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "minimum time between reloads (overrides watch.interval)",
			},
		},
		Action: watchAction,
	}
}

func watchAction(c *cli.Context) error {
	rt, err := runtimeFrom(c)
	if err != nil {
		return err
	}
	t, err := targetFrom(c, rt)
	if err != nil {
		return err
	}
	interval := rt.Settings.Watch.Interval
	if c.IsSet("interval") {
		interval = c.Duration("interval")
	}

	ctx := commandContext(c, rt, t)
	out := c.App.Writer

	store, err := loadStore(ctx, rt, t)
	if err != nil {
		return err
	}
	fingerprint := store.Fingerprint()
	fmt.Fprintf(out, "loaded %s: %d keys, fingerprint %016x\n", t.file, store.Len(), fingerprint)

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(rt.Logger.Slog()))
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	for _, path := range []string{t.file, t.schema} {
		if err := w.Watch(path); err != nil {
			_ = w.Stop()
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	changes := make(chan struct{}, 1)
	w.OnChange(func(string) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	w.StartAsync()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r := &reloader{
		rt:          rt,
		target:      t,
		out:         out,
		fingerprint: fingerprint,
		limiter:     rate.NewLimiter(rate.Every(interval), 1),
	}
	go func() {
		defer close(done)
		r.run(loopCtx, changes)
	}()

	h := shutdown.NewHandler(shutdownTimeout)
	h.OnShutdown(func(ctx context.Context) error {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	h.OnShutdown(func(context.Context) error {
		cancel()
		return nil
	})
	h.OnShutdown(func(context.Context) error {
		return w.Stop()
	})

	return h.Wait(c.Context)
}

// reloader turns change notifications into fresh loads.
type reloader struct {
	rt          *Runtime
	target      target
	out         io.Writer
	fingerprint uint64
	limiter     *rate.Limiter
}

// run loads a new store after each notification until ctx is done. Bursts
// of notifications collapse into one reload, and reloads are spaced by the
// limiter. A failed reload keeps the last good fingerprint.
func (r *reloader) run(ctx context.Context, changes <-chan struct{}) {
	log := logger.L(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
		}

		if err := r.limiter.Wait(ctx); err != nil {
			return
		}
		select {
		case <-changes:
		default:
		}

		store, err := loadStore(ctx, r.rt, r.target)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn("reload failed", "error", err)
			fmt.Fprintf(r.out, "reload failed: %v\n", err)
			continue
		}

		next := store.Fingerprint()
		changed := next != r.fingerprint
		r.rt.Metrics.ObserveReload(changed)
		if !changed {
			fmt.Fprintf(r.out, "reloaded %s: unchanged\n", r.target.file)
			continue
		}
		fmt.Fprintf(r.out, "reloaded %s: %d keys, fingerprint %016x (was %016x)\n",
			r.target.file, store.Len(), next, r.fingerprint)
		r.fingerprint = next
	}
}
