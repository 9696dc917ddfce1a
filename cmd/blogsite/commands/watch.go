package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/blogsite/internal/logfields"
	"git.home.luguber.info/inful/blogsite/internal/metrics"
	"git.home.luguber.info/inful/blogsite/internal/site"
	"git.home.luguber.info/inful/blogsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output      string        `short:"o" help:"Output directory (overrides output.directory)" type:"path"`
	Navbar      string        `help:"Navbar variant to activate"`
	Debounce    time.Duration `help:"Quiet period before re-rendering" default:"300ms"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9464)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		stop := serveMetrics(w.MetricsAddr, reg)
		defer stop()
	}

	svc := site.NewRenderService().WithRecorder(recorder)
	req := site.Request{ConfigPath: root.configPath(), OutputDir: w.Output, Navbar: w.Navbar}
	render := func(ctx context.Context) error {
		_, err := svc.Render(ctx, req)
		return err
	}

	if err := render(ctx); err != nil {
		slog.Error("Initial render failed; waiting for changes", logfields.Error(err))
	}

	watcher, err := watch.New(req.ConfigPath, render, watch.WithDebounce(w.Debounce), watch.WithRecorder(recorder))
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}

// serveMetrics starts the metrics endpoint and returns a function that shuts it down.
func serveMetrics(addr string, reg *prom.Registry) func() {
	srv := &http.Server{Addr: addr, Handler: metrics.NewRouter(reg), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		slog.Info("Serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", logfields.Error(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
