// Package site runs one render: load the config, resolve derived values,
// assemble the theme object and emit the generator config files.
package site

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/blogsite/internal/config"
	"git.home.luguber.info/inful/blogsite/internal/emit"
	"git.home.luguber.info/inful/blogsite/internal/foundation/errors"
	"git.home.luguber.info/inful/blogsite/internal/gitinfo"
	"git.home.luguber.info/inful/blogsite/internal/logfields"
	"git.home.luguber.info/inful/blogsite/internal/metrics"
	"git.home.luguber.info/inful/blogsite/internal/theme"
)

// Request selects what one render reads and writes.
type Request struct {
	ConfigPath string
	// OutputDir overrides output.directory when set.
	OutputDir string
	// Formats overrides output.formats when non-empty.
	Formats []config.OutputFormat
	// Navbar selects the active navbar variant when set.
	Navbar string
	// DryRun assembles without writing any files.
	DryRun bool
}

// Result is the outcome of a successful render.
type Result struct {
	Config    *config.Config
	Root      map[string]any
	Artifacts []emit.Artifact
	Duration  time.Duration
}

// RenderService performs renders. The zero value is not usable; use NewRenderService.
type RenderService struct {
	loader   func(path string) (*config.Config, error)
	recorder metrics.Recorder
}

// NewRenderService creates a service that loads configs from disk and records nothing.
func NewRenderService() *RenderService {
	return &RenderService{
		loader:   config.Load,
		recorder: metrics.NoopRecorder{},
	}
}

// WithRecorder injects a metrics recorder.
func (s *RenderService) WithRecorder(r metrics.Recorder) *RenderService {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// Load reads the config and applies the request's overrides without emitting.
func (s *RenderService) Load(req Request) (*config.Config, error) {
	path := req.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := s.loader(path)
	if err != nil {
		return nil, err
	}

	if req.Navbar != "" {
		nav, err := cfg.Theme.Navbar.WithActive(req.Navbar)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryValidation, "invalid navbar selection").
				WithContext("navbar", req.Navbar).
				Build()
		}
		cfg.Theme.Navbar = nav
	}
	if req.OutputDir != "" {
		cfg.Output.Directory = req.OutputDir
	}
	if len(req.Formats) > 0 {
		cfg.Output.Formats = req.Formats
	}

	if err := gitinfo.Resolve(cfg, filepath.Dir(path)); err != nil {
		slog.Warn("Could not derive repository from git; leaving repo unset", logfields.Error(err))
	}
	return cfg, nil
}

// Render runs load, assemble and emit once.
func (s *RenderService) Render(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	result, err := s.render(ctx, req)
	elapsed := time.Since(start)
	s.recorder.ObserveRenderDuration(elapsed)

	if err != nil {
		s.recorder.IncRenderOutcome(outcomeFor(err))
		return nil, err
	}
	result.Duration = elapsed
	s.recorder.IncRenderOutcome(metrics.OutcomeSuccess)
	s.recorder.SetLastSuccess(time.Now())
	for _, art := range result.Artifacts {
		s.recorder.IncArtifact(string(art.Format), art.Written)
	}
	slog.Info("Render complete",
		logfields.Path(result.Config.Output.Directory),
		logfields.Variant(result.Config.Theme.Navbar.Active),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return result, nil
}

func (s *RenderService) render(ctx context.Context, req Request) (*Result, error) {
	cfg, err := s.Load(req)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := theme.Assemble(cfg)
	if err := emit.CheckRoot(root); err != nil {
		return nil, err
	}
	result := &Result{Config: cfg, Root: root}
	if req.DryRun {
		return result, nil
	}

	artifacts, err := emit.NewWriter(cfg.Output).Write(root)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	return result, nil
}

func outcomeFor(err error) metrics.OutcomeLabel {
	switch errors.GetCategory(err) {
	case errors.CategoryConfig, errors.CategoryValidation, errors.CategoryNotFound:
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeFailed
	}
}
