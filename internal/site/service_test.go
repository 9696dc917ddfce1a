package site

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogsite/internal/config"
	"git.home.luguber.info/inful/blogsite/internal/foundation/errors"
	"git.home.luguber.info/inful/blogsite/internal/metrics"
	"git.home.luguber.info/inful/blogsite/internal/preset"
	testkit "git.home.luguber.info/inful/blogsite/internal/testing"
	"git.home.luguber.info/inful/blogsite/internal/theme"
)

type fakeRecorder struct {
	metrics.NoopRecorder
	mu        sync.Mutex
	outcomes  []metrics.OutcomeLabel
	artifacts map[string]int
}

func (f *fakeRecorder) IncRenderOutcome(o metrics.OutcomeLabel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, o)
}

func (f *fakeRecorder) IncArtifact(format string, written bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.artifacts == nil {
		f.artifacts = map[string]int{}
	}
	if written {
		f.artifacts[format]++
	}
}

func writeYizhe(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cfg, err := preset.Get(preset.DefaultName)
	require.NoError(t, err)
	cfg.Output.Directory = filepath.Join(dir, "docs", ".vuepress")
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, config.Init(path, cfg, false))
	return dir, path
}

func TestRender_WritesArtifacts(t *testing.T) {
	dir, path := writeYizhe(t)
	rec := &fakeRecorder{}
	svc := NewRenderService().WithRecorder(rec)

	res, err := svc.Render(context.Background(), Request{
		ConfigPath: path,
		Formats:    []config.OutputFormat{config.FormatTS, config.FormatJSON},
	})
	require.NoError(t, err)
	require.Len(t, res.Artifacts, 2)
	require.FileExists(t, filepath.Join(dir, "docs", ".vuepress", "config.ts"))
	require.FileExists(t, filepath.Join(dir, "docs", ".vuepress", "config.json"))
	require.Equal(t, "/yizhe_blog/", res.Root["base"])
	require.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeSuccess}, rec.outcomes)
	require.Equal(t, map[string]int{"ts": 1, "json": 1}, rec.artifacts)
}

func TestRender_NavbarOverride(t *testing.T) {
	_, path := writeYizhe(t)
	svc := NewRenderService()

	res, err := svc.Render(context.Background(), Request{ConfigPath: path, Navbar: preset.NavbarLegacy, DryRun: true})
	require.NoError(t, err)
	require.Empty(t, res.Artifacts)
	require.Equal(t, preset.NavbarLegacy, res.Config.Theme.Navbar.Active)
	nav := theme.Navbar(res.Root)
	require.Len(t, nav, 3)
	require.Equal(t, "博文", nav[1]["text"])

	_, err = svc.Render(context.Background(), Request{ConfigPath: path, Navbar: "missing"})
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestRender_OutputDirOverride(t *testing.T) {
	_, path := writeYizhe(t)
	out := filepath.Join(t.TempDir(), "out")

	res, err := NewRenderService().Render(context.Background(), Request{ConfigPath: path, OutputDir: out})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "config.ts"), res.Artifacts[0].Path)
}

func TestRender_InvalidConfigIsRecorded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: \"\"\n"), 0o600))

	rec := &fakeRecorder{}
	_, err := NewRenderService().WithRecorder(rec).Render(context.Background(), Request{ConfigPath: path})
	require.Error(t, err)
	require.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeInvalid}, rec.outcomes)
}

func TestRender_Cancelled(t *testing.T) {
	_, path := writeYizhe(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &fakeRecorder{}
	_, err := NewRenderService().WithRecorder(rec).Render(ctx, Request{ConfigPath: path})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeFailed}, rec.outcomes)
}

func TestRender_Duration(t *testing.T) {
	_, path := writeYizhe(t)
	res, err := NewRenderService().Render(context.Background(), Request{ConfigPath: path, DryRun: true})
	require.NoError(t, err)
	require.Greater(t, res.Duration, time.Duration(0))
}

func TestRender_RepoFromGit(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:yizhe/yizhe_blog.git"},
	})
	require.NoError(t, err)

	path := testkit.NewSiteBuilder(t).WithRepoFromGit().WriteFile(dir)
	res, err := NewRenderService().Render(context.Background(), Request{ConfigPath: path, DryRun: true})
	require.NoError(t, err)
	require.Equal(t, "yizhe/yizhe_blog", res.Config.Theme.Repo)
	require.Equal(t, "yizhe/yizhe_blog", res.Root["theme"].(map[string]any)["repo"])
}

func TestRender_RepoFromGitWithoutRepository(t *testing.T) {
	dir := t.TempDir()
	path := testkit.NewSiteBuilder(t).WithRepoFromGit().WriteFile(dir)

	res, err := NewRenderService().Render(context.Background(), Request{ConfigPath: path, DryRun: true})
	require.NoError(t, err)
	require.Empty(t, res.Config.Theme.Repo)
	require.NotContains(t, res.Root["theme"].(map[string]any), "repo")
}

func TestRender_StructuredSidebar(t *testing.T) {
	dir := t.TempDir()
	path := testkit.NewSiteBuilder(t).
		WithSidebar(config.SidebarPolicy{
			Mode:      config.SidebarStructure,
			Structure: map[string][]string{"/notes/": {"intro", "go", "rust"}},
		}).
		WriteFile(dir)

	res, err := NewRenderService().Render(context.Background(), Request{ConfigPath: path, DryRun: true})
	require.NoError(t, err)
	require.Equal(t,
		map[string]any{"/notes/": []string{"intro", "go", "rust"}},
		res.Root["theme"].(map[string]any)["sidebar"])
}
