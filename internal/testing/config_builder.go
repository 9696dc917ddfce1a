package testing

import (
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/blogsite/internal/config"
)

// SiteBuilder provides a fluent interface for creating test site configurations.
type SiteBuilder struct {
	config *config.Config
	t      *testing.T
}

// NewSiteBuilder starts from the smallest valid configuration.
func NewSiteBuilder(t *testing.T) *SiteBuilder {
	t.Helper()
	return &SiteBuilder{
		config: &config.Config{
			Title: "Test Blog",
			Theme: config.ThemeConfig{
				Hostname: "https://blog.example.com",
				Navbar: config.NavbarConfig{
					Active: config.DefaultNavbarVariant,
					Variants: map[string][]config.NavItem{
						config.DefaultNavbarVariant: {{Text: "Home", Link: "/"}},
					},
				},
			},
			Output: config.OutputConfig{
				Directory: filepath.Join(t.TempDir(), "docs", ".vuepress"),
			},
		},
		t: t,
	}
}

// WithTitle sets the site title.
func (sb *SiteBuilder) WithTitle(title string) *SiteBuilder {
	sb.config.Title = title
	return sb
}

// WithBase sets the base path and language tag.
func (sb *SiteBuilder) WithBase(base, lang string) *SiteBuilder {
	sb.config.Base = base
	sb.config.Lang = lang
	return sb
}

// WithNavbarVariant adds or replaces a navbar variant.
func (sb *SiteBuilder) WithNavbarVariant(name string, items ...config.NavItem) *SiteBuilder {
	sb.config.Theme.Navbar.Variants[name] = items
	return sb
}

// WithActiveNavbar selects the active navbar variant.
func (sb *SiteBuilder) WithActiveNavbar(name string) *SiteBuilder {
	sb.config.Theme.Navbar.Active = name
	return sb
}

// WithSidebar sets the sidebar policy.
func (sb *SiteBuilder) WithSidebar(policy config.SidebarPolicy) *SiteBuilder {
	sb.config.Theme.Sidebar = policy
	return sb
}

// WithEncryptedPath gates path behind passphrases.
func (sb *SiteBuilder) WithEncryptedPath(path string, passphrases ...string) *SiteBuilder {
	if sb.config.Theme.Encrypt.Config == nil {
		sb.config.Theme.Encrypt.Config = map[string][]string{}
	}
	sb.config.Theme.Encrypt.Config[path] = passphrases
	return sb
}

// WithPlugin sets one plugin entry.
func (sb *SiteBuilder) WithPlugin(name string, plugin config.PluginConfig) *SiteBuilder {
	if sb.config.Theme.Plugins == nil {
		sb.config.Theme.Plugins = map[string]config.PluginConfig{}
	}
	sb.config.Theme.Plugins[name] = plugin
	return sb
}

// WithRepoFromGit asks the render to derive theme.repo from the git remote.
func (sb *SiteBuilder) WithRepoFromGit() *SiteBuilder {
	sb.config.Theme.RepoFromGit = true
	return sb
}

// WithOutputDir sets the output directory.
func (sb *SiteBuilder) WithOutputDir(dir string) *SiteBuilder {
	sb.config.Output.Directory = dir
	return sb
}

// Build applies defaults, fails the test if the result is invalid, and returns it.
func (sb *SiteBuilder) Build() *config.Config {
	sb.t.Helper()
	if err := config.ApplyDefaults(sb.config); err != nil {
		sb.t.Fatalf("apply defaults: %v", err)
	}
	if err := config.Validate(sb.config); err != nil {
		sb.t.Fatalf("invalid test config: %v", err)
	}
	return sb.config
}

// WriteFile builds the config and writes it to dir/site.yaml, returning the path.
func (sb *SiteBuilder) WriteFile(dir string) string {
	sb.t.Helper()
	cfg := sb.Build()
	path := filepath.Join(dir, config.DefaultPath)
	if err := config.Init(path, cfg, true); err != nil {
		sb.t.Fatalf("write config: %v", err)
	}
	return path
}
