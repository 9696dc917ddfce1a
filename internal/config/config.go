// Package config defines the site configuration schema and its loader.
//
// The file format is YAML. Values may reference environment variables as
// ${VAR}; variables from .env or .env.local are loaded first without
// overriding the process environment.
package config

// Config is the root of one site definition.
type Config struct {
	Base        string `yaml:"base,omitempty"`
	Lang        string `yaml:"lang,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`

	// ShouldPrefetch is emitted only when set; PWA sites turn it off.
	ShouldPrefetch *bool        `yaml:"should_prefetch,omitempty"`
	Theme          ThemeConfig  `yaml:"theme"`
	Output         OutputConfig `yaml:"output,omitempty"`
}

// ThemeConfig carries every theme option the generator reads.
type ThemeConfig struct {
	Hostname   string `yaml:"hostname"`
	Author     Author `yaml:"author,omitempty"`
	IconAssets string `yaml:"icon_assets,omitempty"`
	Logo       string `yaml:"logo,omitempty"`
	Repo       string `yaml:"repo,omitempty"`
	RepoLabel  string `yaml:"repo_label,omitempty"`
	// RepoFromGit fills Repo from the origin remote when Repo is empty.
	RepoFromGit bool   `yaml:"repo_from_git,omitempty"`
	DocsDir     string `yaml:"docs_dir,omitempty"`

	Print      bool     `yaml:"print"`
	Fullscreen bool     `yaml:"fullscreen"`
	Pure       bool     `yaml:"pure"`
	Darkmode   DarkMode `yaml:"darkmode,omitempty"`
	HotReload  bool     `yaml:"hot_reload,omitempty"`

	Navbar  NavbarConfig  `yaml:"navbar"`
	Sidebar SidebarPolicy `yaml:"sidebar,omitempty"`

	Footer        string `yaml:"footer,omitempty"`
	DisplayFooter bool   `yaml:"display_footer"`

	Blog        BlogProfile             `yaml:"blog,omitempty"`
	Encrypt     EncryptConfig           `yaml:"encrypt,omitempty"`
	MetaLocales MetaLocales             `yaml:"meta_locales,omitempty"`
	Plugins     map[string]PluginConfig `yaml:"plugins,omitempty"`

	// Behavior is passed to the theme as its second argument.
	Behavior ThemeBehavior `yaml:"behavior,omitempty"`

	// Extra is deep-merged into the assembled theme object last.
	Extra map[string]any `yaml:"extra,omitempty"`
}

// ThemeBehavior controls how the theme treats the options it is given.
type ThemeBehavior struct {
	// Custom allows overriding theme components and styles.
	Custom  bool `yaml:"custom,omitempty"`
	Debug   bool `yaml:"debug,omitempty"`
	Compact bool `yaml:"compact,omitempty"`
}

// IsZero reports whether no behavior option is set.
func (b ThemeBehavior) IsZero() bool {
	return b == ThemeBehavior{}
}

// Author identifies the site owner.
type Author struct {
	Name string `yaml:"name,omitempty"`
	URL  string `yaml:"url,omitempty"`
}

// BlogProfile is the author card shown on blog pages.
type BlogProfile struct {
	Name           string            `yaml:"name,omitempty"`
	// Avatar is emitted whenever it is set, including as "".
	Avatar         *string           `yaml:"avatar,omitempty"`
	Intro          string            `yaml:"intro,omitempty"`
	SidebarDisplay string            `yaml:"sidebar_display,omitempty"`
	Medias         map[string]string `yaml:"medias,omitempty"`
}

// MetaLocales overrides theme locale strings.
type MetaLocales struct {
	EditLink string `yaml:"edit_link,omitempty"`
}

// OutputConfig controls where and how the generator config is written.
type OutputConfig struct {
	Directory string         `yaml:"directory,omitempty"`
	Formats   []OutputFormat `yaml:"formats,omitempty"`
}
