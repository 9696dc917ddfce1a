package config

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// SiteDefaultApplier handles root identity defaults.
type SiteDefaultApplier struct{}

func (SiteDefaultApplier) Domain() string { return "site" }

func (SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Base == "" {
		cfg.Base = "/"
	}
	if cfg.Lang == "" {
		cfg.Lang = "en-US"
	}
	return nil
}

// ThemeDefaultApplier handles theme defaults.
type ThemeDefaultApplier struct{}

func (ThemeDefaultApplier) Domain() string { return "theme" }

func (ThemeDefaultApplier) ApplyDefaults(cfg *Config) error {
	th := &cfg.Theme
	// Validation reports unknown tags; only canonicalize known spellings here.
	if mode, err := ParseDarkMode(string(th.Darkmode)).ToTuple(); err == nil {
		th.Darkmode = mode
	}
	if mode, err := ParseSidebarMode(string(th.Sidebar.Mode)).ToTuple(); err == nil {
		th.Sidebar.Mode = mode
	}
	if th.Navbar.Active == "" && len(th.Navbar.Variants) == 1 {
		for name := range th.Navbar.Variants {
			th.Navbar.Active = name
		}
	}
	return nil
}

// OutputDefaultApplier handles output defaults.
type OutputDefaultApplier struct{}

func (OutputDefaultApplier) Domain() string { return "output" }

func (OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "docs/.vuepress"
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []OutputFormat{FormatTS}
		return nil
	}
	for i, f := range cfg.Output.Formats {
		if parsed, err := ParseOutputFormat(string(f)); err == nil {
			cfg.Output.Formats[i] = parsed
		}
	}
	return nil
}

// defaultAppliers run in order.
var defaultAppliers = []DefaultApplier{
	SiteDefaultApplier{},
	ThemeDefaultApplier{},
	OutputDefaultApplier{},
}

// ApplyDefaults fills unset fields across every domain.
func ApplyDefaults(cfg *Config) error {
	for _, applier := range defaultAppliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
