// Package preset holds ready-made site configurations written by `blogsite init`.
package preset

import (
	"fmt"
	"sort"

	"git.home.luguber.info/inful/blogsite/internal/config"
)

// DefaultName is the preset used when none is requested.
const DefaultName = "yizhe"

var presets = map[string]func() *config.Config{
	"yizhe":   Yizhe,
	"minimal": Minimal,
}

// Names lists the available presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a fresh copy of the named preset with defaults applied.
func Get(name string) (*config.Config, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, Names())
	}
	cfg := build()
	if err := config.ApplyDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Minimal is the smallest configuration that passes validation.
func Minimal() *config.Config {
	return &config.Config{
		Title: "My Blog",
		Theme: config.ThemeConfig{
			Hostname: "https://example.com",
			Navbar: config.NavbarConfig{
				Active: config.DefaultNavbarVariant,
				Variants: map[string][]config.NavItem{
					config.DefaultNavbarVariant: {{Text: "Home", Icon: "home", Link: "/"}},
				},
			},
		},
	}
}
