package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/blogsite/internal/site"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Navbar string `help:"Also check that this navbar variant exists"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := site.NewRenderService().Load(site.Request{ConfigPath: root.configPath(), Navbar: v.Navbar})
	if err != nil {
		return err
	}

	enabled := 0
	for _, p := range cfg.Theme.Plugins {
		if p.Enabled {
			enabled++
		}
	}

	out := g.out()
	_, _ = fmt.Fprintf(out, "Configuration %s is valid\n", root.configPath())
	_, _ = fmt.Fprintf(out, "  title:   %s\n", cfg.Title)
	_, _ = fmt.Fprintf(out, "  navbar:  %s (variants: %s)\n", cfg.Theme.Navbar.Active, strings.Join(cfg.Theme.Navbar.VariantNames(), ", "))
	_, _ = fmt.Fprintf(out, "  sidebar: %s\n", cfg.Theme.Sidebar.Mode)
	_, _ = fmt.Fprintf(out, "  plugins: %d enabled, %d disabled\n", enabled, len(cfg.Theme.Plugins)-enabled)
	return nil
}
