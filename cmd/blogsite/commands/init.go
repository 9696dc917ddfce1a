package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/blogsite/internal/config"
	"git.home.luguber.info/inful/blogsite/internal/foundation/errors"
	"git.home.luguber.info/inful/blogsite/internal/preset"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool     `help:"Overwrite existing configuration file"`
	Preset string   `help:"Preset to write (${enum})" default:"yizhe" enum:"yizhe,minimal"`
	Enable []string `help:"Optional features to switch on (e.g. comment,mermaid)" sep:","`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	cfg, err := preset.Get(i.Preset)
	if err != nil {
		return err
	}
	if err := preset.Enable(cfg, i.Enable...); err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "cannot enable features").Build()
	}
	path := root.configPath()
	if err := config.Init(path, cfg, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Wrote %s preset to %s\n", i.Preset, path)
	for _, f := range preset.Features() {
		if !contains(i.Enable, f.Name) || f.Requires == "" {
			continue
		}
		_, _ = fmt.Fprintf(g.out(), "Feature %s needs the %s package\n", f.Name, f.Requires)
	}
	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
