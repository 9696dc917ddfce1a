package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/blogsite/internal/emit"
	"git.home.luguber.info/inful/blogsite/internal/site"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Output string   `short:"o" help:"Output directory (overrides output.directory)" type:"path"`
	Format []string `short:"f" help:"Output formats: ts, json, yaml (overrides output.formats)" sep:","`
	Navbar string   `help:"Navbar variant to activate (overrides theme.navbar.active)"`
	DryRun bool     `name:"dry-run" help:"Print the first format to stdout instead of writing files"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	formats, err := parseFormats(r.Format)
	if err != nil {
		return err
	}
	req := site.Request{
		ConfigPath: root.configPath(),
		OutputDir:  r.Output,
		Formats:    formats,
		Navbar:     r.Navbar,
		DryRun:     r.DryRun,
	}

	res, err := site.NewRenderService().Render(ctx, req)
	if err != nil {
		return err
	}

	out := g.out()
	if r.DryRun {
		data, _, err := emit.Render(res.Root, res.Config.Output.Formats[0])
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	for _, art := range res.Artifacts {
		status := "unchanged"
		if art.Written {
			status = "wrote"
		}
		_, _ = fmt.Fprintf(out, "%-9s %s\n", status, art.Path)
	}
	return nil
}
