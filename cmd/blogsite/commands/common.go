// Package commands implements the blogsite subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/blogsite/internal/config"
	"git.home.luguber.info/inful/blogsite/internal/logfields"
)

// Global carries state shared by every subcommand.
type Global struct {
	// Out receives user-facing output; logs go to stderr.
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Site configuration file" default:"site.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render   RenderCmd   `cmd:"" default:"withargs" help:"Render the generator config from the site configuration"`
	Validate ValidateCmd `cmd:"" help:"Validate the site configuration without writing anything"`
	Init     InitCmd     `cmd:"" help:"Write a preset site configuration"`
	Stylize  StylizeCmd  `cmd:"" help:"Render a markdown file through the configured stylize rules"`
	Watch    WatchCmd    `cmd:"" help:"Re-render whenever the site configuration changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(logfields.RunID(uuid.NewString()))
	slog.SetDefault(logger)
	return nil
}

// configPath returns the config file flag, falling back to the default name.
func (c *CLI) configPath() string {
	if c == nil || c.Config == "" {
		return config.DefaultPath
	}
	return c.Config
}

// parseFormats converts --format values into output formats.
func parseFormats(values []string) ([]config.OutputFormat, error) {
	formats := make([]config.OutputFormat, 0, len(values))
	for _, v := range values {
		f, err := config.ParseOutputFormat(v)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}
