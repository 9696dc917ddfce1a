package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/blogsite/internal/foundation/errors"
	"git.home.luguber.info/inful/blogsite/internal/frontmatter"
	"git.home.luguber.info/inful/blogsite/internal/logfields"
	"git.home.luguber.info/inful/blogsite/internal/site"
	"git.home.luguber.info/inful/blogsite/internal/stylize"
)

// StylizeCmd implements the 'stylize' command.
type StylizeCmd struct {
	File   string `arg:"" help:"Markdown file to render ('-' for stdin)"`
	Plugin string `help:"Plugin whose stylize rules are applied" default:"mdEnhance"`
}

func (s *StylizeCmd) Run(g *Global, root *CLI) error {
	cfg, err := site.NewRenderService().Load(site.Request{ConfigPath: root.configPath()})
	if err != nil {
		return err
	}
	plugin, ok := cfg.Theme.Plugins[s.Plugin]
	if !ok || !plugin.Enabled {
		return errors.NewError(errors.CategoryNotFound, "plugin is not enabled").
			WithContext("plugin", s.Plugin).
			Build()
	}
	rules, err := plugin.CompileStylize()
	if err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid stylize rules").Build()
	}

	source, err := s.read()
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to read markdown").
			WithContext("path", s.File).
			Build()
	}
	page, err := frontmatter.Parse(source)
	if err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid frontmatter").
			WithContext("path", s.File).
			Build()
	}
	if page.HasFrontmatter {
		slog.Debug("Parsed post frontmatter",
			logfields.Path(s.File),
			slog.String("title", page.Title()),
			slog.Any("tags", page.Strings("tag")))
	}

	html, err := stylize.Render(page.Body, rules...)
	if err != nil {
		return errors.WrapError(err, errors.CategoryRender, "failed to render markdown").Build()
	}
	_, err = g.out().Write(html)
	return err
}

func (s *StylizeCmd) read() ([]byte, error) {
	if s.File == "-" {
		return io.ReadAll(os.Stdin)
	}
	// #nosec G304 -- user-supplied markdown file
	return os.ReadFile(s.File)
}
