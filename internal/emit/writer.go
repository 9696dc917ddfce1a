package emit

import (
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/blogsite/internal/config"
	"git.home.luguber.info/inful/blogsite/internal/foundation/errors"
	"git.home.luguber.info/inful/blogsite/internal/logfields"
)

// Artifact describes one emitted file.
type Artifact struct {
	Format      config.OutputFormat
	Path        string
	Fingerprint string
	// Written is false when the file already had the same fingerprint.
	Written bool
}

// Writer emits generator config files into Dir.
type Writer struct {
	Dir     string
	Formats []config.OutputFormat
}

// NewWriter returns a writer for the configured output.
func NewWriter(out config.OutputConfig) *Writer {
	formats := out.Formats
	if len(formats) == 0 {
		formats = []config.OutputFormat{config.FormatTS}
	}
	return &Writer{Dir: out.Directory, Formats: formats}
}

// Write renders root in every format and writes the files whose content changed.
func (w *Writer) Write(root map[string]any) ([]Artifact, error) {
	if err := os.MkdirAll(w.Dir, 0o750); err != nil {
		return nil, errors.FileSystemError("failed to create output directory").
			WithCause(err).
			WithContext("path", w.Dir).
			Build()
	}

	artifacts := make([]Artifact, 0, len(w.Formats))
	for _, format := range w.Formats {
		data, fp, err := Render(root, format)
		if err != nil {
			return artifacts, errors.RenderError("failed to render generator config").
				WithCause(err).
				WithContext("format", string(format)).
				Build()
		}

		path := filepath.Join(w.Dir, FileName(format))
		art := Artifact{Format: format, Path: path, Fingerprint: fp}

		if unchanged(path, format, fp) {
			slog.Debug("Generator config unchanged", logfields.Path(path), logfields.Fingerprint(fp))
			artifacts = append(artifacts, art)
			continue
		}
		if err := writeAtomic(path, data); err != nil {
			return artifacts, errors.FileSystemError("failed to write generator config").
				WithCause(err).
				WithContext("path", path).
				Build()
		}
		art.Written = true
		slog.Info("Wrote generator config", logfields.Path(path), logfields.Format(string(format)), logfields.Fingerprint(fp))
		artifacts = append(artifacts, art)
	}
	return artifacts, nil
}

func unchanged(path string, format config.OutputFormat, fp string) bool {
	// #nosec G304 -- path is inside the configured output directory
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return storedFingerprint(format, existing) == fp
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	// #nosec G306 -- generator config must be readable by the site build
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
