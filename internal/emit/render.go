package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogsite/internal/config"
	"git.home.luguber.info/inful/blogsite/internal/theme"
)

const generatedNotice = "Code generated by blogsite. DO NOT EDIT."

// rootKeyOrder fixes the order of the generator root keys in config.ts.
var rootKeyOrder = []string{"base", "lang", "title", "description"}

// FileName returns the artifact file name for format.
func FileName(format config.OutputFormat) string {
	return "config." + string(format)
}

// Fingerprint returns the content fingerprint of an artifact body.
func Fingerprint(format config.OutputFormat, body []byte) string {
	return mdfp.CalculateFingerprintFromParts("format: "+string(format), string(body))
}

// Render encodes root in format and returns the file contents together with
// the fingerprint of its body.
func Render(root map[string]any, format config.OutputFormat) ([]byte, string, error) {
	var (
		body []byte
		err  error
	)
	switch format {
	case config.FormatTS:
		body, err = renderTS(root)
	case config.FormatJSON:
		body, err = renderJSON(root)
	case config.FormatYAML:
		body, err = renderYAML(root)
	default:
		return nil, "", fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return nil, "", fmt.Errorf("render %s: %w", format, err)
	}

	fp := Fingerprint(format, body)
	return append(header(format, fp), body...), fp, nil
}

// header returns the comment block placed before the body. JSON has no comments.
func header(format config.OutputFormat, fp string) []byte {
	var prefix string
	switch format {
	case config.FormatTS:
		prefix = "// "
	case config.FormatYAML:
		prefix = "# "
	default:
		return nil
	}
	return []byte(prefix + generatedNotice + "\n" + prefix + mdfp.FingerprintField + ": " + fp + "\n\n")
}

// storedFingerprint extracts the fingerprint an existing artifact was written with.
func storedFingerprint(format config.OutputFormat, data []byte) string {
	if format == config.FormatJSON {
		return Fingerprint(format, data)
	}
	marker := mdfp.FingerprintField + ": "
	lines := strings.SplitN(string(data), "\n", 4)
	for _, line := range lines[:min(3, len(lines))] {
		line = strings.TrimLeft(line, "/# ")
		if fp, ok := strings.CutPrefix(line, marker); ok {
			return strings.TrimSpace(fp)
		}
	}
	return ""
}

func renderTS(root map[string]any) ([]byte, error) {
	var b strings.Builder
	b.WriteString("import { defineUserConfig } from \"vuepress\";\n")
	b.WriteString("import { hopeTheme } from \"vuepress-theme-hope\";\n\n")
	b.WriteString("export default defineUserConfig({\n")

	seen := map[string]bool{"theme": true, theme.BehaviorKey: true}
	writeKey := func(k string) error {
		seen[k] = true
		v, ok := root[k]
		if !ok {
			return nil
		}
		val, err := encodeJS(v, "  ")
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		b.WriteString("  " + jsKey(k) + ": " + val + ",\n")
		return nil
	}
	for _, k := range rootKeyOrder {
		if err := writeKey(k); err != nil {
			return nil, err
		}
	}
	for _, k := range sortedKeys(root) {
		if seen[k] {
			continue
		}
		if err := writeKey(k); err != nil {
			return nil, err
		}
	}

	th, err := encodeJS(root["theme"], "  ")
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	args := th
	if behavior, ok := root[theme.BehaviorKey]; ok {
		opts, err := encodeJS(behavior, "  ")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", theme.BehaviorKey, err)
		}
		args += ", " + opts
	}
	b.WriteString("\n  theme: hopeTheme(" + args + "),\n")
	b.WriteString("});\n")
	return []byte(b.String()), nil
}

func renderJSON(root map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderYAML(root map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
