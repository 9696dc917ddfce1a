package emit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogsite/internal/config"
	"git.home.luguber.info/inful/blogsite/internal/foundation/errors"
	"git.home.luguber.info/inful/blogsite/internal/stylize"
	"git.home.luguber.info/inful/blogsite/internal/theme"
)

func badgeRule() stylize.Rule {
	return stylize.TagRule(stylize.Literal("Recommended"), stylize.ReplaceSpec{
		When:    "em",
		Tag:     "Badge",
		Attrs:   map[string]string{"type": "tip"},
		Content: "Recommended",
	})
}

func smallRoot() map[string]any {
	return map[string]any{
		"base":        "/",
		"lang":        "en-US",
		"title":       "Blog",
		"description": "",
		"theme": map[string]any{
			"hostname": "https://example.com",
			"navbar":   []map[string]any{{"text": "Home", "link": "/"}},
			"plugins": map[string]any{
				"comment": false,
				"mdEnhance": map[string]any{
					"tabs":    true,
					"stylize": []stylize.Rule{badgeRule()},
				},
			},
			"encrypt": map[string]any{
				"config": map[string]any{"/secret/": []string{"1234"}},
			},
		},
	}
}

const smallTS = `import { defineUserConfig } from "vuepress";
import { hopeTheme } from "vuepress-theme-hope";

export default defineUserConfig({
  base: "/",
  lang: "en-US",
  title: "Blog",
  description: "",

  theme: hopeTheme({
    encrypt: {
      config: {
        "/secret/": [
          "1234",
        ],
      },
    },
    hostname: "https://example.com",
    navbar: [
      {
        link: "/",
        text: "Home",
      },
    ],
    plugins: {
      comment: false,
      mdEnhance: {
        stylize: [
          {
            matcher: "Recommended",
            replacer: ({ tag }) => {
              if (tag === "em")
                return {
                  tag: "Badge",
                  attrs: { "type": "tip" },
                  content: "Recommended",
                };
            },
          },
        ],
        tabs: true,
      },
    },
  }),
});
`

func TestRenderTS(t *testing.T) {
	body, err := renderTS(smallRoot())
	require.NoError(t, err)
	require.Equal(t, smallTS, string(body))
}

func TestRenderTS_BehaviorAndPrefetch(t *testing.T) {
	root := smallRoot()
	root["shouldPrefetch"] = false
	root[theme.BehaviorKey] = map[string]any{"custom": true}

	body, err := renderTS(root)
	require.NoError(t, err)
	text := string(body)
	require.Contains(t, text, "  description: \"\",\n  shouldPrefetch: false,\n\n  theme: hopeTheme({\n")
	require.True(t, strings.HasSuffix(text, "    },\n  }, {\n    custom: true,\n  }),\n});\n"))
	require.NotContains(t, text, "behavior:")

	js, err := renderJSON(root)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(js, &decoded))
	require.Equal(t, map[string]any{"custom": true}, decoded[theme.BehaviorKey])
	require.Equal(t, false, decoded["shouldPrefetch"])
}

func TestRender_TSHeaderCarriesFingerprint(t *testing.T) {
	data, fp, err := Render(smallRoot(), config.FormatTS)
	require.NoError(t, err)
	require.NotEmpty(t, fp)

	text := string(data)
	require.True(t, strings.HasPrefix(text, "// "+generatedNotice+"\n"))
	require.True(t, strings.HasSuffix(text, smallTS))
	require.Equal(t, fp, storedFingerprint(config.FormatTS, data))
	require.Equal(t, Fingerprint(config.FormatTS, []byte(smallTS)), fp)
}

func TestRender_JSON(t *testing.T) {
	data, fp, err := Render(smallRoot(), config.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, fp, storedFingerprint(config.FormatJSON, data))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Blog", decoded["title"])

	md := decoded["theme"].(map[string]any)["plugins"].(map[string]any)["mdEnhance"].(map[string]any)
	require.Equal(t, []any{map[string]any{
		"matcher": "Recommended",
		"when":    "em",
		"replace": map[string]any{
			"tag":     "Badge",
			"attrs":   map[string]any{"type": "tip"},
			"content": "Recommended",
		},
	}}, md["stylize"])
}

func TestRender_YAML(t *testing.T) {
	data, fp, err := Render(smallRoot(), config.FormatYAML)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "# "+generatedNotice+"\n"))
	require.Equal(t, fp, storedFingerprint(config.FormatYAML, data))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	th := decoded["theme"].(map[string]any)
	require.Equal(t, []any{map[string]any{"text": "Home", "link": "/"}}, th["navbar"])
	require.Equal(t, false, th["plugins"].(map[string]any)["comment"])
}

func TestRender_FuncRuleCannotBeEmitted(t *testing.T) {
	root := smallRoot()
	rule := stylize.Func(stylize.Literal("x"), func(stylize.Tag) (stylize.Tag, bool) { return stylize.Tag{}, false })
	root["theme"].(map[string]any)["plugins"].(map[string]any)["mdEnhance"].(map[string]any)["stylize"] = []stylize.Rule{rule}

	for _, format := range []config.OutputFormat{config.FormatTS, config.FormatJSON, config.FormatYAML} {
		_, _, err := Render(root, format)
		require.Error(t, err, format)
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, _, err := Render(smallRoot(), "toml")
	require.Error(t, err)
}

func TestEncodeJS(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"string", `say "hi" <b>`, `"say \"hi\" <b>"`},
		{"number", 42, "42"},
		{"float", 1.5, "1.5"},
		{"empty map", map[string]any{}, "{}"},
		{"empty slice", []string{}, "[]"},
		{"quoted key", map[string]string{"data-x": "1"}, "{\n  \"data-x\": \"1\",\n}"},
		{"nested", map[string]any{"a": []any{true, nil}}, "{\n  a: [\n    true,\n    null,\n  ],\n}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := encodeJS(tc.in, "")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := encodeJS(map[int]string{1: "x"}, "")
	require.Error(t, err)
	_, err = encodeJS(func() {}, "")
	require.Error(t, err)
}

func TestWriter_SkipsUnchanged(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs", ".vuepress")
	w := NewWriter(config.OutputConfig{
		Directory: dir,
		Formats:   []config.OutputFormat{config.FormatTS, config.FormatJSON, config.FormatYAML},
	})

	first, err := w.Write(smallRoot())
	require.NoError(t, err)
	require.Len(t, first, 3)
	for _, art := range first {
		require.True(t, art.Written, art.Path)
		require.FileExists(t, art.Path)
	}
	require.Equal(t, filepath.Join(dir, "config.ts"), first[0].Path)

	second, err := w.Write(smallRoot())
	require.NoError(t, err)
	for i, art := range second {
		require.False(t, art.Written, art.Path)
		require.Equal(t, first[i].Fingerprint, art.Fingerprint)
	}

	changed := smallRoot()
	changed["title"] = "Other"
	third, err := w.Write(changed)
	require.NoError(t, err)
	for i, art := range third {
		require.True(t, art.Written, art.Path)
		require.NotEqual(t, first[i].Fingerprint, art.Fingerprint)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3, "no temporary files left behind")
}

func TestWriter_RewritesHandEditedFile(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(config.OutputConfig{Directory: dir})
	require.Equal(t, []config.OutputFormat{config.FormatTS}, w.Formats)

	arts, err := w.Write(smallRoot())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(arts[0].Path, []byte("export default {};\n"), 0o600))

	arts, err = w.Write(smallRoot())
	require.NoError(t, err)
	require.True(t, arts[0].Written)

	data, err := os.ReadFile(arts[0].Path)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(data), smallTS))
}

func TestWriter_ErrorCategories(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := NewWriter(config.OutputConfig{Directory: filepath.Join(blocker, "out")}).Write(smallRoot())
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
	require.ErrorIs(t, err, syscall.ENOTDIR)

	root := smallRoot()
	rule := stylize.Func(stylize.Literal("x"), func(stylize.Tag) (stylize.Tag, bool) { return stylize.Tag{}, false })
	root["theme"].(map[string]any)["plugins"].(map[string]any)["mdEnhance"].(map[string]any)["stylize"] = []stylize.Rule{rule}
	_, err = NewWriter(config.OutputConfig{Directory: t.TempDir()}).Write(root)
	require.Error(t, err)
	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	require.Equal(t, errors.CategoryRender, classified.Category())
	require.Equal(t, errors.SeverityFatal, classified.Severity())
}
