package preset

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/blogsite/internal/config"
)

// Feature is an optional theme capability the yizhe blog ships switched
// off. Requires names the npm package the site must install first.
type Feature struct {
	Name        string
	Description string
	Requires    string
	apply       func(*config.Config)
}

var features = []Feature{
	{
		Name:        "hotReload",
		Description: "Reload the dev server on every theme option change",
		apply:       func(cfg *config.Config) { cfg.Theme.HotReload = true },
	},
	{
		Name:        "comment",
		Description: "Waline comments (demo server; deploy your own for production)",
		Requires:    "@waline/client",
		apply: setPlugin("comment", map[string]any{
			"provider":  "Waline",
			"serverURL": "https://waline-comment.vuejs.press",
		}),
	},
	{
		Name:        "pwa",
		Description: "Progressive web app with offline caching; also disables prefetch",
		Requires:    "@vuepress/plugin-pwa",
		apply: func(cfg *config.Config) {
			prefetch := false
			cfg.ShouldPrefetch = &prefetch
			setPlugin("pwa", pwaOptions())(cfg)
		},
	},
	mdFeature("chart", "Chart.js charts", "chart.js", true),
	mdFeature("echarts", "ECharts charts", "echarts", true),
	mdFeature("flowchart", "Flowcharts", "flowchart.ts", true),
	mdFeature("gfm", "GitHub flavored markdown (needs TeX support)", "mathjax-full", true),
	mdFeature("katex", "TeX rendering with KaTeX", "katex", true),
	mdFeature("mathjax", "TeX rendering with MathJax", "mathjax-full", true),
	mdFeature("mermaid", "Mermaid diagrams", "mermaid", true),
	mdFeature("playground", "Code playgrounds", "", map[string]any{
		"presets": []any{"ts", "vue"},
	}),
	mdFeature("revealJs", "Reveal.js slides", "reveal.js", map[string]any{
		"plugins": []any{"highlight", "math", "search", "notes", "zoom"},
	}),
	mdFeature("vuePlayground", "Vue playground", "@vue/repl", true),
	mdFeature("sandpack", "Sandpack code sandboxes", "sandpack-vue3", true),
}

// Features lists the optional capabilities in declaration order.
func Features() []Feature {
	return append([]Feature(nil), features...)
}

// FeatureNames lists the feature names in sorted order.
func FeatureNames() []string {
	names := make([]string, 0, len(features))
	for _, f := range features {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Enable switches on the named features in cfg. Unknown names are rejected
// before anything is changed.
func Enable(cfg *config.Config, names ...string) error {
	selected := make([]Feature, 0, len(names))
	var unknown []string
	for _, name := range names {
		f, ok := lookupFeature(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		selected = append(selected, f)
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown feature(s) %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(FeatureNames(), ", "))
	}
	for _, f := range selected {
		f.apply(cfg)
	}
	return nil
}

func lookupFeature(name string) (Feature, bool) {
	for _, f := range features {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Feature{}, false
}

func setPlugin(name string, options map[string]any) func(*config.Config) {
	return func(cfg *config.Config) {
		if cfg.Theme.Plugins == nil {
			cfg.Theme.Plugins = map[string]config.PluginConfig{}
		}
		cfg.Theme.Plugins[name] = config.EnabledPlugin(options)
	}
}

// mdFeature turns on one markdown enhancement option, enabling mdEnhance if needed.
func mdFeature(option, description, requires string, value any) Feature {
	return Feature{
		Name:        option,
		Description: description,
		Requires:    requires,
		apply: func(cfg *config.Config) {
			if cfg.Theme.Plugins == nil {
				cfg.Theme.Plugins = map[string]config.PluginConfig{}
			}
			md := cfg.Theme.Plugins["mdEnhance"]
			md.Enabled = true
			if md.Options == nil {
				md.Options = map[string]any{}
			}
			md.Options[option] = value
			cfg.Theme.Plugins["mdEnhance"] = md
		},
	}
}

func pwaOptions() map[string]any {
	return map[string]any{
		"favicon":    "/favicon.ico",
		"cacheHTML":  true,
		"cachePic":   true,
		"appendBase": true,
		"apple": map[string]any{
			"icon":           "/assets/icon/apple-icon-152.png",
			"statusBarColor": "black",
		},
		"msTile": map[string]any{
			"image": "/assets/icon/ms-icon-144.png",
			"color": "#ffffff",
		},
		"manifest": map[string]any{
			"icons": []any{
				map[string]any{"src": "/assets/icon/chrome-mask-512.png", "sizes": "512x512", "purpose": "maskable", "type": "image/png"},
				map[string]any{"src": "/assets/icon/chrome-mask-192.png", "sizes": "192x192", "purpose": "maskable", "type": "image/png"},
				map[string]any{"src": "/assets/icon/chrome-512.png", "sizes": "512x512", "type": "image/png"},
				map[string]any{"src": "/assets/icon/chrome-192.png", "sizes": "192x192", "type": "image/png"},
			},
			"shortcuts": []any{
				map[string]any{
					"name":       "Demo",
					"short_name": "Demo",
					"url":        "/demo/",
					"icons": []any{
						map[string]any{"src": "/assets/icon/guide-maskable.png", "sizes": "192x192", "purpose": "maskable", "type": "image/png"},
					},
				},
			},
		},
	}
}
