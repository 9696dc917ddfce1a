package theme

import (
	"encoding/json"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogsite/internal/config"
	"git.home.luguber.info/inful/blogsite/internal/preset"
	"git.home.luguber.info/inful/blogsite/internal/stylize"
)

func yizhe(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := preset.Get(preset.DefaultName)
	require.NoError(t, err)
	return cfg
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestAssemble_EndToEnd(t *testing.T) {
	cfg := yizhe(t)
	root := Assemble(cfg)

	require.Equal(t, "/yizhe_blog/", root["base"])
	require.Equal(t, "zh-CN", root["lang"])
	require.Equal(t, "yizhe的博客", root["title"])

	th, ok := root["theme"].(map[string]any)
	require.True(t, ok)
	require.NotEmpty(t, th)
	require.Equal(t, BuildNavbar(cfg.Theme.Navbar.Items()), th["navbar"])
	require.Equal(t, Navbar(root), th["navbar"])
}

func TestAssemble_ThemeFields(t *testing.T) {
	root := Assemble(yizhe(t))
	th := root["theme"].(map[string]any)

	require.Equal(t, []string{
		"author", "blog", "darkmode", "displayFooter", "docsDir", "encrypt", "footer",
		"fullscreen", "hostname", "iconAssets", "logo", "metaLocales", "navbar", "plugins",
		"print", "pure", "repo", "repoLabel", "sidebar",
	}, Keys(root))

	require.Equal(t, "https://mister-hope.github.io", th["hostname"])
	require.Equal(t, map[string]any{"name": "Mr.Hope", "url": "https://mister-hope.com"}, th["author"])
	require.Equal(t, false, th["print"])
	require.Equal(t, false, th["fullscreen"])
	require.Equal(t, true, th["pure"])
	require.Equal(t, "toggle", th["darkmode"])
	require.Equal(t, "heading", th["sidebar"])
	require.Equal(t, "默认页脚", th["footer"])
	require.Equal(t, false, th["displayFooter"])
	require.Equal(t, map[string]any{"editLink": "在 GitHub 上编辑此页"}, th["metaLocales"])
	require.NotContains(t, th, "hotReload")

	blog := th["blog"].(map[string]any)
	require.Equal(t, "mobile", blog["sidebarDisplay"])
	require.Equal(t, "/intro.html", blog["intro"])
	require.Equal(t, "", blog["avatar"])
	require.Equal(t, "https://github.com/EricKiku", blog["medias"].(map[string]any)["GitHub"])

	enc := th["encrypt"].(map[string]any)
	require.Equal(t, map[string]any{"/demo/encrypt.html": []string{"1234"}}, enc["config"])
	require.NotContains(t, enc, "admin")
}

func TestAssemble_RootBehavior(t *testing.T) {
	cfg := yizhe(t)
	root := Assemble(cfg)
	require.Equal(t, map[string]any{"custom": true}, root[BehaviorKey])
	require.NotContains(t, root, "shouldPrefetch")

	prefetch := false
	cfg.ShouldPrefetch = &prefetch
	cfg.Theme.HotReload = true
	cfg.Theme.Behavior = config.ThemeBehavior{Debug: true, Compact: true}
	root = Assemble(cfg)
	require.Equal(t, false, root["shouldPrefetch"])
	require.Equal(t, map[string]any{"debug": true, "compact": true}, root[BehaviorKey])
	require.Equal(t, true, root["theme"].(map[string]any)["hotReload"])

	cfg.Theme.Behavior = config.ThemeBehavior{}
	require.NotContains(t, Assemble(cfg), BehaviorKey)
}

func TestBlogValue_Avatar(t *testing.T) {
	require.Nil(t, blogValue(config.BlogProfile{}))

	empty := ""
	require.Equal(t, map[string]any{"avatar": ""}, blogValue(config.BlogProfile{Avatar: &empty}))

	require.Equal(t, map[string]any{"name": "yizhe"}, blogValue(config.BlogProfile{Name: "yizhe"}))
}

func TestAssemble_Plugins(t *testing.T) {
	th := Assemble(yizhe(t))["theme"].(map[string]any)
	plugins := th["plugins"].(map[string]any)

	require.Equal(t, []string{"blog", "components", "mdEnhance"}, slices.Sorted(maps.Keys(plugins)))
	require.Equal(t, map[string]any{
		"article":      "/article/",
		"categoryItem": false,
		"tagItem":      false,
		"star":         false,
		"timeline":     false,
	}, plugins["blog"])
	require.Equal(t, map[string]any{"components": []any{"Badge", "VPCard"}}, plugins["components"])

	md := plugins["mdEnhance"].(map[string]any)
	require.Equal(t, true, md["tabs"])
	require.Equal(t, true, md["imgLazyload"])
	require.Equal(t, true, md["component"])
	require.NotContains(t, md, "mermaid")

	rules, ok := md[config.StylizeOption].([]stylize.Rule)
	require.True(t, ok)
	require.Len(t, rules, 1)

	got, ok := stylize.Apply(rules, stylize.Tag{Name: "em", Content: "Recommended"})
	require.True(t, ok)
	require.Equal(t, stylize.Tag{Name: "Badge", Attrs: map[string]string{"type": "tip"}, Content: "Recommended"}, got)
}

func TestAssemble_Deterministic(t *testing.T) {
	cfg := yizhe(t)
	first := mustJSON(t, Assemble(cfg))
	second := mustJSON(t, Assemble(cfg))
	require.Equal(t, first, second)
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	cfg := yizhe(t)
	cfg.Theme.Extra = map[string]any{"blog": map[string]any{"name": "override"}}
	before := mustJSON(t, cfg)

	root := Assemble(cfg)
	th := root["theme"].(map[string]any)
	th["navbar"].([]map[string]any)[0]["text"] = "mutated"
	th["blog"].(map[string]any)["name"] = "mutated"

	require.Equal(t, before, mustJSON(t, cfg))
}

func TestAssemble_DoesNotMutateNestedPluginOptions(t *testing.T) {
	cfg := yizhe(t)
	cfg.Theme.Plugins["search"] = config.EnabledPlugin(map[string]any{
		"locales": map[string]any{"/": map[string]any{"placeholder": "搜索"}},
		"hotKeys": []any{"s", "/"},
	})
	cfg.Theme.Extra = map[string]any{
		"plugins": map[string]any{
			"search": map[string]any{"locales": map[string]any{"/": map[string]any{"placeholder": "查找"}}},
		},
	}
	before := mustJSON(t, cfg)

	root := Assemble(cfg)
	search := root["theme"].(map[string]any)["plugins"].(map[string]any)["search"].(map[string]any)
	require.Equal(t, "查找", search["locales"].(map[string]any)["/"].(map[string]any)["placeholder"])

	search["hotKeys"].([]any)[0] = "k"
	search["locales"].(map[string]any)["/"].(map[string]any)["placeholder"] = "mutated"
	components := root["theme"].(map[string]any)["plugins"].(map[string]any)["components"].(map[string]any)
	components["components"].([]any)[0] = "mutated"

	require.Equal(t, before, mustJSON(t, cfg))
	require.Equal(t, "搜索", cfg.Theme.Plugins["search"].Options["locales"].(map[string]any)["/"].(map[string]any)["placeholder"])
}

func TestAssemble_NavbarSwapChangesOnlyNavbar(t *testing.T) {
	cfg := yizhe(t)
	current := Assemble(cfg)

	legacyNav, err := cfg.Theme.Navbar.WithActive(preset.NavbarLegacy)
	require.NoError(t, err)
	swapped := *cfg
	swapped.Theme.Navbar = legacyNav
	legacy := Assemble(&swapped)

	require.NotEqual(t, mustJSON(t, Navbar(current)), mustJSON(t, Navbar(legacy)))
	require.Equal(t, BuildNavbar(cfg.Theme.Navbar.Variants[preset.NavbarLegacy]), Navbar(legacy))

	delete(current["theme"].(map[string]any), "navbar")
	delete(legacy["theme"].(map[string]any), "navbar")
	require.Equal(t, mustJSON(t, current), mustJSON(t, legacy))
}

func TestAssemble_EveryNavbarEntryHasTextAndLink(t *testing.T) {
	cfg := yizhe(t)
	for _, name := range cfg.Theme.Navbar.VariantNames() {
		nav, err := cfg.Theme.Navbar.WithActive(name)
		require.NoError(t, err)
		c := *cfg
		c.Theme.Navbar = nav
		for i, entry := range Navbar(Assemble(&c)) {
			require.NotEmpty(t, entry["text"], "%s[%d]", name, i)
			require.NotEmpty(t, entry["link"], "%s[%d]", name, i)
		}
	}
}

func TestAssemble_ExtraDeepMerge(t *testing.T) {
	cfg := yizhe(t)
	cfg.Theme.Extra = map[string]any{
		"blog":     map[string]any{"avatar": "/avatar.png"},
		"darkmode": "switch",
		"plugins":  map[string]any{"comment": map[string]any{"provider": "Giscus"}},
		"hotReload": true,
	}
	th := Assemble(cfg)["theme"].(map[string]any)

	blog := th["blog"].(map[string]any)
	require.Equal(t, "/avatar.png", blog["avatar"])
	require.Equal(t, "yizhe", blog["name"])
	require.Equal(t, "switch", th["darkmode"])
	require.Equal(t, true, th["hotReload"])
	require.Equal(t, map[string]any{"provider": "Giscus"}, th["plugins"].(map[string]any)["comment"])
}

func TestAssemble_MinimalOmitsEmptyBlocks(t *testing.T) {
	cfg, err := preset.Get("minimal")
	require.NoError(t, err)
	root := Assemble(cfg)

	require.Equal(t, "/", root["base"])
	require.Equal(t, "en-US", root["lang"])
	require.Equal(t, "", root["description"])
	require.Equal(t, []string{
		"darkmode", "displayFooter", "fullscreen", "hostname", "navbar", "print", "pure", "sidebar",
	}, Keys(root))
}

func TestBuildNavbar(t *testing.T) {
	items := []config.NavItem{
		{Text: "Home", Icon: "home", Link: "/"},
		{Text: "Blog", Link: "/blog/", ActiveMatch: "^/blog/"},
		{Text: "Home", Link: "/"},
	}
	require.Equal(t, []map[string]any{
		{"text": "Home", "icon": "home", "link": "/"},
		{"text": "Blog", "link": "/blog/", "activeMatch": "^/blog/"},
		{"text": "Home", "link": "/"},
	}, BuildNavbar(items))
	require.Empty(t, BuildNavbar(nil))
}

func TestSidebarValue(t *testing.T) {
	require.Equal(t, "heading", SidebarValue(config.SidebarPolicy{Mode: config.SidebarHeading}))
	require.Equal(t, "heading", SidebarValue(config.SidebarPolicy{}))
	require.Equal(t, false, SidebarValue(config.SidebarPolicy{Mode: config.SidebarDisabled}))
	require.Equal(t, map[string]any{"/notes/": []string{"a", "b"}}, SidebarValue(config.SidebarPolicy{
		Mode:      config.SidebarStructure,
		Structure: map[string][]string{"/notes/": {"a", "b"}},
	}))
}

func TestBuildPlugins(t *testing.T) {
	out := BuildPlugins(map[string]config.PluginConfig{
		"comment":  config.DisabledPlugin(),
		"copyCode": {Enabled: true},
		"broken":   config.EnabledPlugin(map[string]any{"x": 1}, config.StylizeRuleSpec{Matcher: "a"}),
	})
	require.Equal(t, false, out["comment"])
	require.Equal(t, map[string]any{}, out["copyCode"])
	require.Equal(t, map[string]any{"x": 1}, out["broken"])
}

func TestMergeTheme(t *testing.T) {
	dst := map[string]any{"a": map[string]any{"x": 1, "y": 2}, "list": []any{1, 2}}
	src := map[string]any{"a": map[string]any{"y": 3}, "list": []any{9}, "new": map[string]any{"z": true}}
	mergeTheme(dst, src)

	require.Equal(t, map[string]any{
		"a":    map[string]any{"x": 1, "y": 3},
		"list": []any{9},
		"new":  map[string]any{"z": true},
	}, dst)

	dst["new"].(map[string]any)["z"] = false
	require.Equal(t, true, src["new"].(map[string]any)["z"])

	dst["list"].([]any)[0] = 0
	require.Equal(t, []any{9}, src["list"])
}

func TestCloneValue(t *testing.T) {
	src := map[string]any{
		"maps":    []map[string]any{{"a": 1}},
		"strings": []string{"x"},
		"attrs":   map[string]string{"k": "v"},
		"scalar":  3,
	}
	out := cloneValue(src).(map[string]any)
	require.Equal(t, src, out)

	out["maps"].([]map[string]any)[0]["a"] = 2
	out["strings"].([]string)[0] = "y"
	out["attrs"].(map[string]string)["k"] = "w"
	require.Equal(t, 1, src["maps"].([]map[string]any)[0]["a"])
	require.Equal(t, []string{"x"}, src["strings"])
	require.Equal(t, map[string]string{"k": "v"}, src["attrs"])
}
