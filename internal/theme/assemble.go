package theme

import (
	"maps"
	"slices"

	"git.home.luguber.info/inful/blogsite/internal/config"
)

// BehaviorKey is the root key holding the theme behavior options, which the
// generator receives as the theme's second argument.
const BehaviorKey = "behavior"

// Assemble builds the generator root object {base, lang, title, description, theme}.
// Optional root keys are shouldPrefetch and the theme behavior options.
func Assemble(cfg *config.Config) map[string]any {
	th := cfg.Theme
	theme := map[string]any{}

	// Phase 1: site identity
	setString(theme, "hostname", th.Hostname)
	if author := authorValue(th.Author); author != nil {
		theme["author"] = author
	}
	setString(theme, "iconAssets", th.IconAssets)
	setString(theme, "logo", th.Logo)
	setString(theme, "repo", th.Repo)
	setString(theme, "repoLabel", th.RepoLabel)
	setString(theme, "docsDir", th.DocsDir)

	// Phase 2: feature toggles
	theme["print"] = th.Print
	theme["fullscreen"] = th.Fullscreen
	theme["pure"] = th.Pure
	theme["darkmode"] = string(config.ParseDarkMode(string(th.Darkmode)).UnwrapOr(th.Darkmode))
	if th.HotReload {
		theme["hotReload"] = true
	}

	// Phase 3: navigation
	theme["navbar"] = BuildNavbar(th.Navbar.Items())
	theme["sidebar"] = SidebarValue(th.Sidebar)

	// Phase 4: footer
	setString(theme, "footer", th.Footer)
	theme["displayFooter"] = th.DisplayFooter

	// Phase 5: blog profile, page encryption, locale overrides
	if blog := blogValue(th.Blog); blog != nil {
		theme["blog"] = blog
	}
	if enc := encryptValue(th.Encrypt); enc != nil {
		theme["encrypt"] = enc
	}
	if th.MetaLocales.EditLink != "" {
		theme["metaLocales"] = map[string]any{"editLink": th.MetaLocales.EditLink}
	}

	// Phase 6: plugins
	if len(th.Plugins) > 0 {
		theme["plugins"] = BuildPlugins(th.Plugins)
	}

	// Phase 7: user overrides (deep merge)
	if th.Extra != nil {
		mergeTheme(theme, th.Extra)
	}

	root := map[string]any{
		"base":        cfg.Base,
		"lang":        cfg.Lang,
		"title":       cfg.Title,
		"description": cfg.Description,
		"theme":       theme,
	}
	if cfg.ShouldPrefetch != nil {
		root["shouldPrefetch"] = *cfg.ShouldPrefetch
	}
	if behavior := behaviorValue(th.Behavior); behavior != nil {
		root[BehaviorKey] = behavior
	}
	return root
}

func behaviorValue(b config.ThemeBehavior) map[string]any {
	if b.IsZero() {
		return nil
	}
	out := map[string]any{}
	for key, on := range map[string]bool{"custom": b.Custom, "debug": b.Debug, "compact": b.Compact} {
		if on {
			out[key] = true
		}
	}
	return out
}

func setString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func authorValue(a config.Author) map[string]any {
	if a == (config.Author{}) {
		return nil
	}
	out := map[string]any{"name": a.Name}
	setString(out, "url", a.URL)
	return out
}

func blogValue(b config.BlogProfile) map[string]any {
	out := map[string]any{}
	setString(out, "name", b.Name)
	if b.Avatar != nil {
		out["avatar"] = *b.Avatar
	}
	setString(out, "intro", b.Intro)
	setString(out, "sidebarDisplay", b.SidebarDisplay)
	if len(b.Medias) > 0 {
		medias := make(map[string]any, len(b.Medias))
		for platform, link := range b.Medias {
			medias[platform] = link
		}
		out["medias"] = medias
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func encryptValue(e config.EncryptConfig) map[string]any {
	if e.IsZero() {
		return nil
	}
	out := map[string]any{}
	if len(e.Admin) > 0 {
		out["admin"] = slices.Clone(e.Admin)
	}
	if len(e.Config) > 0 {
		gated := make(map[string]any, len(e.Config))
		for _, rule := range e.Rules() {
			gated[rule.Path] = slices.Clone(rule.Passphrases)
		}
		out["config"] = gated
	}
	return out
}

// Navbar returns the assembled navbar of root, or nil when absent.
func Navbar(root map[string]any) []map[string]any {
	th, _ := root["theme"].(map[string]any)
	nav, _ := th["navbar"].([]map[string]any)
	return nav
}

// Keys lists the top-level theme keys of root in sorted order.
func Keys(root map[string]any) []string {
	th, _ := root["theme"].(map[string]any)
	return slices.Sorted(maps.Keys(th))
}
