package preset

import "git.home.luguber.info/inful/blogsite/internal/config"

// Navbar variant names of the yizhe preset. Legacy is the earlier menu that
// linked the posts list and the theme documentation instead of the blog.
const (
	NavbarCurrent = "current"
	NavbarLegacy  = "legacy"
)

// RecommendedBadge rewrites *Recommended* into a tip badge.
var RecommendedBadge = config.StylizeRuleSpec{
	Matcher: "Recommended",
	When:    "em",
	Replace: config.StylizeReplacement{
		Tag:     "Badge",
		Attrs:   map[string]string{"type": "tip"},
		Content: "Recommended",
	},
}

// Yizhe is the personal blog served from GitHub Pages under /yizhe_blog/.
func Yizhe() *config.Config {
	avatar := ""
	return &config.Config{
		Base:        "/yizhe_blog/",
		Lang:        "zh-CN",
		Title:       "yizhe的博客",
		Description: "yizhe",
		Theme: config.ThemeConfig{
			Hostname:   "https://mister-hope.github.io",
			Author:     config.Author{Name: "Mr.Hope", URL: "https://mister-hope.com"},
			IconAssets: "//at.alicdn.com/t/c/font_4447938_8xke70w7x7l.css",
			Logo:       "https://s11.ax1x.com/2024/02/28/pFwmDB9.png",
			Repo:       "https://github.com/EricKiku/yizhe_blog",
			RepoLabel:  "GitHub",
			DocsDir:    "src",

			Print:      false,
			Fullscreen: false,
			Pure:       true,
			Darkmode:   config.DarkModeToggle,

			Navbar: config.NavbarConfig{
				Active: NavbarCurrent,
				Variants: map[string][]config.NavItem{
					NavbarCurrent: {
						{Text: "主页", Link: "/"},
						{Text: "博客", Icon: "boke", Link: "/blog/", ActiveMatch: "^/blog"},
					},
					NavbarLegacy: {
						{Text: "主页", Link: "/"},
						{Text: "博文", Icon: "boke", Link: "/posts/", ActiveMatch: "^/posts"},
						{Text: "V2 文档", Icon: "book", Link: "https://theme-hope.vuejs.press/zh/"},
					},
				},
			},
			Sidebar: config.SidebarPolicy{Mode: config.SidebarHeading},

			Footer:        "默认页脚",
			DisplayFooter: false,

			Blog: config.BlogProfile{
				SidebarDisplay: "mobile",
				Intro:          "/intro.html",
				Avatar:         &avatar,
				Name:           "yizhe",
				Medias: map[string]string{
					"Gitee":  "https://gitee.com/EricKiku",
					"GitHub": "https://github.com/EricKiku",
					"Steam":  "https://steamcommunity.com/profiles/76561198881857052/",
				},
			},
			Encrypt: config.EncryptConfig{
				Config: map[string][]string{
					"/demo/encrypt.html": {"1234"},
				},
			},
			MetaLocales: config.MetaLocales{EditLink: "在 GitHub 上编辑此页"},

			Plugins: map[string]config.PluginConfig{
				"blog": config.EnabledPlugin(map[string]any{
					"article":      "/article/",
					"categoryItem": false,
					"tagItem":      false,
					"star":         false,
					"timeline":     false,
				}),
				"components": config.EnabledPlugin(map[string]any{
					"components": []any{"Badge", "VPCard"},
				}),
				"mdEnhance": config.EnabledPlugin(map[string]any{
					"align":       true,
					"attrs":       true,
					"codetabs":    true,
					"component":   true,
					"demo":        true,
					"figure":      true,
					"imgLazyload": true,
					"imgSize":     true,
					"include":     true,
					"mark":        true,
					"sub":         true,
					"sup":         true,
					"tabs":        true,
					"vPre":        true,
				}, RecommendedBadge),
			},

			Behavior: config.ThemeBehavior{Custom: true},
		},
	}
}
