package theme

import "git.home.luguber.info/inful/blogsite/internal/config"

// BuildNavbar converts nav items into navbar entries, preserving order.
// Icon and activeMatch are only present when set.
func BuildNavbar(items []config.NavItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		entry := map[string]any{
			"text": item.Text,
			"link": item.Link,
		}
		if item.Icon != "" {
			entry["icon"] = item.Icon
		}
		if item.ActiveMatch != "" {
			entry["activeMatch"] = item.ActiveMatch
		}
		out = append(out, entry)
	}
	return out
}
