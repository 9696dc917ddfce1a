package theme

import (
	"slices"

	"git.home.luguber.info/inful/blogsite/internal/config"
)

// SidebarValue returns the theme's sidebar option for policy:
// "heading" for heading mode, false when disabled, and a route -> entries
// mapping for structure mode.
func SidebarValue(policy config.SidebarPolicy) any {
	mode := config.ParseSidebarMode(string(policy.Mode)).UnwrapOr(config.SidebarHeading)
	switch mode {
	case config.SidebarDisabled:
		return false
	case config.SidebarStructure:
		out := make(map[string]any, len(policy.Structure))
		for _, path := range policy.Paths() {
			out[path] = slices.Clone(policy.Structure[path])
		}
		return out
	default:
		return string(config.SidebarHeading)
	}
}
