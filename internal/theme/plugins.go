package theme

import (
	"log/slog"

	"git.home.luguber.info/inful/blogsite/internal/config"
	"git.home.luguber.info/inful/blogsite/internal/logfields"
)

// BuildPlugins maps each plugin key to false (disabled) or its options record.
// Stylize specs are compiled and stored under config.StylizeOption as
// []stylize.Rule.
func BuildPlugins(plugins map[string]config.PluginConfig) map[string]any {
	out := make(map[string]any, len(plugins))
	for name, plugin := range plugins {
		if !plugin.Enabled {
			out[name] = false
			continue
		}
		options := map[string]any{}
		if plugin.Options != nil {
			options = cloneValue(plugin.Options).(map[string]any)
		}
		if len(plugin.Stylize) > 0 {
			rules, err := plugin.CompileStylize()
			if err != nil {
				slog.Warn("Skipping stylize rules that do not compile", logfields.Plugin(name), logfields.Error(err))
			} else {
				options[config.StylizeOption] = rules
			}
		}
		out[name] = options
	}
	return out
}
