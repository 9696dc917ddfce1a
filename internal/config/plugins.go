package config

import (
	"fmt"
	"maps"
	"sort"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogsite/internal/stylize"
)

// StylizeOption is the plugin option key that carries stylize rules.
const StylizeOption = "stylize"

// PluginConfig toggles one generator plugin. In YAML a plugin is either a
// boolean or a mapping of options; a mapping implies the plugin is enabled.
type PluginConfig struct {
	Enabled bool
	Options map[string]any
	Stylize []StylizeRuleSpec
}

// EnabledPlugin returns an enabled plugin with options.
func EnabledPlugin(options map[string]any, rules ...StylizeRuleSpec) PluginConfig {
	return PluginConfig{Enabled: true, Options: options, Stylize: rules}
}

// DisabledPlugin returns a plugin switched off.
func DisabledPlugin() PluginConfig {
	return PluginConfig{}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PluginConfig) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return fmt.Errorf("plugin must be a boolean or a mapping: %w", err)
		}
		*p = PluginConfig{Enabled: enabled}
		return nil
	case yaml.MappingNode:
		out := PluginConfig{Enabled: true, Options: map[string]any{}}
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i].Value
			node := value.Content[i+1]
			if key == StylizeOption {
				if err := node.Decode(&out.Stylize); err != nil {
					return fmt.Errorf("plugin option %s: %w", key, err)
				}
				continue
			}
			var v any
			if err := node.Decode(&v); err != nil {
				return fmt.Errorf("plugin option %s: %w", key, err)
			}
			out.Options[key] = v
		}
		*p = out
		return nil
	default:
		return fmt.Errorf("plugin must be a boolean or a mapping (line %d)", value.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (p PluginConfig) MarshalYAML() (any, error) {
	if !p.Enabled {
		return false, nil
	}
	if len(p.Options) == 0 && len(p.Stylize) == 0 {
		return true, nil
	}
	out := maps.Clone(p.Options)
	if out == nil {
		out = map[string]any{}
	}
	if len(p.Stylize) > 0 {
		out[StylizeOption] = p.Stylize
	}
	return out, nil
}

// OptionKeys returns the option names in sorted order.
func (p PluginConfig) OptionKeys() []string {
	keys := make([]string, 0, len(p.Options))
	for k := range p.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CompileStylize turns the declarative rules into runtime rules.
func (p PluginConfig) CompileStylize() ([]stylize.Rule, error) {
	rules := make([]stylize.Rule, 0, len(p.Stylize))
	for i, spec := range p.Stylize {
		rule, err := spec.Compile()
		if err != nil {
			return nil, fmt.Errorf("stylize[%d]: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// StylizeRuleSpec is the declarative form of a stylize rule.
type StylizeRuleSpec struct {
	Matcher string `yaml:"matcher"`
	// Regexp treats Matcher as a regular expression instead of literal text.
	Regexp  bool               `yaml:"regexp,omitempty"`
	When    string             `yaml:"when,omitempty"`
	Replace StylizeReplacement `yaml:"replace"`
}

// StylizeReplacement is the tag emitted for a matched element.
type StylizeReplacement struct {
	Tag     string            `yaml:"tag"`
	Attrs   map[string]string `yaml:"attrs,omitempty"`
	Content string            `yaml:"content,omitempty"`
}

// Compile builds the runtime rule.
func (s StylizeRuleSpec) Compile() (stylize.Rule, error) {
	if s.Matcher == "" {
		return stylize.Rule{}, fmt.Errorf("matcher cannot be empty")
	}
	if s.Replace.Tag == "" {
		return stylize.Rule{}, fmt.Errorf("replace.tag cannot be empty")
	}

	matcher := stylize.Literal(s.Matcher)
	if s.Regexp {
		m, err := stylize.Pattern(s.Matcher)
		if err != nil {
			return stylize.Rule{}, err
		}
		matcher = m
	}

	return stylize.TagRule(matcher, stylize.ReplaceSpec{
		When:    s.When,
		Tag:     s.Replace.Tag,
		Attrs:   s.Replace.Attrs,
		Content: s.Replace.Content,
	}), nil
}
