package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultNavbarVariant names the variant created from a plain navbar list.
const DefaultNavbarVariant = "default"

// NavItem is one top navbar entry.
type NavItem struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon,omitempty"`
	Link string `yaml:"link"`
	// ActiveMatch is a route pattern used only to highlight the entry.
	ActiveMatch string `yaml:"active_match,omitempty"`
}

// NavbarConfig holds mutually exclusive navbar variants. Exactly one is active.
type NavbarConfig struct {
	Active   string               `yaml:"active,omitempty"`
	Variants map[string][]NavItem `yaml:"variants"`
}

// UnmarshalYAML accepts either the variants mapping or a plain list of items.
func (n *NavbarConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var items []NavItem
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("navbar: %w", err)
		}
		*n = NavbarConfig{
			Active:   DefaultNavbarVariant,
			Variants: map[string][]NavItem{DefaultNavbarVariant: items},
		}
		return nil
	}

	type plain NavbarConfig
	var p plain
	if err := value.Decode(&p); err != nil {
		return fmt.Errorf("navbar: %w", err)
	}
	*n = NavbarConfig(p)
	return nil
}

// Items returns the active variant's entries.
func (n NavbarConfig) Items() []NavItem {
	return n.Variants[n.Active]
}

// HasVariant reports whether name is a defined variant.
func (n NavbarConfig) HasVariant(name string) bool {
	_, ok := n.Variants[name]
	return ok
}

// VariantNames lists the defined variants in sorted order.
func (n NavbarConfig) VariantNames() []string {
	names := make([]string, 0, len(n.Variants))
	for name := range n.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithActive returns a copy of the navbar config with another variant selected.
func (n NavbarConfig) WithActive(name string) (NavbarConfig, error) {
	if !n.HasVariant(name) {
		return n, fmt.Errorf("unknown navbar variant %q (defined: %v)", name, n.VariantNames())
	}
	n.Active = name
	return n, nil
}
