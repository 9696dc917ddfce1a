package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// SidebarPolicy describes how per-page sidebars are derived.
type SidebarPolicy struct {
	Mode SidebarMode `yaml:"mode,omitempty"`
	// Structure maps a route prefix to its ordered sidebar entries (structure mode only).
	Structure map[string][]string `yaml:"structure,omitempty"`
}

// UnmarshalYAML accepts a bare mode tag ("heading", false) or the full mapping.
func (s *SidebarPolicy) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		mode, err := ParseSidebarMode(value.Value).ToTuple()
		if err != nil {
			return err
		}
		*s = SidebarPolicy{Mode: mode}
		return nil
	}

	type plain SidebarPolicy
	var p plain
	if err := value.Decode(&p); err != nil {
		return fmt.Errorf("sidebar: %w", err)
	}
	if p.Mode != "" {
		mode, err := ParseSidebarMode(string(p.Mode)).ToTuple()
		if err != nil {
			return err
		}
		p.Mode = mode
	}
	*s = SidebarPolicy(p)
	return nil
}

// Paths returns the structure keys in sorted order.
func (s SidebarPolicy) Paths() []string {
	paths := make([]string, 0, len(s.Structure))
	for p := range s.Structure {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
