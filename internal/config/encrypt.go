package config

import "sort"

// EncryptConfig gates pages behind client-side passphrases.
type EncryptConfig struct {
	// Admin passphrases unlock every encrypted page.
	Admin []string `yaml:"admin,omitempty"`
	// Config maps a page path to its accepted passphrases.
	Config map[string][]string `yaml:"config,omitempty"`
}

// EncryptRule is one gated path.
type EncryptRule struct {
	Path        string
	Passphrases []string
}

// Rules returns the gated paths sorted by path.
func (e EncryptConfig) Rules() []EncryptRule {
	rules := make([]EncryptRule, 0, len(e.Config))
	for path, passphrases := range e.Config {
		rules = append(rules, EncryptRule{Path: path, Passphrases: passphrases})
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Path < rules[j].Path })
	return rules
}

// IsZero lets yaml omit an empty encrypt block.
func (e EncryptConfig) IsZero() bool {
	return len(e.Admin) == 0 && len(e.Config) == 0
}
