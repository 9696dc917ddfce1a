package config

import (
	"git.home.luguber.info/inful/blogsite/internal/foundation"
	"git.home.luguber.info/inful/blogsite/internal/foundation/errors"
)

// DarkMode selects how the theme exposes color schemes.
type DarkMode string

const (
	DarkModeAutoSwitch DarkMode = "auto-switch"
	DarkModeSwitch     DarkMode = "switch"
	DarkModeToggle     DarkMode = "toggle"
	DarkModeAuto       DarkMode = "auto"
	DarkModeEnable     DarkMode = "enable"
	DarkModeDisable    DarkMode = "disable"
)

var darkModeNormalizer = foundation.NewNormalizer(map[string]DarkMode{
	"auto-switch": DarkModeAutoSwitch,
	"switch":      DarkModeSwitch,
	"toggle":      DarkModeToggle,
	"auto":        DarkModeAuto,
	"enable":      DarkModeEnable,
	"disable":     DarkModeDisable,
}, DarkModeAutoSwitch)

// ParseDarkMode parses a dark mode tag (case-insensitive).
func ParseDarkMode(s string) foundation.Result[DarkMode, error] {
	mode, err := darkModeNormalizer.NormalizeWithError(s)
	if err != nil {
		return foundation.Err[DarkMode, error](
			errors.WrapError(err, errors.CategoryValidation, "invalid darkmode").
				WithContext("input", s).
				Build(),
		)
	}
	return foundation.Ok[DarkMode, error](mode)
}

// SidebarMode selects how per-page sidebars are produced.
type SidebarMode string

const (
	// SidebarHeading derives each page's sidebar from its own headings.
	SidebarHeading SidebarMode = "heading"
	// SidebarStructure uses the explicit path -> entries mapping.
	SidebarStructure SidebarMode = "structure"
	SidebarDisabled  SidebarMode = "disabled"
)

var sidebarModeNormalizer = foundation.NewNormalizer(map[string]SidebarMode{
	"heading":   SidebarHeading,
	"structure": SidebarStructure,
	"disabled":  SidebarDisabled,
	"false":     SidebarDisabled,
}, SidebarHeading)

// ParseSidebarMode parses a sidebar mode tag (case-insensitive).
func ParseSidebarMode(s string) foundation.Result[SidebarMode, error] {
	mode, err := sidebarModeNormalizer.NormalizeWithError(s)
	if err != nil {
		return foundation.Err[SidebarMode, error](
			errors.WrapError(err, errors.CategoryValidation, "invalid sidebar mode").
				WithContext("input", s).
				Build(),
		)
	}
	return foundation.Ok[SidebarMode, error](mode)
}

// OutputFormat is one generator config flavor.
type OutputFormat string

const (
	FormatTS   OutputFormat = "ts"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

var outputFormatNormalizer = foundation.NewNormalizer(map[string]OutputFormat{
	"ts":         FormatTS,
	"typescript": FormatTS,
	"json":       FormatJSON,
	"yaml":       FormatYAML,
	"yml":        FormatYAML,
}, FormatTS)

// ParseOutputFormat parses an output format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f, err := outputFormatNormalizer.NormalizeWithError(s)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryValidation, "invalid output format").
			WithContext("input", s).
			Build()
	}
	return f, nil
}
