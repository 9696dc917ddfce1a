package config

import (
	"fmt"
	"maps"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/blogsite/internal/foundation"
)

var sidebarDisplayValues = []string{"mobile", "always", "none"}

// Validate checks the whole configuration and reports every problem at once.
func Validate(cfg *Config) error {
	chain := foundation.NewValidatorChain(
		validateSite,
		validateIdentity,
		validateNavbar,
		validateSidebar,
		validateBlog,
		validateEncrypt,
		validatePlugins,
		validateOutput,
	)
	return chain.Validate(cfg).ToError()
}

func invalid(field, code, format string, args ...any) foundation.ValidationResult {
	return foundation.Invalid(foundation.NewValidationError(field, code, fmt.Sprintf(format, args...)))
}

func validateSite(cfg *Config) foundation.ValidationResult {
	result := foundation.StringNotEmpty("title")(cfg.Title)

	if !strings.HasPrefix(cfg.Base, "/") || !strings.HasSuffix(cfg.Base, "/") {
		result = result.Combine(invalid("base", "valid_base", "base must start and end with '/', got %q", cfg.Base))
	}
	if _, err := language.Parse(cfg.Lang); err != nil {
		result = result.Combine(invalid("lang", "valid_locale", "lang must be a BCP 47 tag: %v", err))
	}
	return result
}

func validateIdentity(cfg *Config) foundation.ValidationResult {
	th := cfg.Theme
	result := foundation.Valid()

	if th.Hostname == "" {
		result = result.Combine(invalid("theme.hostname", "not_empty", "hostname cannot be empty"))
	} else if !isAbsoluteURL(th.Hostname) {
		result = result.Combine(invalid("theme.hostname", "valid_url", "hostname must be an absolute http(s) URL, got %q", th.Hostname))
	}
	if th.Author.URL != "" && !isAbsoluteURL(th.Author.URL) {
		result = result.Combine(invalid("theme.author.url", "valid_url", "author url must be an absolute http(s) URL"))
	}
	if _, err := ParseDarkMode(string(th.Darkmode)).ToTuple(); err != nil {
		result = result.Combine(invalid("theme.darkmode", "one_of", "darkmode must be one of: %s", strings.Join(darkModeNormalizer.Keys(), ", ")))
	}
	return result
}

func validateNavbar(cfg *Config) foundation.ValidationResult {
	nav := cfg.Theme.Navbar
	result := foundation.Valid()

	if len(nav.Variants) == 0 {
		return result
	}
	if !nav.HasVariant(nav.Active) {
		result = result.Combine(invalid("theme.navbar.active", "known_variant",
			"active navbar variant %q is not defined (defined: %v)", nav.Active, nav.VariantNames()))
	}

	for _, name := range nav.VariantNames() {
		for i, item := range nav.Variants[name] {
			field := fmt.Sprintf("theme.navbar.variants.%s[%d]", name, i)
			if strings.TrimSpace(item.Text) == "" {
				result = result.Combine(invalid(field+".text", "not_empty", "text cannot be empty"))
			}
			if strings.TrimSpace(item.Link) == "" {
				result = result.Combine(invalid(field+".link", "not_empty", "link cannot be empty"))
			}
			if item.ActiveMatch != "" {
				if _, err := regexp.Compile(item.ActiveMatch); err != nil {
					result = result.Combine(invalid(field+".active_match", "valid_pattern", "active_match does not compile: %v", err))
				}
			}
		}
	}
	return result
}

func validateSidebar(cfg *Config) foundation.ValidationResult {
	sb := cfg.Theme.Sidebar
	if _, err := ParseSidebarMode(string(sb.Mode)).ToTuple(); err != nil {
		return invalid("theme.sidebar.mode", "one_of", "sidebar mode must be one of: %s", strings.Join(sidebarModeNormalizer.Keys(), ", "))
	}
	if sb.Mode != SidebarStructure {
		return foundation.Valid()
	}

	if len(sb.Structure) == 0 {
		return invalid("theme.sidebar.structure", "not_empty", "structure mode requires at least one path")
	}
	result := foundation.Valid()
	for _, path := range sb.Paths() {
		field := fmt.Sprintf("theme.sidebar.structure[%s]", path)
		if !strings.HasPrefix(path, "/") {
			result = result.Combine(invalid(field, "valid_route", "sidebar path must start with '/'"))
		}
		if len(sb.Structure[path]) == 0 {
			result = result.Combine(invalid(field, "not_empty", "sidebar entries cannot be empty"))
		}
		for i, entry := range sb.Structure[path] {
			if strings.TrimSpace(entry) == "" {
				result = result.Combine(invalid(fmt.Sprintf("%s[%d]", field, i), "not_empty", "sidebar entry cannot be empty"))
			}
		}
	}
	return result
}

func validateBlog(cfg *Config) foundation.ValidationResult {
	blog := cfg.Theme.Blog
	result := foundation.Valid()

	if blog.SidebarDisplay != "" {
		result = result.Combine(foundation.OneOf("theme.blog.sidebar_display", sidebarDisplayValues)(blog.SidebarDisplay))
	}
	for _, platform := range slices.Sorted(maps.Keys(blog.Medias)) {
		link := blog.Medias[platform]
		field := "theme.blog.medias." + platform
		if strings.TrimSpace(platform) == "" {
			result = result.Combine(invalid("theme.blog.medias", "not_empty", "platform name cannot be empty"))
		}
		if _, err := url.Parse(link); err != nil || link == "" {
			result = result.Combine(invalid(field, "valid_url", "media link must be a valid URL"))
		}
	}
	return result
}

func validateEncrypt(cfg *Config) foundation.ValidationResult {
	enc := cfg.Theme.Encrypt
	result := foundation.Valid()

	for i, pass := range enc.Admin {
		if strings.TrimSpace(pass) == "" {
			result = result.Combine(invalid(fmt.Sprintf("theme.encrypt.admin[%d]", i), "not_empty", "admin passphrase cannot be empty"))
		}
	}
	for _, rule := range enc.Rules() {
		field := fmt.Sprintf("theme.encrypt.config[%s]", rule.Path)
		if !strings.HasPrefix(rule.Path, "/") {
			result = result.Combine(invalid(field, "valid_route", "encrypted path must be a site route starting with '/'"))
		}
		if len(rule.Passphrases) == 0 {
			result = result.Combine(invalid(field, "not_empty", "at least one passphrase is required"))
		}
		for i, pass := range rule.Passphrases {
			if strings.TrimSpace(pass) == "" {
				result = result.Combine(invalid(fmt.Sprintf("%s[%d]", field, i), "not_empty", "passphrase cannot be empty"))
			}
		}
	}
	return result
}

func validatePlugins(cfg *Config) foundation.ValidationResult {
	result := foundation.Valid()
	for _, name := range slices.Sorted(maps.Keys(cfg.Theme.Plugins)) {
		plugin := cfg.Theme.Plugins[name]
		if strings.TrimSpace(name) == "" {
			result = result.Combine(invalid("theme.plugins", "not_empty", "plugin key cannot be empty"))
			continue
		}
		for i, spec := range plugin.Stylize {
			if _, err := spec.Compile(); err != nil {
				result = result.Combine(invalid(fmt.Sprintf("theme.plugins.%s.stylize[%d]", name, i), "valid_rule", "%v", err))
			}
		}
	}
	return result
}

func validateOutput(cfg *Config) foundation.ValidationResult {
	result := foundation.StringNotEmpty("output.directory")(cfg.Output.Directory)
	for i, f := range cfg.Output.Formats {
		if _, err := ParseOutputFormat(string(f)); err != nil {
			result = result.Combine(invalid(fmt.Sprintf("output.formats[%d]", i), "one_of", "format must be one of: %s", strings.Join(outputFormatNormalizer.Keys(), ", ")))
		}
	}
	return result
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
