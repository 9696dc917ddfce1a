// Package stylize implements inline-markup rewrite rules.
//
// A Rule pairs a Matcher, tested against the text content of an inline element,
// with a pure Replacer that either returns a replacement tag or reports that the
// element must be left untouched. Rules built from a ReplaceSpec keep their
// declarative form so they can be serialized into the generator config; rules
// built with Func only run inside this process (see Extension).
package stylize

import (
	"fmt"
	"maps"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark/util"
)

// Tag describes an inline element: its tag name, attributes and text content.
type Tag struct {
	Name    string
	Attrs   map[string]string
	Content string
}

// HTML renders the tag as markup with attributes sorted by name.
func (t Tag) HTML() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(t.Name)
	keys := make([]string, 0, len(t.Attrs))
	for k := range t.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.Write(util.EscapeHTML([]byte(t.Attrs[k])))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.Write(util.EscapeHTML([]byte(t.Content)))
	b.WriteString("</")
	b.WriteString(t.Name)
	b.WriteByte('>')
	return b.String()
}

// Replacer maps a matched tag to its replacement. Returning false means "do not rewrite".
type Replacer func(Tag) (Tag, bool)

// Matcher selects inline elements by their text content.
type Matcher struct {
	literal string
	re      *regexp.Regexp
}

// Literal matches content equal to s.
func Literal(s string) Matcher {
	return Matcher{literal: s}
}

// Pattern matches content against a regular expression.
func Pattern(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Matcher{}, fmt.Errorf("invalid stylize pattern %q: %w", expr, err)
	}
	return Matcher{re: re}, nil
}

// MustPattern is Pattern for expressions known to be valid.
func MustPattern(expr string) Matcher {
	m, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether content is selected.
func (m Matcher) Match(content string) bool {
	if m.re != nil {
		return m.re.MatchString(content)
	}
	return m.literal != "" && content == m.literal
}

// IsPattern reports whether the matcher is a regular expression.
func (m Matcher) IsPattern() bool { return m.re != nil }

// String returns the literal text or the pattern source.
func (m Matcher) String() string {
	if m.re != nil {
		return m.re.String()
	}
	return m.literal
}

// ReplaceSpec is the declarative form of a replacer.
type ReplaceSpec struct {
	// When restricts the rule to one tag name ("em", "strong", "code"). Empty acts on any tag.
	When  string
	Tag   string
	Attrs map[string]string
	// Content replaces the text; empty keeps the matched content.
	Content string
}

// Rule is one matcher/replacer pair.
type Rule struct {
	matcher  Matcher
	replacer Replacer
	spec     *ReplaceSpec
}

// TagRule builds a rule whose replacer is derived from spec.
func TagRule(m Matcher, spec ReplaceSpec) Rule {
	spec.Attrs = maps.Clone(spec.Attrs)
	frozen := spec
	return Rule{
		matcher: m,
		spec:    &frozen,
		replacer: func(t Tag) (Tag, bool) {
			if frozen.When != "" && t.Name != frozen.When {
				return Tag{}, false
			}
			content := frozen.Content
			if content == "" {
				content = t.Content
			}
			return Tag{Name: frozen.Tag, Attrs: maps.Clone(frozen.Attrs), Content: content}, true
		},
	}
}

// Func builds a rule from an arbitrary replacer. Such rules cannot be serialized.
func Func(m Matcher, r Replacer) Rule {
	return Rule{matcher: m, replacer: r}
}

// Matcher returns the rule's matcher.
func (r Rule) Matcher() Matcher { return r.matcher }

// Spec returns the declarative replacer, if the rule has one.
func (r Rule) Spec() (ReplaceSpec, bool) {
	if r.spec == nil {
		return ReplaceSpec{}, false
	}
	return *r.spec, true
}

// Apply evaluates the rule against one inline element.
func (r Rule) Apply(t Tag) (Tag, bool) {
	if r.replacer == nil || !r.matcher.Match(t.Content) {
		return Tag{}, false
	}
	return r.replacer(t)
}

// Apply runs rules in order and returns the first replacement.
func Apply(rules []Rule, t Tag) (Tag, bool) {
	for _, r := range rules {
		if out, ok := r.Apply(t); ok {
			return out, true
		}
	}
	return Tag{}, false
}
