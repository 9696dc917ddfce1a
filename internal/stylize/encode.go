package stylize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ruleDocument is the serialized form of a declarative rule.
type ruleDocument struct {
	Matcher string          `json:"matcher" yaml:"matcher"`
	Regexp  bool            `json:"regexp,omitempty" yaml:"regexp,omitempty"`
	When    string          `json:"when,omitempty" yaml:"when,omitempty"`
	Replace replaceDocument `json:"replace" yaml:"replace"`
}

type replaceDocument struct {
	Tag     string            `json:"tag" yaml:"tag"`
	Attrs   map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Content string            `json:"content,omitempty" yaml:"content,omitempty"`
}

func (r Rule) document() (ruleDocument, error) {
	if r.spec == nil {
		return ruleDocument{}, fmt.Errorf("stylize rule %q has no declarative replacer", r.matcher.String())
	}
	return ruleDocument{
		Matcher: r.matcher.String(),
		Regexp:  r.matcher.IsPattern(),
		When:    r.spec.When,
		Replace: replaceDocument{Tag: r.spec.Tag, Attrs: r.spec.Attrs, Content: r.spec.Content},
	}, nil
}

// MarshalJSON encodes the declarative form of the rule.
func (r Rule) MarshalJSON() ([]byte, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// MarshalYAML encodes the declarative form of the rule.
func (r Rule) MarshalYAML() (any, error) {
	return r.document()
}

// JS renders the rule as a JavaScript object literal with an arrow-function
// replacer. Lines after the first are prefixed with indent.
func (r Rule) JS(indent string) (string, error) {
	if r.spec == nil {
		return "", fmt.Errorf("stylize rule %q has no declarative replacer", r.matcher.String())
	}
	spec := r.spec
	in1 := indent + "  "
	in2 := in1 + "  "
	in3 := in2 + "  "

	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString(in1 + "matcher: " + jsMatcher(r.matcher) + ",\n")

	params := "{ tag }"
	content := JSString(spec.Content)
	if spec.Content == "" {
		params = "{ tag, content }"
		content = "content"
		if spec.When == "" {
			params = "{ content }"
		}
	}
	b.WriteString(in1 + "replacer: (" + params + ") => {\n")
	body := in2
	if spec.When != "" {
		b.WriteString(in2 + "if (tag === " + JSString(spec.When) + ")\n")
		body = in3
	}
	b.WriteString(body + "return {\n")
	b.WriteString(body + "  tag: " + JSString(spec.Tag) + ",\n")
	if len(spec.Attrs) > 0 {
		b.WriteString(body + "  attrs: " + jsAttrs(spec.Attrs) + ",\n")
	}
	b.WriteString(body + "  content: " + content + ",\n")
	b.WriteString(body + "};\n")
	b.WriteString(in1 + "},\n")
	b.WriteString(indent + "}")
	return b.String(), nil
}

func jsMatcher(m Matcher) string {
	if m.IsPattern() {
		return "/" + regexBody(m.String()) + "/u"
	}
	return JSString(m.String())
}

// regexBody escapes the slashes of expr that would end a regex literal.
// Escape sequences already in expr are copied unchanged.
func regexBody(expr string) string {
	var b strings.Builder
	for i := 0; i < len(expr); i++ {
		switch c := expr[i]; c {
		case '\\':
			b.WriteByte(c)
			if i+1 < len(expr) {
				i++
				b.WriteByte(expr[i])
			}
		case '/':
			b.WriteString(`\/`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func jsAttrs(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, JSString(k)+": "+JSString(attrs[k]))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// JSString quotes s as a JavaScript string literal without HTML escaping.
func JSString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
