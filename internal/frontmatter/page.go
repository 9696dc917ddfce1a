// Package frontmatter splits blog posts into their header fields and markdown body.
package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrUnterminated is returned when a post opens a header block but never closes it.
var ErrUnterminated = errors.New("frontmatter opened with '---' but never closed")

// Page is one markdown post.
type Page struct {
	Fields         map[string]any
	Body           []byte
	HasFrontmatter bool
}

// Parse separates the leading header block (YAML, TOML or JSON) from the
// markdown body. Content without a header is returned whole as the body.
func Parse(content []byte) (*Page, error) {
	var fields map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(content), &fields)
	if err != nil {
		return nil, fmt.Errorf("frontmatter: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}

	consumed := len(body) < len(content)
	if !consumed && opensYAMLHeader(content) {
		return nil, ErrUnterminated
	}
	return &Page{Fields: fields, Body: body, HasFrontmatter: consumed}, nil
}

// Title returns the title field, or "" when absent or not a string.
func (p *Page) Title() string {
	s, _ := p.Fields["title"].(string)
	return strings.TrimSpace(s)
}

// Strings returns a list-valued field such as tag or category. A scalar
// string is treated as a one-element list.
func (p *Page) Strings(key string) []string {
	switch v := p.Fields[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func opensYAMLHeader(content []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return line == "---"
	}
	return false
}
