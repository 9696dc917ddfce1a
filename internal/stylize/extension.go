package stylize

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindStylized is the node kind of a rewritten inline element.
var KindStylized = ast.NewNodeKind("Stylized")

// Stylized replaces an inline element that a rule rewrote.
type Stylized struct {
	ast.BaseInline
	Tag Tag
}

// Kind implements ast.Node.
func (n *Stylized) Kind() ast.NodeKind { return KindStylized }

// Dump implements ast.Node.
func (n *Stylized) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Tag":     n.Tag.Name,
		"Content": n.Tag.Content,
	}, nil)
}

// Extension applies stylize rules to emphasis and code spans.
type Extension struct {
	rules []Rule
}

// NewExtension returns a goldmark extender for rules.
func NewExtension(rules ...Rule) *Extension {
	return &Extension{rules: rules}
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&transformer{rules: e.rules}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&nodeRenderer{}, 500),
	))
}

// Render converts markdown to HTML with rules applied.
func Render(source []byte, rules ...Rule) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(NewExtension(rules...)))
	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type transformer struct {
	rules []Rule
}

func (t *transformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	if len(t.rules) == 0 {
		return
	}
	source := reader.Source()

	var candidates []ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Emphasis, *ast.CodeSpan:
			candidates = append(candidates, n)
		}
		return ast.WalkContinue, nil
	})

	// Walk is pre-order: an outer element is replaced before its children are
	// considered, and rewriting a detached child is a no-op for the document.
	for _, n := range candidates {
		tag, ok := describe(n, source)
		if !ok {
			continue
		}
		replacement, ok := Apply(t.rules, tag)
		if !ok {
			continue
		}
		parent := n.Parent()
		if parent == nil {
			continue
		}
		parent.ReplaceChild(parent, n, &Stylized{Tag: replacement})
	}
}

func describe(n ast.Node, source []byte) (Tag, bool) {
	switch v := n.(type) {
	case *ast.Emphasis:
		name := "em"
		if v.Level >= 2 {
			name = "strong"
		}
		return Tag{Name: name, Content: inlineText(n, source)}, true
	case *ast.CodeSpan:
		return Tag{Name: "code", Content: inlineText(n, source)}, true
	default:
		return Tag{}, false
	}
}

func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
		case *ast.String:
			b.Write(v.Value)
		default:
			b.WriteString(inlineText(c, source))
		}
	}
	return b.String()
}

type nodeRenderer struct{}

func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindStylized, r.renderStylized)
}

func (r *nodeRenderer) renderStylized(w util.BufWriter, _ []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	node, ok := n.(*Stylized)
	if !ok {
		return ast.WalkContinue, nil
	}
	if _, err := w.WriteString(node.Tag.HTML()); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}
