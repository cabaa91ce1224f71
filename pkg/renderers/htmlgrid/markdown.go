package htmlgrid

import (
	"bytes"
	"context"
	"fmt"
	stdhtml "html"
	"path"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-columns/pkg/layout"
)

var (
	columnPolicyOnce sync.Once
	columnPolicy     *bluemonday.Policy
)

// columnSanitizer allows the markup goldmark emits for GFM content and
// nothing executable.
func columnSanitizer() *bluemonday.Policy {
	columnPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre", "span")
		policy.AllowElements("input")
		policy.AllowAttrs("checked", "disabled").OnElements("input")
		policy.AllowAttrs("type").Matching(bluemonday.SpaceSeparatedTokens).OnElements("input")
		columnPolicy = policy
	})
	return columnPolicy
}

func defaultMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
}

// markdownToHTML converts one column to sanitised HTML, resolving relative
// link and image destinations against the directory of sourcePath.
func markdownToHTML(md goldmark.Markdown, policy *bluemonday.Policy, markdown, sourcePath string) (string, error) {
	source := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(source))
	rebaseLinks(doc, sourcePath)

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, doc); err != nil {
		return "", fmt.Errorf("htmlgrid: render markdown: %w", err)
	}
	return strings.TrimSpace(policy.Sanitize(buf.String())), nil
}

func rebaseLinks(doc ast.Node, sourcePath string) {
	base := path.Dir(strings.TrimSpace(sourcePath))
	if sourcePath == "" || base == "." {
		return
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			node.Destination = rebase(base, node.Destination)
		case *ast.Image:
			node.Destination = rebase(base, node.Destination)
		}
		return ast.WalkContinue, nil
	})
}

func rebase(base string, destination []byte) []byte {
	dest := string(destination)
	if dest == "" || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "#") || strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
		return destination
	}
	return []byte(path.Join(base, dest))
}

// RenderMarkdown renders markdown into el. Conversion failures fall back to the
// escaped source so the column is never silently empty.
func (r *Renderer) RenderMarkdown(ctx context.Context, markdown string, el *layout.Element, sourcePath string, _ layout.Owner) {
	if el == nil {
		return
	}
	if ctx != nil && ctx.Err() != nil {
		return
	}
	out, err := markdownToHTML(r.markdown, r.policy, markdown, sourcePath)
	if err != nil {
		out = "<pre>" + stdhtml.EscapeString(markdown) + "</pre>"
	}
	_, _ = el.WriteString(out)
}

// RenderProse renders document text outside of blocks with the same markdown
// pipeline and policy as the columns.
func (r *Renderer) RenderProse(_ context.Context, markdown, sourcePath string) ([]byte, error) {
	out, err := markdownToHTML(r.markdown, r.policy, markdown, sourcePath)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return []byte(out + "\n"), nil
}
