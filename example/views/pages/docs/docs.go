// Package docs serves a markdown document rendered to HTML at /docs.
package docs

import (
	"bytes"
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dmitrymomot/webblocks/pkg/templates"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// DocsPage loads guide.md from the views tree and converts it to HTML.
type DocsPage struct {
	Templates *templates.Loader
}

func (p *DocsPage) Render(ctx context.Context) (string, error) {
	src, err := p.Templates.Content("pages/docs", "guide.md")
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := markdown.Convert([]byte(src), &body); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	sb.WriteString(body.String())
	sb.WriteString("</body>\n</html>")
	return sb.String(), nil
}
