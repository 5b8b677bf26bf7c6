// Package landing holds the site root page. A package resolving to exactly
// "landing" is addressed at "/".
package landing

import (
	"context"

	"github.com/dmitrymomot/webblocks/pkg/templates"
)

// LandingPage renders the site root from its HTML template.
type LandingPage struct {
	Templates *templates.Loader
}

func (p *LandingPage) Render(ctx context.Context) (string, error) {
	content, err := p.Templates.Content("pages/landing", "landing.html")
	if err != nil {
		return "", err
	}
	return templates.Substitute(content, map[string]string{
		"title": "Welcome",
	}), nil
}
