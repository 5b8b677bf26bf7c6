// Package activity holds the dashboard activity feed block, served at
// /dashboard/activity. It observes the stats block and refreshes when the
// counter changes.
package activity

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/dmitrymomot/webblocks"
	"github.com/dmitrymomot/webblocks/pkg/store"
)

// ActivityBlock renders the latest recorded activity line.
type ActivityBlock struct {
	Store store.Store
}

func (b *ActivityBlock) BlockConfig() webblocks.BlockConfig {
	return webblocks.BlockConfig{} // default timeout
}

func (b *ActivityBlock) Render(ctx context.Context) (string, error) {
	latest, err := b.Store.Get(ctx, "dashboard:activity")
	if errors.Is(err, store.ErrNotFound) {
		latest = "no activity yet"
	} else if err != nil {
		return "", err
	}
	return fmt.Sprintf("<p>Latest: %s</p>", html.EscapeString(latest)), nil
}
