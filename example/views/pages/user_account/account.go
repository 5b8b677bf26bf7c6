// Package user_account maps to /user-account: underscores in package names
// become hyphens on the wire.
package user_account

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/dmitrymomot/webblocks/pkg/store"
)

// AccountPage shows a user's display name looked up from the store.
type AccountPage struct {
	User  string
	Store store.Store
}

func (p *AccountPage) Render(ctx context.Context) (string, error) {
	name, err := p.Store.Get(ctx, "user:"+p.User+":name")
	if errors.Is(err, store.ErrNotFound) {
		name = p.User
	} else if err != nil {
		return "", err
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
<h1>Account</h1>
<p>Signed in as %s</p>
</body>
</html>`, html.EscapeString(name)), nil
}
