// Package page_with_arguments demonstrates parameter binding: the page is
// reachable at /page-with-arguments with query, form, or positional path
// arguments.
package page_with_arguments

import (
	"context"
	"fmt"
	"html"
)

// MyPage echoes its bound constructor arguments.
type MyPage struct {
	MyInt     int
	MyString  string
	MyBoolean bool
}

func (p *MyPage) Render(ctx context.Context) (string, error) {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
<h1>Arguments</h1>
<p>my-int: %d</p>
<p>my-string: %s</p>
<p>my-boolean: %t</p>
</body>
</html>`, p.MyInt, html.EscapeString(p.MyString), p.MyBoolean), nil
}
