package internal

import "strings"

// voidElements never carry closing tags and must not affect indentation.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// prettyHTML reindents markup one tag or text run per line, two spaces per
// nesting level. It is a cosmetic reformatter for development output, not a
// parser: malformed markup comes back reindented on a best-effort basis and
// is never an error.
func prettyHTML(in string) string {
	var out strings.Builder
	depth := 0

	writeLine := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		for range depth {
			out.WriteString("  ")
		}
		out.WriteString(s)
		out.WriteByte('\n')
	}

	rest := in
	for rest != "" {
		open := strings.IndexByte(rest, '<')
		if open < 0 {
			writeLine(rest)
			break
		}
		if open > 0 {
			writeLine(rest[:open])
			rest = rest[open:]
			continue
		}
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			writeLine(rest)
			break
		}
		tag := rest[:end+1]
		rest = rest[end+1:]

		switch {
		case strings.HasPrefix(tag, "</"):
			if depth > 0 {
				depth--
			}
			writeLine(tag)
		case strings.HasPrefix(tag, "<!") || strings.HasSuffix(tag, "/>") || voidElements[tagName(tag)]:
			writeLine(tag)
		default:
			writeLine(tag)
			depth++
		}
	}
	return strings.TrimSuffix(out.String(), "\n")
}

// tagName extracts the lowercase element name from an opening tag.
func tagName(tag string) string {
	name := strings.TrimPrefix(tag, "<")
	for i, r := range name {
		if r == ' ' || r == '>' || r == '/' || r == '\t' || r == '\n' {
			name = name[:i]
			break
		}
	}
	return strings.ToLower(name)
}
