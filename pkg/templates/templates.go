package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// MissingTemplateError is returned when a template file does not exist.
// Path is the absolute path that was attempted, so a handler author can see
// exactly where the loader looked.
type MissingTemplateError struct {
	Path string
	Err  error
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("template not found: %s", e.Path)
}

func (e *MissingTemplateError) Unwrap() error {
	return e.Err
}

// Loader reads template files relative to a root directory. Content is
// cached after the first read; concurrent first reads of the same file are
// deduplicated with singleflight so the disk is hit once.
type Loader struct {
	root  string
	mu    sync.RWMutex
	cache map[string]string
	group singleflight.Group
}

// NewLoader creates a loader rooted at dir. The directory is not required
// to exist until the first Content call.
func NewLoader(dir string) *Loader {
	return &Loader{
		root:  dir,
		cache: make(map[string]string),
	}
}

// Content returns the contents of the template file name resolved relative
// to the given namespace directory under the loader root. A missing file
// yields a MissingTemplateError carrying the attempted absolute path.
func (l *Loader) Content(namespace, name string) (string, error) {
	key := filepath.Join(namespace, name)

	l.mu.RLock()
	if content, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return content, nil
	}
	l.mu.RUnlock()

	v, err, _ := l.group.Do(key, func() (any, error) {
		path := filepath.Join(l.root, key)
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, &MissingTemplateError{Path: abs, Err: readErr}
		}

		content := string(data)
		l.mu.Lock()
		l.cache[key] = content
		l.mu.Unlock()
		return content, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate drops a cached entry so the next Content call re-reads the file.
func (l *Loader) Invalidate(namespace, name string) {
	key := filepath.Join(namespace, name)
	l.mu.Lock()
	delete(l.cache, key)
	l.mu.Unlock()
}

// Substitute replaces ${key} markers in content with the corresponding
// values. Markers without a matching key are left untouched.
func Substitute(content string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(content, "${") {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))

	for {
		start := strings.Index(content, "${")
		if start < 0 {
			b.WriteString(content)
			break
		}
		end := strings.Index(content[start:], "}")
		if end < 0 {
			b.WriteString(content)
			break
		}
		end += start

		key := content[start+2 : end]
		if val, ok := vars[key]; ok {
			b.WriteString(content[:start])
			b.WriteString(val)
		} else {
			b.WriteString(content[:end+1])
		}
		content = content[end+1:]
	}

	return b.String()
}
