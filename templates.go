package surface

import (
	"io/fs"

	"github.com/goliatone/go-surface/pkg/docs"
)

// EmbeddedTemplates exposes the built-in documentation templates so callers
// can reuse or extend them without importing the docs package directly.
func EmbeddedTemplates() fs.FS {
	return docs.TemplatesFS()
}
