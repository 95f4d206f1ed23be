package docs

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle. Overrides passed through
// WithTemplatesFS must mirror its layout: templates/*.tpl.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
