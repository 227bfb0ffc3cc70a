// Package templates embeds the built-in output templates.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
