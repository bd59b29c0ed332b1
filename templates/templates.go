// Package templates embeds the application's HTML views.
package templates

import "embed"

//go:embed *.html cafe/*.html auth/*.html profile/*.html
var FS embed.FS
