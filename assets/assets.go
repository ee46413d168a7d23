// Package assets holds static files embedded into the binary.
package assets

import (
	_ "embed"
	"strings"
)

//go:embed metamask.txt
var logo string

// Logo returns the fox illustration shown above the connect button
func Logo() string {
	return strings.TrimRight(logo, "\n")
}
