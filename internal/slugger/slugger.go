// Package slugger derives URL-safe secondary identifiers from display names.
package slugger

import "github.com/gosimple/slug"

// Make returns a lowercase, whitespace-normalized, URL-safe token for name.
// Deterministic: the same name always yields the same slug.
func Make(name string) string {
	return slug.Make(name)
}
