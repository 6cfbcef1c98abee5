// Package catalog embeds the sample venue catalog so the CLI and tests work
// without any file on disk.
package catalog

import _ "embed"

// Venues contains the raw bytes of venues.yaml, embedded at compile time.
//
//go:embed venues.yaml
var Venues []byte
