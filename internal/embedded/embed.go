package embedded

import (
	"embed"
)

// Content holds the default configuration, used when no config file exists
// on disk.
//
//go:embed config/*.yaml
var Content embed.FS
