// Package sing carries build information shared by the command line tools.
package sing

const (
	Version    = "0.1.0"
	VersionStr = "v" + Version
)
