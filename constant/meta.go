// Package constant defines immutable application-level identifiers and catalog defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "vscope"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is sent with every request to the content API.
	UserAgent = "vscope/" + Version + " (+https://github.com/vscope-cli/vscope)"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
