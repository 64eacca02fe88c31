// Package key defines the canonical set of configuration identifiers.
package key

// Scope behaviour - these keys feed config.Settings and drive request routing.
const (
	ScopeIndexTop    = "scope.index_top"
	ScopeResultCount = "scope.result_count"
	ScopeOrderBy     = "scope.order_by"
)

// Content sources.
const (
	DefaultSource = "sources.default"
)

// Youku open API client.
const (
	YoukuAPIRoot   = "youku.api_root"
	YoukuClientID  = "youku.client_id"
	YoukuRateLimit = "youku.rate_limit"
	YoukuTimeout   = "youku.timeout"
)

// Category catalog.
const (
	CatalogPath = "catalog.path"
)

// Local caches.
const (
	CacheDetailTTLHours = "cache.detail_ttl_hours"
)

// Search interaction.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	OutputWrapWidth = "output.wrap_width"
)
