// Package where resolves the filesystem locations used by the application.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vscope-cli/vscope/constant"
	"github.com/vscope-cli/vscope/filesystem"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "VSCOPE_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// VSCOPE_CONFIG_PATH takes precedence over the platform user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Details resolves the directory holding cached video and show details.
func Details() string {
	return ensureDir(filepath.Join(Cache(), "details"))
}

// Logs resolves the log directory.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Catalog resolves the user category catalog override.
func Catalog() string {
	return filepath.Join(Config(), "category.json")
}

// Queries resolves the query history file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
