package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/constant"
	"github.com/vscope-cli/vscope/key"
)

// ErrInvalidSetting is returned when a scope setting is out of its allowed range.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings are the resolved per-request scope settings.
type Settings struct {
	// IndexTop is the category label of the weekly top section.
	IndexTop string `json:"index_top"`
	// ResultCount is the number of keyword search results to request.
	ResultCount int `json:"result_count"`
	// OrderBy is the API ordering for keyword searches.
	OrderBy string `json:"order_by"`
}

// ResolveSettings validates the raw indices and count and maps them onto their values.
func ResolveSettings(indexTop, resultCount, orderBy int) (Settings, error) {
	if indexTop < 0 || indexTop >= len(constant.IndexTopCategories) {
		return Settings{}, fmt.Errorf("%w: %s=%d, want 0..%d", ErrInvalidSetting, key.ScopeIndexTop, indexTop, len(constant.IndexTopCategories)-1)
	}

	if resultCount <= 0 {
		return Settings{}, fmt.Errorf("%w: %s=%d, want a positive count", ErrInvalidSetting, key.ScopeResultCount, resultCount)
	}

	if orderBy < 0 || orderBy >= len(constant.OrderByOptions) {
		return Settings{}, fmt.Errorf("%w: %s=%d, want 0..%d", ErrInvalidSetting, key.ScopeOrderBy, orderBy, len(constant.OrderByOptions)-1)
	}

	return Settings{
		IndexTop:    constant.IndexTopCategories[indexTop],
		ResultCount: resultCount,
		OrderBy:     constant.OrderByOptions[orderBy],
	}, nil
}

// LoadSettings resolves Settings from the active viper configuration.
func LoadSettings() (Settings, error) {
	return ResolveSettings(
		viper.GetInt(key.ScopeIndexTop),
		viper.GetInt(key.ScopeResultCount),
		viper.GetInt(key.ScopeOrderBy),
	)
}
