// Package icon renders UI symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon string

// Registered symbols. The string value doubles as the stable reference carried by result groups.
const (
	Logo     Icon = "logo"
	Feed     Icon = "feed"
	Search   Icon = "search"
	Views    Icon = "views"
	Up       Icon = "up"
	Down     Icon = "down"
	Score    Icon = "score"
	Progress Icon = "progress"
	Success  Icon = "success"
	Fail     Icon = "fail"
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Logo:     {emoji: "🎬", nerd: "", plain: "[vs]", kaomoji: "(ﾉ◕ヮ◕)ﾉ", squares: "▣"},
	Feed:     {emoji: "📰", nerd: "", plain: "[*]", kaomoji: "(・∀・)", squares: "▤"},
	Search:   {emoji: "🔍", nerd: "", plain: "[?]", kaomoji: "(・_・ヾ", squares: "▢"},
	Views:    {emoji: "📺", nerd: "", plain: "views", kaomoji: "(◉_◉)", squares: "▦"},
	Up:       {emoji: "👍", nerd: "", plain: "+", kaomoji: "(b ᵔ▽ᵔ)b", squares: "▲"},
	Down:     {emoji: "👎", nerd: "", plain: "-", kaomoji: "(╥﹏╥)", squares: "▼"},
	Score:    {emoji: "💜", nerd: "", plain: "score", kaomoji: "(♡˙︶˙♡)", squares: "◆"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "( ˘▽˘)っ", squares: "◧"},
	Success:  {emoji: "🎉", nerd: "", plain: "ok", kaomoji: "(ᵔ◡ᵔ)", squares: "■"},
	Fail:     {emoji: "💀", nerd: "", plain: "error", kaomoji: "(×_×)", squares: "□"},
}

// Get renders i in the configured variant. Unknown icons and variants render empty.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.get()
}

// Prefix renders i followed by a space, or nothing when the icon renders empty.
func Prefix(i Icon) string {
	if s := Get(i); s != "" {
		return s + " "
	}
	return ""
}
