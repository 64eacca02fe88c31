package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/icon"
	"github.com/vscope-cli/vscope/key"
	"github.com/vscope-cli/vscope/provider/youku"
	"github.com/vscope-cli/vscope/util"
	"github.com/vscope-cli/vscope/where"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"details cache", "details", mo.Some("d"), where.Details},
	{"queries history", "queries", mo.Some("q"), where.Queries},
	{"logs", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("stale", "s", false, "drop only expired details cache entries")
}

// clearCmd removes cached artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		if lo.Must(cmd.Flags().GetBool("stale")) {
			anyCleared = true
			ttl := time.Duration(viper.GetInt(key.CacheDetailTTLHours)) * time.Hour
			removed, err := youku.New(youku.Options{DetailTTL: ttl}).PruneDetails()
			handleErr(err)
			fmt.Printf("%s %s dropped\n", icon.Get(icon.Success), util.Quantify(removed, "stale detail", "stale details"))
		}

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), util.Capitalize(target.name)))
			err := util.Delete(target.location())
			e()
			if !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
