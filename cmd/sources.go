package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/color"
	"github.com/vscope-cli/vscope/key"
	"github.com/vscope-cli/vscope/provider"
	"github.com/vscope-cli/vscope/style"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd is the parent command for content sources.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the available content sources",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print only source ids, one per line")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd lists every builtin content source.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display every registered content source",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, id := range provider.IDs() {
				cmd.Println(id)
			}
			return
		}

		active := viper.GetString(key.DefaultSource)
		cmd.Println(style.New().Foreground(color.HiBlue).Bold(true).Render("Builtin:"))
		for _, p := range provider.Builtins() {
			line := p.Name + " " + style.Faint(p.Website)
			if p.ID == active {
				line += " " + style.Fg(color.Green)("(default)")
			}
			cmd.Println(line)
		}
	},
}
