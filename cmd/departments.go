package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vscope-cli/vscope/catalog"
	"github.com/vscope-cli/vscope/color"
	"github.com/vscope-cli/vscope/style"
)

func init() {
	rootCmd.AddCommand(departmentsCmd)
	departmentsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	departmentsCmd.Flags().BoolP("ids", "i", false, "Print only department ids, one per line")
	departmentsCmd.MarkFlagsMutuallyExclusive("json", "ids")

	departmentsCmd.SetOut(os.Stdout)
}

// departmentsCmd prints the department tree of the active catalog.
var departmentsCmd = &cobra.Command{
	Use:     "departments",
	Short:   "Display the department tree of the category catalog",
	Aliases: []string{"dept"},
	Run: func(cmd *cobra.Command, args []string) {
		c, err := catalog.FromConfig()
		handleErr(err)

		switch {
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(c.Tree()))
		case lo.Must(cmd.Flags().GetBool("ids")):
			for _, id := range departmentIDs(c) {
				cmd.Println(id)
			}
		default:
			printNode(cmd, c.Tree(), 0)
		}
	},
}

func printNode(cmd *cobra.Command, node *catalog.Node, depth int) {
	label := node.Label
	switch depth {
	case 0:
		label = style.New().Bold(true).Foreground(color.HiPurple).Render(label)
	case 1:
		label = style.Fg(color.HiBlue)(label)
	}

	line := label
	if node.ID != "" {
		line += " " + style.Faint(node.ID)
	}

	cmd.Printf("%*s%s\n", depth*2, "", line)
	for _, child := range node.Children {
		printNode(cmd, child, depth+1)
	}
}
