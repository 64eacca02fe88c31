package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"os/signal"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/constant"
	"github.com/vscope-cli/vscope/icon"
	"github.com/vscope-cli/vscope/key"
	"github.com/vscope-cli/vscope/open"
	"github.com/vscope-cli/vscope/preview"
	"github.com/vscope-cli/vscope/util"
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().String("video", "", "Id of the video to preview")
	previewCmd.Flags().String("show", "", "Id of the show to preview")
	previewCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	previewCmd.Flags().BoolP("open", "O", false, "Open the play page in the default browser")
	previewCmd.MarkFlagsMutuallyExclusive("video", "show")

	previewCmd.SetOut(os.Stdout)
}

// previewCmd prints the detail view of a single video or show.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Display the details of a video or show",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("video") && !cmd.Flags().Changed("show") {
			handleErr(errors.New("either --video or --show must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		kind, id := constant.KindVideo, lo.Must(cmd.Flags().GetString("video"))
		if cmd.Flags().Changed("show") {
			kind, id = constant.KindShow, lo.Must(cmd.Flags().GetString("show"))
		}

		client, err := createClient()
		handleErr(err)

		stopProgress := util.PrintErasable(icon.Get(icon.Progress) + " Fetching details...")
		view, err := preview.Fetch(ctx, client, kind, id)
		stopProgress()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("open")) && view.Action.URI != "" {
			handleErr(open.Start(view.Action.URI))
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(view))
			return
		}

		handleErr(view.Render(cmd.OutOrStdout(), util.WrapWidth(viper.GetInt(key.OutputWrapWidth), 80)))
	},
}
