package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/auth"
	"github.com/vscope-cli/vscope/color"
	"github.com/vscope-cli/vscope/icon"
	"github.com/vscope-cli/vscope/key"
	"github.com/vscope-cli/vscope/log"
	"github.com/vscope-cli/vscope/open"
	"github.com/vscope-cli/vscope/style"
)

const youkuConsoleURL = "https://open.youku.com/"

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd manages the credentials of the content API.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Youku API client id",
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authLoginCmd.Flags().String("client-id", "", "Client id to store, prompted for when omitted")
}

// authLoginCmd stores the client id in the system keyring.
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the Youku API client id in the system keyring",
	Long: `Store the Youku API client id in the system keyring.
The youku.client_id config key takes precedence over the keyring when set.`,
	Run: func(cmd *cobra.Command, args []string) {
		id := lo.Must(cmd.Flags().GetString("client-id"))

		if id == "" {
			confirmOpen := survey.Confirm{
				Message: "Open the Youku developer console to look up your client id?",
				Default: false,
			}

			var openConsole bool
			err := survey.AskOne(&confirmOpen, &openConsole)
			if err == nil && openConsole {
				err = open.Start(youkuConsoleURL)
			}

			if err != nil || !openConsole {
				fmt.Println("Your client id is listed at " + youkuConsoleURL)
			}

			input := survey.Password{
				Message: "Youku client id:",
			}
			handleErr(survey.AskOne(&input, &id, survey.WithValidator(survey.Required)))
		}

		id = strings.TrimSpace(id)
		if id == "" {
			handleErr(errors.New("client id is empty"))
		}

		handleErr(auth.SetClientID(id))

		if viper.GetString(key.YoukuClientID) != "" {
			log.Warn("youku.client_id is set in the config and overrides the keyring")
			fmt.Printf(
				"%s %s is set in the config and takes precedence\n",
				style.Fg(color.Yellow)("!"),
				style.Fg(color.Purple)(key.YoukuClientID),
			)
		}

		fmt.Printf("%s client id saved to the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authLogoutCmd)
}

// authLogoutCmd removes the client id from the system keyring.
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the Youku API client id from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		err := auth.DeleteClientID()
		if errors.Is(err, auth.ErrNotFound) {
			fmt.Println("no client id stored")
			return
		}
		handleErr(err)

		fmt.Printf("%s client id removed from the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

// authStatusCmd reports where the client id is resolved from.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report where the client id is taken from",
	Run: func(cmd *cobra.Command, args []string) {
		if viper.GetString(key.YoukuClientID) != "" {
			fmt.Printf("%s client id set by %s\n", icon.Get(icon.Success), style.Fg(color.Purple)(key.YoukuClientID))
			return
		}

		_, err := auth.ClientID()
		switch {
		case err == nil:
			fmt.Printf("%s client id stored in the keyring\n", icon.Get(icon.Success))
		case errors.Is(err, auth.ErrNotFound):
			fmt.Printf("%s no client id, run %s\n", icon.Get(icon.Fail), style.Fg(color.Yellow)("vscope auth login"))
		default:
			handleErr(err)
		}
	},
}
