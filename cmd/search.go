package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/catalog"
	"github.com/vscope-cli/vscope/color"
	"github.com/vscope-cli/vscope/config"
	"github.com/vscope-cli/vscope/constant"
	"github.com/vscope-cli/vscope/filesystem"
	"github.com/vscope-cli/vscope/inline"
	"github.com/vscope-cli/vscope/key"
	"github.com/vscope-cli/vscope/log"
	"github.com/vscope-cli/vscope/provider"
	"github.com/vscope-cli/vscope/query"
	"github.com/vscope-cli/vscope/router"
	"github.com/vscope-cli/vscope/source"
	"github.com/vscope-cli/vscope/style"
	"github.com/vscope-cli/vscope/util"
)

const searchExample = `  vscope                          index view
  vscope -d show                  top shows of the default category
  vscope -d video_游戏            browse a video category
  vscope -q 海贼王 -d show_动漫    search shows
  vscope -a 搞笑 -a 宠物          aggregated feed for tags
  vscope -q 猫 --json -g first    first group as JSON`

func init() {
	rootCmd.AddCommand(searchCmd)
	searchFlags(searchCmd)
}

// searchCmd is the explicit form of the root command.
var searchCmd = &cobra.Command{
	Use:     "search",
	Short:   "Search, browse a department or show the index view",
	Example: searchExample,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(cmd)
	},
}

func searchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "Keywords to search for")
	cmd.Flags().StringP("department", "d", "", "Department to browse or search in (video, show, <kind>_<category>)")
	cmd.Flags().StringSliceP("aggregate", "a", []string{}, "Build an aggregated feed from these tags")
	cmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	cmd.Flags().StringP("group", "g", "", "Print only the selected groups (all, first, last, <index> or <key>)")
	cmd.Flags().IntP("limit", "l", 0, "Print at most this many records per group")
	cmd.Flags().StringP("output", "o", "", "Write the output to this file")

	lo.Must0(cmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if !viper.GetBool(key.SearchShowQuerySuggestions) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))

	lo.Must0(cmd.RegisterFlagCompletionFunc("department", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		c, err := catalog.FromConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return departmentIDs(c), cobra.ShellCompDirectiveNoFileComp
	}))

	cmd.MarkFlagsMutuallyExclusive("department", "aggregate")
}

func runSearch(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	c, err := catalog.FromConfig()
	handleErr(err)

	client, err := createClient()
	handleErr(err)

	settings, err := config.LoadSettings()
	handleErr(err)

	req := router.Request{
		Query:      lo.Must(cmd.Flags().GetString("query")),
		Department: lo.Must(cmd.Flags().GetString("department")),
		Keywords:   lo.Must(cmd.Flags().GetStringSlice("aggregate")),
		Settings:   settings,
	}
	req.Aggregated = len(req.Keywords) > 0

	if !req.Aggregated {
		handleErr(checkDepartment(c, req.Department))
	}

	groups := mo.None[inline.GroupPicker]()
	if picker := lo.Must(cmd.Flags().GetString("group")); picker != "" {
		fn, err := inline.ParseGroupPicker(picker)
		handleErr(err)
		groups = mo.Some(fn)
	}

	var out io.Writer = os.Stdout
	if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
		f, err := filesystem.API().Create(path)
		handleErr(err)
		defer util.Ignore(f.Close)
		out = f
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))

	options := &inline.Options{
		Out:     out,
		Router:  router.New(c, client, rng),
		Request: req,
		Json:    lo.Must(cmd.Flags().GetBool("json")),
		Groups:  groups,
		Limit:   lo.Must(cmd.Flags().GetInt("limit")),
		Width:   util.WrapWidth(viper.GetInt(key.OutputWrapWidth), 80),
	}

	handleErr(inline.Run(ctx, options))

	if req.Query != "" {
		if err := query.Remember(req.Query, 1); err != nil {
			log.Warn(err)
		}
	}
}

func createClient() (source.Client, error) {
	name := viper.GetString(key.DefaultSource)
	if name == "" {
		return nil, errors.New("source not set")
	}

	p, ok := provider.Get(name)
	if !ok {
		return nil, fmt.Errorf("source not found: %s", name)
	}

	return p.CreateClient()
}

func departmentIDs(c *catalog.Catalog) []string {
	return append([]string{constant.KindVideo, constant.KindShow}, c.Index().IDs()...)
}

// checkDepartment rejects department ids without a known kind prefix,
// suggesting the closest known one. Unknown categories are only logged.
func checkDepartment(c *catalog.Catalog, id string) error {
	dept, err := catalog.ParseDepartment(id)
	if err == nil {
		if _, ok := c.Index().Label(id); dept.Term != "" && !ok {
			log.Warnf("department %s is not in the catalog", id)
		}
		return nil
	}

	closest := lo.MinBy(departmentIDs(c), func(a string, b string) bool {
		return levenshtein.Distance(id, a) < levenshtein.Distance(id, b)
	})

	return fmt.Errorf(
		"%w %s, did you mean %s?",
		catalog.ErrUnknownDepartment,
		style.Fg(color.Red)(id),
		style.Fg(color.Yellow)(closest),
	)
}
