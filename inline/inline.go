// Package inline runs one request non-interactively and prints the reply.
package inline

import (
	"context"
	"errors"
	"os"

	"github.com/samber/lo"
	"github.com/vscope-cli/vscope/log"
	"github.com/vscope-cli/vscope/result"
)

// Run executes the request of options and writes the reply.
// Interrupting ctx prints a cancelled reply instead of failing.
func Run(ctx context.Context, options *Options) error {
	if options.Router == nil {
		return errors.New("no router configured")
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	reply, err := options.Router.Search(ctx, options.Request)
	if err != nil {
		return err
	}

	groups := reply.Groups
	if options.Groups.IsPresent() {
		groups = options.Groups.MustGet()(groups)
	}
	if options.Limit > 0 {
		groups = limit(groups, options.Limit)
	}

	output := newOutput(options.Request, reply.Cancelled, groups)
	log.Infof("printing %d records in %d groups", groups.Len(), len(groups))

	if options.Json {
		return writeJson(options.Out, output)
	}
	return writeText(options.Out, output, options.Width)
}

func limit(set result.Set, n int) result.Set {
	return lo.Map(set, func(g *result.Group, _ int) *result.Group {
		clone := *g
		clone.Records = lo.Subset(g.Records, 0, uint(n))
		return &clone
	})
}
