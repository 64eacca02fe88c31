package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vscope-cli/vscope/result"
	"github.com/vscope-cli/vscope/router"
	"github.com/vscope-cli/vscope/util"
)

// GroupPicker narrows the groups of a reply.
type GroupPicker func(result.Set) result.Set

// Options configure one inline run.
type Options struct {
	Out     io.Writer
	Router  *router.Router
	Request router.Request
	Json    bool
	// Groups selects which groups are printed, all when absent.
	Groups mo.Option[GroupPicker]
	// Limit caps the records printed per group, unlimited when zero.
	Limit int
	// Width is the text wrap width.
	Width int
}

// ParseGroupPicker parses a group selector:
// "first", "last", "all", a group index from 0, or a group key.
func ParseGroupPicker(description string) (GroupPicker, error) {
	description = strings.TrimSpace(description)

	switch description {
	case "":
		return nil, fmt.Errorf("empty group selector")
	case "all":
		return func(set result.Set) result.Set { return set }, nil
	case "first":
		return func(set result.Set) result.Set {
			return lo.Subset(set, 0, 1)
		}, nil
	case "last":
		return func(set result.Set) result.Set {
			return lo.Subset(set, -1, 1)
		}, nil
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(set result.Set) result.Set {
			if len(set) == 0 {
				return set
			}
			return result.Set{set[util.Min(int(idx), len(set)-1)]}
		}, nil
	}

	return func(set result.Set) result.Set {
		return lo.Filter(set, func(g *result.Group, _ int) bool { return g.Key == description })
	}, nil
}
