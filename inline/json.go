package inline

import (
	"encoding/json"
	"io"

	"github.com/vscope-cli/vscope/result"
	"github.com/vscope-cli/vscope/router"
)

// Group is a result group with its rendering hints spelled out.
type Group struct {
	*result.Group
	Hints result.Hints `json:"hints"`
}

// Output is the JSON document printed by inline runs.
type Output struct {
	Query      string   `json:"query"`
	Department string   `json:"department"`
	Aggregated bool     `json:"aggregated,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
	Cancelled  bool     `json:"cancelled"`
	Groups     []*Group `json:"groups"`
}

func newOutput(req router.Request, cancelled bool, set result.Set) *Output {
	groups := make([]*Group, len(set))
	for i, g := range set {
		groups[i] = &Group{Group: g, Hints: g.Hints()}
	}

	return &Output{
		Query:      req.Query,
		Department: req.Department,
		Aggregated: req.Aggregated,
		Keywords:   req.Keywords,
		Cancelled:  cancelled,
		Groups:     groups,
	}
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
