// Package provider lists the content sources vscope can query.
package provider

import (
	"strings"

	"github.com/samber/lo"
	"github.com/vscope-cli/vscope/provider/youku"
	"github.com/vscope-cli/vscope/source"
)

// Provider is a named factory of content clients.
type Provider struct {
	ID   string
	Name string
	// Website is the home page of the content service.
	Website string
	// CreateClient builds a client from the active configuration.
	CreateClient func() (source.Client, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the providers compiled into vscope.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:      youku.Name,
			Name:    "Youku",
			Website: "https://www.youku.com",
			CreateClient: func() (source.Client, error) {
				c, err := youku.FromConfig()
				if err != nil {
					return nil, err
				}
				return c, nil
			},
		},
	}
}

// Get finds a provider by id or name, ignoring case.
func Get(name string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name)
	})
}

// IDs returns the ids of every provider.
func IDs() []string {
	return lo.Map(Builtins(), func(p *Provider, _ int) string { return p.ID })
}
