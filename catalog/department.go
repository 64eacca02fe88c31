package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vscope-cli/vscope/constant"
)

// ErrUnknownDepartment is returned for department ids without a known kind prefix.
var ErrUnknownDepartment = errors.New("unknown department")

// Department is a parsed department id.
// The zero value is the root department.
type Department struct {
	Kind string
	Term string
}

// ID renders the department back into its id form.
func (d Department) ID() string {
	if d.Term == "" {
		return d.Kind
	}
	return DepartmentID(d.Kind, d.Term)
}

// IsRoot reports whether d is the index department.
func (d Department) IsRoot() bool {
	return d.Kind == ""
}

// DepartmentID returns the id of the department listing term of kind.
func DepartmentID(kind, term string) string {
	return kind + "_" + term
}

// ParseDepartment splits an id of the form "", "<kind>" or "<kind>_<term>".
// The kind prefix is validated before anything else is looked at.
func ParseDepartment(id string) (Department, error) {
	if id == "" {
		return Department{}, nil
	}

	kind, term, _ := strings.Cut(id, "_")
	switch kind {
	case constant.KindVideo, constant.KindShow:
		return Department{Kind: kind, Term: term}, nil
	default:
		return Department{}, fmt.Errorf("%w: %q", ErrUnknownDepartment, id)
	}
}

// Index maps department ids to category labels.
type Index struct {
	labels map[string]string
	ids    []string
}

func newIndex(c *Catalog) *Index {
	idx := &Index{labels: make(map[string]string)}
	for _, kind := range Kinds {
		for _, cat := range c.categories[kind] {
			id := DepartmentID(kind, cat.Term)
			idx.labels[id] = cat.Label
			idx.ids = append(idx.ids, id)
		}
	}
	return idx
}

// Label resolves a department id to its category label.
func (i *Index) Label(id string) (string, bool) {
	label, ok := i.labels[id]
	return label, ok
}

// IDs returns every category department id, grouped by kind in catalog order.
func (i *Index) IDs() []string {
	return append([]string(nil), i.ids...)
}

// Node is an entry of the department tree.
type Node struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Children []*Node `json:"children,omitempty"`
}

var kindLabels = map[string]string{
	constant.KindVideo: "视频",
	constant.KindShow:  "节目",
}

// Tree returns the browsable department hierarchy rooted at the index department.
func (c *Catalog) Tree() *Node {
	root := &Node{ID: "", Label: "首页"}
	for _, kind := range Kinds {
		node := &Node{ID: kind, Label: kindLabels[kind]}
		for _, cat := range c.categories[kind] {
			node.Children = append(node.Children, &Node{ID: DepartmentID(kind, cat.Term), Label: cat.Label})
		}
		root.Children = append(root.Children, node)
	}
	return root
}
