package source

// Category is a browsable topic. Term is the stable machine key, Label the display name.
type Category struct {
	Term  string `json:"term"`
	Label string `json:"label"`
	Lang  string `json:"lang"`
}

func (c Category) String() string {
	return c.Label
}
