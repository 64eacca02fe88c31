package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/vscope-cli/vscope/color"
	"github.com/vscope-cli/vscope/icon"
	"github.com/vscope-cli/vscope/style"
)

// Render writes v as styled text wrapped at width.
func (v *View) Render(out io.Writer, width int) error {
	var b strings.Builder

	b.WriteString(icon.Prefix(icon.Logo) + style.Title(v.Title) + "\n")
	b.WriteString(style.Faint(v.Subtitle) + "\n\n")

	labelWidth := lo.Max(lo.Map(v.Info, func(f Field, _ int) int { return len([]rune(f.Label)) }))
	for _, f := range v.Info {
		if f.Value == "" {
			continue
		}
		label := f.Label + strings.Repeat("　", labelWidth-len([]rune(f.Label)))
		b.WriteString(style.Fg(color.Blue)(label) + "  " + f.Value + "\n")
	}

	b.WriteString("\n" + style.Subtitle("描述") + "\n")
	b.WriteString(indent.String(wordwrap.String(v.Description, max(10, width-2)), 2) + "\n\n")

	b.WriteString(style.Fg(color.Orange)(fmt.Sprintf("▶ %s", v.Action.Label)) + "  " + style.Faint(v.Action.URI) + "\n")

	_, err := io.WriteString(out, b.String())
	return err
}
