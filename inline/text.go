package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/vscope-cli/vscope/color"
	"github.com/vscope-cli/vscope/icon"
	"github.com/vscope-cli/vscope/result"
	"github.com/vscope-cli/vscope/style"
)

func writeText(out io.Writer, output *Output, width int) error {
	if output.Cancelled {
		_, err := fmt.Fprintln(out, style.Faint("cancelled"))
		return err
	}

	groups := lo.Filter(output.Groups, func(g *Group, _ int) bool { return g.Len() > 0 })
	if len(groups) == 0 {
		_, err := fmt.Fprintln(out, style.Faint("nothing found"))
		return err
	}

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		writeGroup(&b, g, width)
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func writeGroup(b *strings.Builder, g *Group, width int) {
	title := g.Title
	if title == "" {
		title = g.Key
	}
	b.WriteString(icon.Prefix(g.Icon))
	b.WriteString(style.Title(title))
	b.WriteString(" ")
	b.WriteString(style.Faint(string(g.Hints.Layout)))
	b.WriteString("\n")

	for i, r := range g.Records {
		writeRecord(b, i+1, r, g.Hints.Layout == result.Carousel, width)
	}
}

func writeRecord(b *strings.Builder, n int, r result.Record, highlight bool, width int) {
	number := fmt.Sprintf("%3d. ", n)
	title := r.Title
	if highlight {
		title = style.Fg(color.Orange)(title)
	}

	line := number + icon.Prefix(r.Emblem) + title
	if attrs := attributes(r.Attrs); attrs != "" {
		line += "  " + attrs
	}
	b.WriteString(clip(line, width))
	b.WriteString("\n")

	indent := strings.Repeat(" ", len(number))
	if r.Subtitle != "" {
		b.WriteString(clip(indent+style.Italic(r.Subtitle), width))
		b.WriteString("\n")
	}
	if r.URI != "" {
		b.WriteString(clip(indent+style.Faint(r.URI), width))
		b.WriteString("\n")
	}
}

func attributes(attrs []result.Attribute) string {
	return strings.Join(lo.Map(attrs, func(a result.Attribute, _ int) string {
		return style.Fg(color.Gray)(icon.Prefix(a.Icon) + a.Value)
	}), " ")
}

func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
