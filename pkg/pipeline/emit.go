package pipeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridflow/pkg/layout"
)

// Summary styles. Rendering degrades to plain text on non-TTY outputs.
var (
	summaryTitleStyle   = lipgloss.NewStyle().Bold(true)
	summarySectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	summaryDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Emit serializes the layout into the requested artifact formats.
func Emit(l layout.Layout, opts Options) (map[string][]byte, error) {
	opts.SetEmitDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatJSON:
			data, err := layout.MarshalLayout(l)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatSummary:
			artifacts[format] = []byte(Summarize(l))
		}
	}
	return artifacts, nil
}

// Summarize renders a human-readable overview of an arranged layout:
// one line per section with its frame count and vertical extent.
func Summarize(l layout.Layout) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render(fmt.Sprintf(
		"Layout %gx%g (%s)", l.Width, l.Height, l.Environment.SizeClass)))
	b.WriteString("\n")

	for _, s := range l.Sections {
		top, bottom := sectionExtent(s)
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			summarySectionStyle.Render(s.Name),
			summaryDimStyle.Render(fmt.Sprintf("%d items, rows %g-%g", len(s.Items), top, bottom))))
	}

	b.WriteString(summaryDimStyle.Render(fmt.Sprintf("%d frames total", l.FrameCount())))
	b.WriteString("\n")
	return b.String()
}

// sectionExtent returns the vertical span covered by a section's frames,
// headers and footers included.
func sectionExtent(s layout.SectionFrames) (top, bottom float64) {
	first := true
	consider := func(f *layout.Frame) {
		if f == nil {
			return
		}
		if first || f.Y < top {
			top = f.Y
		}
		if first || f.Y+f.Height > bottom {
			bottom = f.Y + f.Height
		}
		first = false
	}

	consider(s.Header)
	for i := range s.Items {
		consider(&s.Items[i])
	}
	consider(s.Footer)
	return top, bottom
}
