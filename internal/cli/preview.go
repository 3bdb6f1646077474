package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridflow/pkg/grid"
	"github.com/matzehuels/gridflow/pkg/layout"
	"github.com/matzehuels/gridflow/pkg/manifest"
)

// Preview styles
var (
	previewCellStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Align(lipgloss.Center, lipgloss.Center)

	previewHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewFooterStyle = lipgloss.NewStyle().Foreground(colorGray)
	previewStatusStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the preview command for interactive layout inspection.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [manifest.toml]",
		Short: "Preview a grid layout interactively in the terminal",
		Long: `Preview a grid layout interactively in the terminal.

The preview re-arranges the manifest every time the terminal is resized, so
column widths, wrapping heights, and size class transitions can be inspected
live. Press q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			model := NewPreviewModel(m)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// PreviewModel - Interactive grid preview
// =============================================================================

// PreviewModel is the bubbletea model for the layout preview. It holds the
// loaded manifest and re-arranges it whenever the viewport changes.
type PreviewModel struct {
	Manifest *manifest.Manifest
	Layout   layout.Layout
	Width    int
	Height   int
	Scroll   int
	Err      error
}

// NewPreviewModel creates a preview model for the given manifest.
func NewPreviewModel(m *manifest.Manifest) PreviewModel {
	return PreviewModel{Manifest: m}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Scroll > 0 {
				m.Scroll--
			}
		case "down", "j":
			m.Scroll++
		case "g":
			m.Scroll = 0
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Scroll = 0
		m.arrange()
	}
	return m, nil
}

// arrange recomputes the layout for the current viewport. The status bar
// takes one row, so the grid gets Height-1.
func (m *PreviewModel) arrange() {
	if m.Width <= 0 {
		return
	}
	env := grid.NewEnvironment(float64(m.Width), float64(m.Height-1))
	l, err := layout.Arrange(context.Background(), m.Manifest.LayoutSections(), env)
	m.Layout, m.Err = l, err
}

func (m PreviewModel) View() string {
	if m.Err != nil {
		return StyleWarning.Render("arrange failed: ") + m.Err.Error() + "\n"
	}
	if m.Width == 0 {
		return previewStatusStyle.Render("measuring viewport...")
	}

	var b strings.Builder
	for i, s := range m.Layout.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderSection(s))
	}

	body := clipLines(b.String(), m.Scroll, m.Height-1)
	status := previewStatusStyle.Render(fmt.Sprintf(
		" %gx%g · %s · %d frames · ↑/↓ scroll · q quit",
		m.Layout.Width, m.Layout.Height, m.Layout.Environment.SizeClass, m.Layout.FrameCount()))

	return body + "\n" + status
}

// renderSection draws one section: header line, item boxes row by row, footer.
func (m PreviewModel) renderSection(s layout.SectionFrames) string {
	var b strings.Builder

	if s.Header != nil {
		b.WriteString(previewHeaderStyle.Render(" " + s.Name))
		b.WriteString("\n")
	}

	for _, row := range groupRows(s.Items) {
		cells := make([]string, 0, len(row))
		for _, f := range row {
			cells = append(cells, renderCell(f))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	if s.Footer != nil {
		b.WriteString(previewFooterStyle.Render(" " + s.Name + " end"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCell draws one item frame as a bordered box labeled with its index.
// The border consumes one cell on each side.
func renderCell(f layout.Frame) string {
	w, h := int(f.Width)-2, int(f.Height)-2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return previewCellStyle.Width(w).Height(h).Render(fmt.Sprintf("%d", f.Index))
}

// groupRows buckets item frames by their Y coordinate, preserving index
// order within each row.
func groupRows(items []layout.Frame) [][]layout.Frame {
	byY := make(map[float64][]layout.Frame)
	for _, f := range items {
		byY[f.Y] = append(byY[f.Y], f)
	}

	ys := make([]float64, 0, len(byY))
	for y := range byY {
		ys = append(ys, y)
	}
	sort.Float64s(ys)

	rows := make([][]layout.Frame, 0, len(ys))
	for _, y := range ys {
		row := byY[y]
		sort.Slice(row, func(i, j int) bool { return row[i].Index < row[j].Index })
		rows = append(rows, row)
	}
	return rows
}

// clipLines returns at most count lines of s starting at offset.
func clipLines(s string, offset, count int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + count
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}
