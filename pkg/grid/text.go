package grid

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Text Prototypes
// =============================================================================

// TextCell is a prototype backed by styled text. It is the representative
// item content a section provides for automatic sizing: the measurer wraps
// the content at the candidate width and the line count becomes the natural
// height.
type TextCell struct {
	Style   lipgloss.Style
	Content string
}

// FramedCell is a container-style prototype: item content wrapped in chrome
// (borders, padding) that plays no part in measurement. Measurement targets
// the inner cell via ContentView.
type FramedCell struct {
	Frame lipgloss.Style
	Cell  *TextCell
}

// ContentView returns the framed cell's measurable content.
func (c *FramedCell) ContentView() Prototype {
	if c.Cell == nil {
		return nil
	}
	return c.Cell
}

// Ensure FramedCell implements ContentHolder.
var _ ContentHolder = (*FramedCell)(nil)

// =============================================================================
// Text Measurer
// =============================================================================

// TextMeasurer measures TextCell prototypes by rendering them word-wrapped
// at the candidate width and counting the resulting lines. It is the
// default Measurer for strategies constructed without one.
type TextMeasurer struct{}

// NaturalHeight renders the target at the given width and returns its line
// count. Targets that are not text cells, and non-positive widths, measure
// as zero.
func (TextMeasurer) NaturalHeight(target Prototype, width float64) float64 {
	cell, ok := target.(*TextCell)
	if !ok || cell == nil {
		return 0
	}
	w := int(width)
	if w <= 0 {
		return 0
	}
	rendered := cell.Style.Width(w).Render(cell.Content)
	return float64(lipgloss.Height(rendered))
}

// Ensure TextMeasurer implements Measurer.
var _ Measurer = TextMeasurer{}
