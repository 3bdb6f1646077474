package layout

import (
	"context"
	"time"

	"github.com/matzehuels/gridflow/pkg/errors"
	"github.com/matzehuels/gridflow/pkg/grid"
	"github.com/matzehuels/gridflow/pkg/observability"
)

// =============================================================================
// Section - Arrangement Input
// =============================================================================

// Section configures one group of items for arrangement.
type Section struct {
	// Name identifies the section in the resulting layout.
	Name string

	// Columns is the number of columns items are laid out in.
	Columns int

	// Mode selects how item heights are derived.
	Mode grid.Mode

	// Metrics are the suggested section metrics; the delegate may override.
	Metrics grid.Metrics

	// Items is the number of items in the section.
	Items int

	// Prototype is the representative item content measured under
	// automatic sizing.
	Prototype grid.Prototype

	// Measurer resolves prototype heights. Nil selects the default.
	Measurer grid.Measurer

	// HeaderHeight and FooterHeight are the suggested reference sizes for
	// the section's header and footer. Zero means no header/footer.
	HeaderHeight float64
	FooterHeight float64

	// Delegate overrides suggested sizes and metrics. Nil means every
	// suggestion is used unchanged.
	Delegate grid.SectionDelegate
}

// delegate returns the section's delegate, defaulting to pass-through.
func (s Section) delegate() grid.SectionDelegate {
	if s.Delegate != nil {
		return s.Delegate
	}
	return grid.Passthrough{}
}

// =============================================================================
// Arrange - Flow Layout Pass
// =============================================================================

// Arrange performs one layout pass: it resolves every item size through a
// fresh sizing strategy per section and stacks sections vertically, placing
// items row by row within each section's insets.
//
// Each row advances by the tallest item in the row plus the section's
// minimum line spacing, so mixed-height rows never overlap. Sizes suggested
// by the strategy pass through the section delegate before placement.
func Arrange(ctx context.Context, sections []Section, env grid.Environment) (Layout, error) {
	start := time.Now()
	observability.Layout().OnArrangeStart(ctx, len(sections))

	result := Layout{
		Width:       env.ContentSize.Width,
		Environment: env,
		Sections:    make([]SectionFrames, 0, len(sections)),
	}

	var y float64
	for _, sec := range sections {
		if err := errors.ValidateColumns(sec.Columns); err != nil {
			wrapped := errors.Wrap(errors.ErrCodeInvalidSection, err, "section %q", sec.Name)
			observability.Layout().OnArrangeComplete(ctx, 0, time.Since(start), wrapped)
			return Layout{}, wrapped
		}

		frames, bottom := arrangeSection(ctx, sec, env, y)
		result.Sections = append(result.Sections, frames)
		y = bottom
	}

	result.Height = y
	observability.Layout().OnArrangeComplete(ctx, result.FrameCount(), time.Since(start), nil)
	return result, nil
}

// arrangeSection places one section starting at the given y offset and
// returns its frames along with the y offset below the section.
func arrangeSection(ctx context.Context, sec Section, env grid.Environment, y float64) (SectionFrames, float64) {
	d := sec.delegate()
	metrics := d.SectionMetrics(sec.Metrics, env)

	frames := SectionFrames{Name: sec.Name, Items: make([]Frame, 0, sec.Items)}

	if header := d.HeaderSize(referenceSize(sec.HeaderHeight, env), env); header.Height > 0 {
		frames.Header = &Frame{X: 0, Y: y, Width: header.Width, Height: header.Height}
		y += header.Height
	}

	strategy := grid.NewStrategy(grid.StrategyConfig{
		Columns:   sec.Columns,
		Mode:      sec.Mode,
		Metrics:   metrics,
		Prototype: sec.Prototype,
		Measurer:  sec.Measurer,
	})

	y += metrics.ContentInsets.Top
	columnWidth := strategy.ColumnWidth(env)

	var rowMax float64
	for i := 0; i < sec.Items; i++ {
		col := i % sec.Columns
		if col == 0 && i > 0 {
			y += rowMax + metrics.MinimumLineSpacing
			rowMax = 0
		}

		size := d.ItemSize(i, strategy.ItemSize(i, env), env)
		if sec.Mode.Kind == grid.ModeAutomatic {
			observability.Measure().OnMeasure(ctx, sec.Name, i, size.Width, size.Height)
		}

		x := metrics.ContentInsets.Left + float64(col)*(columnWidth+metrics.MinimumInteritemSpacing)
		frames.Items = append(frames.Items, Frame{
			Index:  i,
			X:      x,
			Y:      y,
			Width:  size.Width,
			Height: size.Height,
		})

		if size.Height > rowMax {
			rowMax = size.Height
		}
	}

	if sec.Items > 0 {
		y += rowMax
	}
	y += metrics.ContentInsets.Bottom

	if footer := d.FooterSize(referenceSize(sec.FooterHeight, env), env); footer.Height > 0 {
		frames.Footer = &Frame{X: 0, Y: y, Width: footer.Width, Height: footer.Height}
		y += footer.Height
	}

	return frames, y
}

// referenceSize builds the suggested full-width header/footer size.
func referenceSize(height float64, env grid.Environment) grid.Size {
	return grid.Size{Width: env.ContentSize.Width, Height: height}
}
