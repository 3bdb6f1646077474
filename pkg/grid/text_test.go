package grid

import "testing"

func TestTextMeasurerCountsWrappedLines(t *testing.T) {
	m := TextMeasurer{}

	tests := []struct {
		name    string
		content string
		width   float64
		want    float64
	}{
		{name: "SingleLine", content: "hello", width: 40, want: 1},
		{name: "ExplicitNewlines", content: "a\nb\nc", width: 40, want: 3},
		{name: "ZeroWidth", content: "hello", width: 0, want: 0},
		{name: "NegativeWidth", content: "hello", width: -5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := &TextCell{Content: tt.content}
			if got := m.NaturalHeight(cell, tt.width); got != tt.want {
				t.Errorf("NaturalHeight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextMeasurerWrapsToWidth(t *testing.T) {
	m := TextMeasurer{}
	cell := &TextCell{Content: "alpha beta gamma"}

	wide := m.NaturalHeight(cell, 40)
	narrow := m.NaturalHeight(cell, 6)

	if wide != 1 {
		t.Errorf("wide NaturalHeight = %v, want 1", wide)
	}
	if narrow <= wide {
		t.Errorf("narrow NaturalHeight = %v, want more lines than wide (%v)", narrow, wide)
	}
}

func TestTextMeasurerRejectsUnknownTargets(t *testing.T) {
	m := TextMeasurer{}
	if got := m.NaturalHeight(stubView{}, 40); got != 0 {
		t.Errorf("NaturalHeight(non-text) = %v, want 0", got)
	}
	if got := m.NaturalHeight(nil, 40); got != 0 {
		t.Errorf("NaturalHeight(nil) = %v, want 0", got)
	}
	var nilCell *TextCell
	if got := m.NaturalHeight(nilCell, 40); got != 0 {
		t.Errorf("NaturalHeight(nil cell) = %v, want 0", got)
	}
}

func TestFramedCellContentView(t *testing.T) {
	inner := &TextCell{Content: "body"}
	framed := &FramedCell{Cell: inner}

	if got := framed.ContentView(); got != Prototype(inner) {
		t.Errorf("ContentView = %v, want inner cell", got)
	}
	if got := (&FramedCell{}).ContentView(); got != nil {
		t.Errorf("empty FramedCell ContentView = %v, want nil", got)
	}
}

func TestAutomaticSizingWithTextMeasurer(t *testing.T) {
	s := NewStrategy(StrategyConfig{
		Columns:   2,
		Mode:      Automatic(true),
		Prototype: &TextCell{Content: "one\ntwo"},
	})
	env := NewEnvironment(80, 24)

	got := s.ItemSize(0, env)
	if got.Width != 40 {
		t.Errorf("Width = %v, want 40", got.Width)
	}
	if got.Height != 2 {
		t.Errorf("Height = %v, want 2", got.Height)
	}
}
