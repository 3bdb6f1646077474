package grid

import "testing"

// plainSection overrides nothing.
type plainSection struct {
	Passthrough
}

// heroSection doubles the height of its first item.
type heroSection struct {
	Passthrough
}

func (heroSection) ItemSize(index int, suggested Size, _ Environment) Size {
	if index == 0 {
		suggested.Height *= 2
	}
	return suggested
}

func TestPassthroughReturnsSuggestedUnchanged(t *testing.T) {
	var d SectionDelegate = plainSection{}
	env := NewEnvironment(100, 40)

	size := Size{Width: 33, Height: 7}
	metrics := Metrics{
		ContentInsets:           Insets{Top: 1, Left: 2, Bottom: 3, Right: 4},
		MinimumLineSpacing:      1,
		MinimumInteritemSpacing: 2,
	}

	if got := d.ItemSize(5, size, env); got != size {
		t.Errorf("ItemSize = %v, want suggested %v", got, size)
	}
	if got := d.HeaderSize(size, env); got != size {
		t.Errorf("HeaderSize = %v, want suggested %v", got, size)
	}
	if got := d.FooterSize(size, env); got != size {
		t.Errorf("FooterSize = %v, want suggested %v", got, size)
	}
	if got := d.SectionMetrics(metrics, env); got != metrics {
		t.Errorf("SectionMetrics = %v, want suggested %v", got, metrics)
	}
}

func TestDelegateOverridesSingleOperation(t *testing.T) {
	var d SectionDelegate = heroSection{}
	env := NewEnvironment(100, 40)
	suggested := Size{Width: 50, Height: 10}

	if got := d.ItemSize(0, suggested, env); got.Height != 20 {
		t.Errorf("ItemSize(0).Height = %v, want 20", got.Height)
	}
	if got := d.ItemSize(1, suggested, env); got != suggested {
		t.Errorf("ItemSize(1) = %v, want suggested %v", got, suggested)
	}
	// Non-overridden operations keep pass-through behavior.
	if got := d.HeaderSize(suggested, env); got != suggested {
		t.Errorf("HeaderSize = %v, want suggested %v", got, suggested)
	}
}
