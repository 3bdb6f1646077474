package grid

// Prototype is an opaque handle to an off-screen instance of an item's
// visual representation. It is used solely to measure natural size under
// ModeAutomatic and is never displayed. Ownership stays with whoever
// constructed the Strategy; a prototype must not be mutated while a
// measurement is in flight.
type Prototype interface{}

// ContentHolder is implemented by container-style prototypes (a cell with
// chrome around its content). When a prototype implements ContentHolder,
// measurement targets the inner content view instead of the container.
type ContentHolder interface {
	// ContentView returns the measurable content of the container.
	// A nil result means nothing is measurable and sizing degrades to zero.
	ContentView() Prototype
}

// Measurer resolves the natural height of a prototype constrained to a
// candidate width, with the height left unconstrained. This is the injected
// "fit to size" capability: the sizing strategy never talks to a rendering
// backend directly, so it can be exercised with stub measurers in tests.
//
// A measurement is synchronous and bounded; its cost is the measurer's
// responsibility, which is why Strategy memoizes the results.
type Measurer interface {
	NaturalHeight(target Prototype, width float64) float64
}

// resolveTarget unwraps container prototypes down to their measurable
// content. It returns nil when no measurable view can be resolved.
func resolveTarget(p Prototype) Prototype {
	if holder, ok := p.(ContentHolder); ok {
		return holder.ContentView()
	}
	return p
}
