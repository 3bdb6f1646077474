package layout_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/gridflow/pkg/grid"
	"github.com/matzehuels/gridflow/pkg/layout"
)

func ExampleArrange() {
	sections := []layout.Section{{
		Name:    "gallery",
		Columns: 2,
		Mode:    grid.AspectRatio(0.5),
		Items:   3,
	}}

	l, err := layout.Arrange(context.Background(), sections, grid.NewEnvironment(100, 40))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	for _, f := range l.Sections[0].Items {
		fmt.Printf("item %d at (%g,%g) %gx%g\n", f.Index, f.X, f.Y, f.Width, f.Height)
	}
	fmt.Printf("content height: %g\n", l.Height)
	// Output:
	// item 0 at (0,0) 50x25
	// item 1 at (50,0) 50x25
	// item 2 at (0,25) 50x25
	// content height: 50
}
