// Package layout arranges grid sections into positioned frames.
//
// This is the hosting side of the sizing strategy: [Arrange] walks a list of
// [Section] configurations, consults each section's delegate for metrics and
// header/footer sizes, resolves every item size through a [grid.Strategy],
// and places the items row by row into a [Layout] document.
//
// The Layout document is the serialization format shared by the CLI, the
// preview server, and the snapshot store. It carries JSON tags for file
// artifacts and BSON tags for MongoDB persistence; use
// [WriteLayoutFile]/[ReadLayoutFile] for file round-trips.
//
// Scrolling, rendering of item content, and cell recycling are out of scope:
// a Layout only records where each frame goes.
package layout
