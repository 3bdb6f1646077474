package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/gridflow/pkg/grid"
)

// =============================================================================
// Layout - Arranged Frame Document
// =============================================================================

// Frame is one positioned rectangle in the arranged layout.
// Coordinates are in cells, origin at the top-left of the content area.
type Frame struct {
	Index  int     `json:"index" bson:"index"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// SectionFrames holds the arranged frames of one section.
type SectionFrames struct {
	Name   string  `json:"name" bson:"name"`
	Header *Frame  `json:"header,omitempty" bson:"header,omitempty"`
	Footer *Frame  `json:"footer,omitempty" bson:"footer,omitempty"`
	Items  []Frame `json:"items" bson:"items"`
}

// Layout is the serialized result of arranging sections for one environment.
//
// Width matches the viewport width the layout was computed for; Height is
// the total content height, which may exceed the viewport (the scrollable
// extent).
type Layout struct {
	Width       float64          `json:"width" bson:"width"`
	Height      float64          `json:"height" bson:"height"`
	Environment grid.Environment `json:"environment" bson:"environment"`
	Sections    []SectionFrames  `json:"sections" bson:"sections"`
}

// FrameCount returns the total number of item frames across all sections.
func (l *Layout) FrameCount() int {
	n := 0
	for _, s := range l.Sections {
		n += len(s.Items)
	}
	return n
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that the document describes at least one section.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if len(l.Sections) == 0 {
		return Layout{}, fmt.Errorf("layout must contain sections")
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
