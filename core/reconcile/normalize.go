package reconcile

import "strings"

// colorMarker is the optional prefix manifests may put in front of hex colors.
const colorMarker = "#"

// Normalize returns a copy of labels with one leading '#' stripped from each color.
// The input slice is not modified.
func Normalize(labels []Label) []Label {
	out := make([]Label, len(labels))
	for i, l := range labels {
		l.Color = strings.TrimPrefix(l.Color, colorMarker)
		out[i] = l
	}
	return out
}
