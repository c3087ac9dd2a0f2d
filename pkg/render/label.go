package render

import (
	"fmt"
	"strings"
)

// Attr is a single displayable key/value pair attached to a node or edge.
type Attr struct {
	Key   string
	Value any
}

// LabelText builds the text drawn for a node or edge.
//
// The name is included when showName is set. When showAttrs is set every
// attribute is appended, in order, as ", key: value". A hidden name with
// visible attributes therefore starts with ", ".
func LabelText(name string, attrs []Attr, showName, showAttrs bool) string {
	var sb strings.Builder
	if showName {
		sb.WriteString(name)
	}
	if showAttrs {
		for _, a := range attrs {
			fmt.Fprintf(&sb, ", %s: %v", a.Key, a.Value)
		}
	}
	return sb.String()
}
