// SPDX-License-Identifier: MPL-2.0

package register

import (
	"fmt"
	"strings"
)

// Describe returns a one-line, human-readable description of a stored value.
// Multi-line text is flattened so each entry occupies exactly one preview line.
func Describe(v any) string {
	switch val := v.(type) {
	case Text:
		return "text: " + oneLine(string(val))
	case string:
		return "text: " + oneLine(val)
	case []byte:
		return "text: " + oneLine(string(val))
	case Number:
		return fmt.Sprintf("number: %d", int64(val))
	case Location:
		return fmt.Sprintf("position %d in buffer %s", val.Offset, val.Buffer)
	case BufferRef:
		return "buffer " + val.Name
	case FilePath:
		return "file " + val.Path.String()
	case FileQuery:
		return fmt.Sprintf("file-query %s: %s", val.Path, oneLine(val.Query))
	case WindowLayout:
		return fmt.Sprintf("window layout: %d window(s), selected %s", val.Windows, val.Selected)
	case FrameLayout:
		return fmt.Sprintf("frame layout: %d frame(s), %d window(s)", val.Frames, val.Windows)
	case KeyMacro:
		return "keyboard macro: " + strings.Join(val.Keys, " ")
	case nil:
		return "empty"
	default:
		return oneLine(fmt.Sprintf("%v", val))
	}
}

// oneLine collapses newlines and tabs into single spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
