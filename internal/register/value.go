// SPDX-License-Identifier: MPL-2.0

package register

import "github.com/regview/regview/pkg/types"

type (
	// Text is a stored string.
	Text string

	// Number is a stored integer counter.
	Number int64

	// Location marks a position inside a buffer.
	Location struct {
		Buffer string
		Offset int
	}

	// BufferRef refers to a buffer by name.
	BufferRef struct {
		Name string
	}

	// FilePath refers to a file to visit.
	FilePath struct {
		Path types.FilesystemPath
	}

	// FileQuery refers to a file together with a query to run once it is visited.
	FileQuery struct {
		Path  types.FilesystemPath
		Query string
	}

	// WindowLayout is a snapshot of the window arrangement of one frame.
	WindowLayout struct {
		Windows  int
		Selected string
	}

	// FrameLayout is a snapshot of all frames and their windows.
	FrameLayout struct {
		Frames  int
		Windows int
	}

	// KeyMacro is a recorded sequence of key names.
	KeyMacro struct {
		Keys []string
	}

	// Entry is a key together with the value it currently holds.
	Entry struct {
		Key   Key
		Value any
	}
)
