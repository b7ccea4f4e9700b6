// SPDX-License-Identifier: MPL-2.0

package storefile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/regview/regview/internal/classify"
	"github.com/regview/regview/internal/register"
	"github.com/regview/regview/pkg/cueutil"
	"github.com/regview/regview/pkg/types"

	"github.com/pelletier/go-toml/v2"
)

const (
	// FormatCUE is a .cue snapshot.
	FormatCUE Format = "cue"
	// FormatTOML is a .toml snapshot.
	FormatTOML Format = "toml"

	schemaPath = "#Store"
)

var (
	//go:embed store_schema.cue
	schema []byte

	// ErrUnsupportedFormat is returned for snapshot files that are neither CUE nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")
	// ErrDuplicateKey is the sentinel error wrapped by DuplicateKeyError.
	ErrDuplicateKey = errors.New("duplicate entry key")
)

type (
	// Format is the syntax of a snapshot file.
	Format string

	// DuplicateKeyError is returned when two entries share a key.
	// It wraps ErrDuplicateKey for errors.Is() compatibility.
	DuplicateKeyError struct {
		Key   register.Key
		Index int
	}

	snapshot struct {
		Entries []entry `json:"entries" toml:"entries"`
	}

	entry struct {
		Key      string   `json:"key" toml:"key"`
		Type     string   `json:"type" toml:"type"`
		Text     string   `json:"text,omitempty" toml:"text,omitempty"`
		Number   int64    `json:"number,omitempty" toml:"number,omitempty"`
		Buffer   string   `json:"buffer,omitempty" toml:"buffer,omitempty"`
		Offset   int      `json:"offset,omitempty" toml:"offset,omitempty"`
		Path     string   `json:"path,omitempty" toml:"path,omitempty"`
		Query    string   `json:"query,omitempty" toml:"query,omitempty"`
		Windows  int      `json:"windows,omitempty" toml:"windows,omitempty"`
		Frames   int      `json:"frames,omitempty" toml:"frames,omitempty"`
		Selected string   `json:"selected,omitempty" toml:"selected,omitempty"`
		Keys     []string `json:"keys,omitempty" toml:"keys,omitempty"`
	}
)

// FormatOf returns the format implied by the file extension of path.
func FormatOf(path types.FilesystemPath) (Format, error) {
	switch strings.ToLower(filepath.Ext(path.String())) {
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w (want .cue or .toml)", path, ErrUnsupportedFormat)
	}
}

// Load reads the snapshot at path.
func Load(path types.FilesystemPath) (*register.MemStore, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path.String())
	if err != nil {
		return nil, err
	}
	store, err := Parse(data, format, path.Base())
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded entry snapshot", "path", path.String(), "entries", store.Len())
	return store, nil
}

// Parse decodes a snapshot. name is used in error messages.
func Parse(data []byte, format Format, name string) (*register.MemStore, error) {
	switch format {
	case FormatCUE:
	case FormatTOML:
		var err error
		if data, err = tomlToJSON(data, name); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s: %w %q", name, ErrUnsupportedFormat, format)
	}

	res, err := cueutil.ParseAndDecode[snapshot](schema, data, schemaPath, cueutil.WithFilename(name))
	if err != nil {
		return nil, err
	}
	return build(res.Value.Entries)
}

// tomlToJSON re-encodes a TOML document as JSON, which is valid CUE, so both
// forms are checked by the same schema.
func tomlToJSON(data []byte, name string) ([]byte, error) {
	var doc map[string]any
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %s", name, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if _, ok := doc["entries"]; !ok {
		doc["entries"] = []any{}
	}
	return json.Marshal(doc)
}

func build(entries []entry) (*register.MemStore, error) {
	store := register.NewMemStore()
	for i, e := range entries {
		k, err := register.ParseKey(e.Key)
		if err != nil {
			return nil, fmt.Errorf("entries[%d].key: %w", i, err)
		}
		if _, dup := store.Get(k); dup {
			return nil, &DuplicateKeyError{Key: k, Index: i}
		}
		store.Set(k, e.value())
	}
	return store, nil
}

// value converts a validated entry to its register value.
func (e entry) value() any {
	switch classify.TypeTag(e.Type) {
	case classify.Text:
		return register.Text(e.Text)
	case classify.Number:
		return register.Number(e.Number)
	case classify.Location:
		return register.Location{Buffer: e.Buffer, Offset: e.Offset}
	case classify.BufferRef:
		return register.BufferRef{Name: e.Buffer}
	case classify.FilePath:
		return register.FilePath{Path: types.FilesystemPath(e.Path)}
	case classify.FileQuery:
		return register.FileQuery{Path: types.FilesystemPath(e.Path), Query: e.Query}
	case classify.WindowLayout:
		return register.WindowLayout{Windows: e.Windows, Selected: e.Selected}
	case classify.FrameLayout:
		return register.FrameLayout{Frames: e.Frames, Windows: e.Windows}
	case classify.KeyMacro:
		return register.KeyMacro{Keys: e.Keys}
	default:
		// Unreachable after schema validation.
		return register.Text(e.Text)
	}
}

// Error implements the error interface.
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("entries[%d]: duplicate entry key %q", e.Index, e.Key.String())
}

// Unwrap returns ErrDuplicateKey for errors.Is() compatibility.
func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }
