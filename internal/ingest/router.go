package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MalithGihan/dqa-service/pkg/types"
)

var ErrUnsupported = errors.New("unsupported snapshot format")

func DetectType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".json":
		return "json"
	case ".excalidraw":
		return "excalidraw"
	case ".yaml", ".yml":
		return "yaml"
	case ".drawio", ".xml":
		return "drawio"
	case ".svg":
		return "svg"
	default:
		return "unknown"
	}
}

// Parse decodes a snapshot of the given kind (see DetectType).
func Parse(kind string, b []byte) (types.Scene, error) {
	switch kind {
	case "json":
		return ParseJSON(b)
	case "excalidraw":
		return ParseExcalidraw(b)
	case "yaml":
		return ParseYAML(b)
	case "drawio":
		return ParseDrawIO(b)
	case "svg":
		return ParseSVG(b)
	default:
		return types.Scene{}, fmt.Errorf("%w: %q", ErrUnsupported, kind)
	}
}

// Load reads and decodes the snapshot file at path.
func Load(path string) (types.Scene, error) {
	if strings.TrimSpace(path) == "" {
		return types.Scene{}, errors.New("no snapshot path given")
	}
	kind := DetectType(path)
	if kind == "unknown" {
		return types.Scene{}, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return types.Scene{}, err
	}
	s, err := Parse(kind, b)
	if err != nil {
		return types.Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Merge concatenates the elements of several snapshots into one.
func Merge(scenes ...types.Scene) types.Scene {
	out := types.Scene{Elements: []types.Element{}}
	for _, s := range scenes {
		out.Elements = append(out.Elements, s.Elements...)
	}
	return out
}
