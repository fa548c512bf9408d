package ingest

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/MalithGihan/dqa-service/internal/validate"
	"github.com/MalithGihan/dqa-service/pkg/types"
)

// ParseJSON decodes an {"elements": [...]} document. Every element is kept,
// including ones flagged isDeleted.
func ParseJSON(b []byte) (types.Scene, error) {
	if err := validate.SceneJSON(b); err != nil {
		return types.Scene{}, err
	}
	var s types.Scene
	if err := json.Unmarshal(b, &s); err != nil {
		return types.Scene{}, err
	}
	return s, nil
}

// ParseExcalidraw decodes a saved .excalidraw file. The editor keeps erased
// elements in the file with isDeleted set; those are dropped.
func ParseExcalidraw(b []byte) (types.Scene, error) {
	s, err := ParseJSON(b)
	if err != nil {
		return types.Scene{}, err
	}
	return s.Live(), nil
}

// ParseYAML accepts the same document shape written as YAML.
func ParseYAML(b []byte) (types.Scene, error) {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return types.Scene{}, err
	}
	if doc == nil {
		return types.Scene{Elements: []types.Element{}}, nil
	}
	j, err := json.Marshal(doc)
	if err != nil {
		return types.Scene{}, err
	}
	return ParseJSON(j)
}
