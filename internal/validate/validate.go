package validate

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/MalithGihan/dqa-service/pkg/types"
)

//go:embed schema/*.json
var schemaFS embed.FS

var (
	once    sync.Once
	scene   *jsonschema.Schema
	report  *jsonschema.Schema
	loadErr error
)

func compile(name string) (*jsonschema.Schema, error) {
	b, err := schemaFS.ReadFile("schema/" + name)
	if err != nil {
		return nil, err
	}
	url := "mem://dqa/" + name
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return c.Compile(url)
}

func load() {
	if scene, loadErr = compile("scene.schema.json"); loadErr != nil {
		return
	}
	report, loadErr = compile("report.schema.json")
}

// SceneJSON checks the outer shape of a raw scene document. Attribute types
// are left to the element decoder so its errors can name the element.
func SceneJSON(b []byte) error {
	once.Do(load)
	if loadErr != nil {
		return loadErr
	}
	v, err := decode(b)
	if err != nil {
		return fmt.Errorf("scene is not valid JSON: %w", err)
	}
	return scene.Validate(v)
}

// Report checks a produced report against the output contract.
func Report(r types.Report) error {
	once.Do(load)
	if loadErr != nil {
		return loadErr
	}
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	v, err := decode(b)
	if err != nil {
		return err
	}
	return report.Validate(v)
}

// decode produces the generic value the schema validator walks. Numbers stay
// json.Number so integer constraints see the literal.
func decode(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}
