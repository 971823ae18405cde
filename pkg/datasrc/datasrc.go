// Package datasrc loads a game backend's configuration data: a directory
// tree of JSON and YAML files, merged into one document and validated
// against a JSON Schema.
package datasrc

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/flier/goutil/pkg/datasrc/loaderr"
	"github.com/flier/goutil/pkg/fsutil"
	"github.com/flier/goutil/pkg/res"
)

// maxFileSize caps any single config file Load will decode; a data file
// larger than this is almost certainly corrupt, not legitimate config.
const maxFileSize = 16 << 20 // 16 MiB

// Document is the merged result of every data file found under a Load
// root, keyed by the same top-level keys the source files used.
type Document struct {
	Values map[string]any
}

// Load walks root, decodes every *.json/*.yaml/*.yml file it finds, merges
// them (later files, in lexical path order, win on conflicting scalar
// keys; maps merge recursively), and — if schema is non-empty — validates
// the merged result against it.
//
// Load has no live reload, no remote sources, and no write-back.
func Load(root string, schema []byte) (*Document, error) {
	paths, err := collect(root)
	if err != nil {
		return nil, err
	}

	merged := map[string]any{}
	for _, path := range paths {
		doc, err := decodeFile(path)
		if err != nil {
			return nil, err
		}
		merge(merged, doc)
	}

	if len(schema) > 0 {
		if err := validate(merged, schema); err != nil {
			return nil, err
		}
	}

	return &Document{Values: merged}, nil
}

// Try is [Load] wrapped as a [res.Result], for callers that prefer
// Result-style chaining over the plain (T, error) form.
func Try(root string, schema []byte) res.Result[*Document] {
	return res.Wrap(Load(root, schema))
}

func collect(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return loaderr.New(path, loaderr.OpWalk, err)
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json", ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	return paths, nil
}

func decodeFile(path string) (map[string]any, error) {
	in, err := fsutil.ReadCapped(path, maxFileSize)
	if err != nil {
		return nil, err
	}

	b := in.AsSliceLessSafe()
	doc := map[string]any{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, loaderr.New(path, loaderr.OpDecode, err)
		}
	default: // .yaml, .yml
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, loaderr.New(path, loaderr.OpDecode, err)
		}
	}

	return doc, nil
}

// merge folds src into dst in place: maps merge recursively, anything
// else (scalars, slices) is overwritten by src.
func merge(dst, src map[string]any) {
	for k, v := range src {
		existing, ok := dst[k]
		if !ok {
			dst[k] = v
			continue
		}

		existingMap, existingIsMap := existing.(map[string]any)
		vMap, vIsMap := asStringMap(v)
		if existingIsMap && vIsMap {
			merge(existingMap, vMap)
			continue
		}

		dst[k] = v
	}
}

// asStringMap normalizes the map shapes both encoding/json (map[string]any)
// and yaml.v3 (also map[string]any, when the target is map[string]any) can
// produce during a recursive decode.
func asStringMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func validate(doc map[string]any, schema []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("datasrc.schema.json", bytes.NewReader(schema)); err != nil {
		return loaderr.New("", loaderr.OpValidate, err)
	}

	compiled, err := compiler.Compile("datasrc.schema.json")
	if err != nil {
		return loaderr.New("", loaderr.OpValidate, err)
	}

	// Round-trip through encoding/json so YAML-decoded values take the
	// canonical shapes the validator expects.
	b, err := json.Marshal(doc)
	if err != nil {
		return loaderr.New("", loaderr.OpValidate, err)
	}

	var canonical any
	if err := json.Unmarshal(b, &canonical); err != nil {
		return loaderr.New("", loaderr.OpValidate, err)
	}

	if err := compiled.Validate(canonical); err != nil {
		return loaderr.New("", loaderr.OpValidate, err)
	}

	return nil
}
