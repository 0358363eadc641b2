package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
)

// Load reads and decodes the document at path.
func Load(path string) (*deck.Document, error) {
	src, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(src)
}

// Decode turns a source into a document. Every format is first reduced
// to JSON so all three decode through the same lenient path.
func Decode(src Source) (*deck.Document, error) {
	data, err := toJSON(src)
	if err != nil {
		return nil, err
	}
	if t := bytes.TrimSpace(data); len(t) == 0 || t[0] != '{' {
		return nil, &LoadError{Code: ErrCodeStructure, File: src.Name, Message: "document must be an object"}
	}

	doc, err := deck.Parse(data)
	if err != nil {
		var decodeErr *deck.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, &LoadError{Code: ErrCodeStructure, File: src.Name, Message: decodeErr.Error()}
		}
		return nil, syntaxError(src, data, err)
	}
	return doc, nil
}

func toJSON(src Source) ([]byte, error) {
	switch src.Format {
	case FormatJSON:
		if !json.Valid(src.Data) {
			var v any
			return nil, syntaxError(src, src.Data, json.Unmarshal(src.Data, &v))
		}
		return src.Data, nil
	case FormatYAML:
		return yamlToJSON(src)
	case FormatCUE:
		return cueToJSON(src)
	default:
		return nil, &LoadError{Code: ErrCodeUnsupported, File: src.Name, Message: fmt.Sprintf("unsupported format %q", src.Format)}
	}
}

func syntaxError(src Source, data []byte, err error) *LoadError {
	le := &LoadError{Code: ErrCodeSyntax, File: src.Name, Message: err.Error()}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		le.Line, le.Column = lineColumn(data, int(se.Offset))
	}
	return le
}

// lineColumn converts a byte offset into a 1-based line and column.
func lineColumn(data []byte, offset int) (line, col int) {
	offset = min(max(offset, 0), len(data))
	line = 1 + bytes.Count(data[:offset], []byte("\n"))
	col = offset - bytes.LastIndexByte(data[:offset], '\n')
	return line, col
}

func yamlToJSON(src Source) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src.Data, &root); err != nil {
		return nil, &LoadError{Code: ErrCodeSyntax, File: src.Name, Message: err.Error()}
	}
	v, err := yamlValue(src, &root)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, File: src.Name, Message: err.Error()}
	}
	return data, nil
}

// yamlValue converts a node tree into values encoding/json can marshal.
// Mapping keys become strings whatever their tag.
func yamlValue(src Source, n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(src, n.Content[0])
	case yaml.AliasNode:
		return yamlValue(src, n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := yamlValue(src, n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(src, c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, &LoadError{Code: ErrCodeSyntax, File: src.Name, Line: n.Line, Column: n.Column, Message: err.Error()}
		}
		if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
			return n.Value, nil
		}
		return v, nil
	default:
		return nil, nil
	}
}

func cueToJSON(src Source) ([]byte, error) {
	v := cuecontext.New().CompileBytes(src.Data, cue.Filename(src.Name))
	if err := v.Err(); err != nil {
		return nil, cueLoadError(src, ErrCodeSyntax, err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(src, ErrCodeBuildFailed, err)
	}
	data, err := v.MarshalJSON()
	if err != nil {
		return nil, cueLoadError(src, ErrCodeBuildFailed, err)
	}
	return data, nil
}

func cueLoadError(src Source, code string, err error) *LoadError {
	le := &LoadError{Code: code, File: src.Name, Message: cueerrors.Details(err, nil)}
	if errs := cueerrors.Errors(err); len(errs) > 0 {
		format, args := errs[0].Msg()
		le.Message = fmt.Sprintf(format, args...)
		if pos := errs[0].Position(); pos.IsValid() {
			le.Line, le.Column = pos.Line(), pos.Column()
		}
	}
	return le
}
