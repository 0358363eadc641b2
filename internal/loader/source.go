package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format is the syntax a source is written in.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// Source is the raw text of a document and where it came from.
type Source struct {
	Name   string
	Format Format
	Data   []byte
}

// FormatOf picks the format from a file extension.
func FormatOf(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".cue":
		return FormatCUE, true
	default:
		return "", false
	}
}

// IsDocument reports whether name has an extension Load understands.
func IsDocument(name string) bool {
	_, ok := FormatOf(name)
	return ok
}

// ReadFile reads a source from disk.
func ReadFile(path string) (Source, error) {
	format, ok := FormatOf(path)
	if !ok {
		return Source{}, &LoadError{
			Code:    ErrCodeUnsupported,
			File:    path,
			Message: fmt.Sprintf("unsupported extension %q (want .json, .yaml, .yml or .cue)", filepath.Ext(path)),
		}
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Source{}, &LoadError{Code: ErrCodeNotFound, File: path, Message: "file not found"}
	}
	if err != nil {
		return Source{}, &LoadError{Code: ErrCodeReadFailed, File: path, Message: err.Error()}
	}
	return Source{Name: path, Format: format, Data: data}, nil
}
