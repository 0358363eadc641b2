package loader

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cuejson "cuelang.org/go/encoding/json"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/palette"
)

//go:embed deck.cue
var schemaSource []byte

// Diagnostic is one problem Validate found. Line and Column are 1-based
// and zero when unknown.
type Diagnostic struct {
	Code    string `json:"code"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

func (d Diagnostic) Error() string {
	loc := d.File
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
	}
	if d.Path != "" {
		return fmt.Sprintf("%s: [%s] %s: %s", loc, d.Code, d.Path, d.Message)
	}
	return fmt.Sprintf("%s: [%s] %s", loc, d.Code, d.Message)
}

// Validate checks a source against the #Deck schema and reports layouts,
// severities and colors that would silently fall back at render time. A
// source that does not parse is a *LoadError, not a diagnostic.
func Validate(src Source) ([]Diagnostic, error) {
	ctx := cuecontext.New()

	v, err := build(ctx, src)
	if err != nil {
		return nil, err
	}

	schema := ctx.CompileBytes(schemaSource, cue.Filename("deck.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Deck"))

	var diags []Diagnostic
	if err := def.Unify(v).Validate(cue.Concrete(true), cue.All()); err != nil {
		for _, e := range cueerrors.Errors(err) {
			diags = append(diags, schemaDiagnostic(src, e))
		}
	}
	diags = append(diags, semantic(src, v)...)

	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.Code < b.Code
	})
	return diags, nil
}

// build parses the source into a CUE value, keeping source positions.
func build(ctx *cue.Context, src Source) (cue.Value, error) {
	var v cue.Value
	switch src.Format {
	case FormatJSON:
		expr, err := cuejson.Extract(src.Name, src.Data)
		if err != nil {
			return cue.Value{}, cueLoadError(src, ErrCodeSyntax, err)
		}
		v = ctx.BuildExpr(expr)
	case FormatYAML:
		f, err := cueyaml.Extract(src.Name, src.Data)
		if err != nil {
			return cue.Value{}, cueLoadError(src, ErrCodeSyntax, err)
		}
		v = ctx.BuildFile(f)
	case FormatCUE:
		v = ctx.CompileBytes(src.Data, cue.Filename(src.Name))
	default:
		return cue.Value{}, &LoadError{Code: ErrCodeUnsupported, File: src.Name, Message: fmt.Sprintf("unsupported format %q", src.Format)}
	}
	if err := v.Err(); err != nil {
		return cue.Value{}, cueLoadError(src, ErrCodeSyntax, err)
	}
	return v, nil
}

func schemaDiagnostic(src Source, e cueerrors.Error) Diagnostic {
	format, args := e.Msg()
	d := Diagnostic{
		Code:    ErrCodeSchema,
		Path:    strings.Join(e.Path(), "."),
		Message: fmt.Sprintf(format, args...),
		File:    src.Name,
	}
	// Conflicts carry positions in both the schema and the document; the
	// document's is the useful one.
	for _, pos := range cueerrors.Positions(e) {
		if pos.Filename() == src.Name {
			d.Line, d.Column = pos.Line(), pos.Column()
			break
		}
	}
	return d
}

// threeColumnMax is the number of columns a three-column slide renders.
const threeColumnMax = 3

func toneNames() string {
	names := make([]string, len(palette.Tokens))
	for i, t := range palette.Tokens {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// semantic walks the slides for values the schema accepts but rendering
// would ignore.
func semantic(src Source, v cue.Value) []Diagnostic {
	slides := v.LookupPath(cue.ParsePath("slides"))
	if slides.IncompleteKind() != cue.ListKind {
		return nil
	}
	it, err := slides.List()
	if err != nil {
		return nil
	}

	var diags []Diagnostic
	at := func(code, path, msg string, pos token.Pos) {
		d := Diagnostic{Code: code, Path: path, Message: msg, File: src.Name}
		if pos.IsValid() {
			d.Line, d.Column = pos.Line(), pos.Column()
		}
		diags = append(diags, d)
	}

	for i := 0; it.Next(); i++ {
		s := it.Value()
		prefix := fmt.Sprintf("slides.%d", i)

		var kind deck.Kind
		if l := s.LookupPath(cue.ParsePath("layout")); l.Exists() {
			if name, err := l.String(); err == nil && name != "" {
				k, ok := deck.ParseKind(name)
				if !ok {
					at(ErrCodeUnknownLayout, prefix+".layout",
						fmt.Sprintf("unknown layout %q renders as content", name), l.Pos())
				}
				kind = k
			}
		}

		for _, field := range []string{"items", "leftColumn.items", "rightColumn.items"} {
			forEach(s.LookupPath(cue.ParsePath(field)), func(j int, item cue.Value) {
				t := item.LookupPath(cue.ParsePath("type"))
				name, err := t.String()
				if err != nil || name == "" || deck.ParseSeverity(name) != deck.SeverityNone {
					return
				}
				at(ErrCodeUnknownSeverity, fmt.Sprintf("%s.%s.%d.type", prefix, field, j),
					fmt.Sprintf("unknown severity %q renders untyped", name), t.Pos())
			})
		}

		var columns int
		var hidden cue.Value
		forEach(s.LookupPath(cue.ParsePath("columns")), func(j int, col cue.Value) {
			columns++
			if j == threeColumnMax {
				hidden = col
			}

			c := col.LookupPath(cue.ParsePath("color"))
			name, err := c.String()
			if err != nil || name == "" {
				return
			}
			if _, ok := palette.Default().Named(name); !ok {
				at(ErrCodeUnknownColor, fmt.Sprintf("%s.columns.%d.color", prefix, j),
					fmt.Sprintf("unknown color %q uses the default column color; use one of %s or a severity", name, toneNames()), c.Pos())
			}
		})
		if kind == deck.KindThreeColumn && columns > threeColumnMax {
			at(ErrCodeHiddenColumns, fmt.Sprintf("%s.columns.%d", prefix, threeColumnMax),
				fmt.Sprintf("%d columns given, only the first %d are rendered", columns, threeColumnMax), hidden.Pos())
		}
	}
	return diags
}

func forEach(list cue.Value, fn func(int, cue.Value)) {
	if !list.Exists() || list.IncompleteKind() != cue.ListKind {
		return
	}
	it, err := list.List()
	if err != nil {
		return
	}
	for i := 0; it.Next(); i++ {
		fn(i, it.Value())
	}
}
