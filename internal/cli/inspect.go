package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
	"github.com/hapi-suta/runbookforge-sub002/internal/loader"
	"github.com/hapi-suta/runbookforge-sub002/internal/pptx"
)

// InspectedSlide is one physical slide as listed by inspect.
type InspectedSlide struct {
	Number int    `json:"number"`
	Kind   string `json:"kind,omitempty"`
	Title  string `json:"title,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// InspectResult lists the physical slides of a deck or package.
type InspectResult struct {
	Source      string           `json:"source"`
	Title       string           `json:"title"`
	Fingerprint string           `json:"fingerprint,omitempty"`
	Slides      []InspectedSlide `json:"slides"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <deck|file.pptx>",
		Short: "List the physical slides of a deck or a produced package",
		Long: `List every physical slide with its kind, title and speaker notes.

Given a deck, the listing comes from the compiled slides, continuation
pages included. Given a .pptx file, it is read back from the package.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runInspect(opts *RootOptions, path string, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	f := opts.formatter(cmd)

	var result *InspectResult
	if strings.EqualFold(filepath.Ext(path), ".pptx") {
		sum, err := pptx.Open(path)
		if err != nil {
			return f.Fail(ExitCommandError, loader.ErrCodeReadFailed, err.Error(), nil)
		}
		result = fromPackage(path, sum)
	} else {
		_, d, err := loadDeck(opts, f, path)
		if err != nil {
			return err
		}
		result = fromDeck(path, d)
	}

	if f.json() {
		return f.Success(result)
	}
	f.Printf("%s: %q, %d slide(s)\n\n", result.Source, result.Title, len(result.Slides))
	for _, s := range result.Slides {
		kind := s.Kind
		if kind == "" {
			kind = "-"
		}
		f.Printf("%3d  %-13s %s\n", s.Number, kind, s.Title)
		if s.Notes != "" && opts.Verbose {
			for _, line := range strings.Split(s.Notes, "\n") {
				f.Printf("     notes: %s\n", line)
			}
		}
	}
	return nil
}

func fromDeck(path string, d *layout.Deck) *InspectResult {
	out := &InspectResult{Source: path, Title: d.Title, Fingerprint: d.Fingerprint, Slides: make([]InspectedSlide, 0, d.Len())}
	for _, rs := range d.Slides {
		out.Slides = append(out.Slides, InspectedSlide{
			Number: rs.Index + 1,
			Kind:   string(rs.Kind),
			Title:  rs.Title,
			Notes:  rs.Notes,
		})
	}
	return out
}

// fromPackage reads slide titles back from the shapes named after the
// title role.
func fromPackage(path string, sum *pptx.Summary) *InspectResult {
	out := &InspectResult{Source: path, Title: sum.Title, Fingerprint: sum.Identifier, Slides: make([]InspectedSlide, 0, len(sum.Slides))}
	for _, s := range sum.Slides {
		is := InspectedSlide{Number: s.Number, Notes: s.Notes}
		for _, sh := range s.Shapes {
			if strings.HasPrefix(sh.Name, string(layout.RoleTitle)+" ") {
				is.Title = sh.Text
				break
			}
		}
		out.Slides = append(out.Slides, is)
	}
	return out
}
