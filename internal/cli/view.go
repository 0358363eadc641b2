package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hapi-suta/runbookforge-sub002/internal/loader"
	"github.com/hapi-suta/runbookforge-sub002/internal/viewer"
)

// ViewOptions holds flags for the view command.
type ViewOptions struct {
	*RootOptions
	Slide int
	Full  bool
}

// NewViewCommand creates the view command.
func NewViewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ViewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "view <deck>",
		Short: "Present a deck in the terminal",
		Long: `Present a deck in the terminal.

Keys:
  ←/h, →/l/space  previous / next slide
  home, end       first / last slide
  f               toggle fullscreen
  g               slide overview (↑/↓, enter)
  n               toggle speaker notes
  esc             leave fullscreen, otherwise quit
  q, ctrl+c       quit`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Slide, "slide", 1, "slide to open on (1-based)")
	cmd.Flags().BoolVar(&opts.Full, "fullscreen", false, "start in fullscreen")

	return cmd
}

func runView(opts *ViewOptions, path string, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	f := opts.formatter(cmd)

	_, d, err := loadDeck(opts.RootOptions, f, path)
	if err != nil {
		return err
	}

	v := viewer.New(d,
		viewer.WithStart(opts.Slide-1),
		viewer.WithCloseHandler(func() {}),
	)
	progOpts := []tea.ProgramOption{
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithContext(cmd.Context()),
	}
	if opts.Full {
		v.ToggleFullscreen()
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(viewer.NewModel(v), progOpts...).Run(); err != nil {
		return f.Fail(ExitCommandError, loader.ErrCodeGeneric, "viewer failed: "+err.Error(), nil)
	}
	return nil
}
