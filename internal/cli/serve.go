package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hapi-suta/runbookforge-sub002/internal/httpapi"
	"github.com/hapi-suta/runbookforge-sub002/internal/journal"
	"github.com/hapi-suta/runbookforge-sub002/internal/loader"
)

const shutdownTimeout = 10 * time.Second

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Host string
	Port int
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve [deck]",
		Short: "Serve the export API and an HTML viewer",
		Long: `Serve the export API over HTTP.

  POST /api/v1/presentations/export   deck JSON in, .pptx out
  POST /api/v1/presentations/compile  deck JSON in, slide summary out
  GET  /health, /metrics

With a deck argument, GET /deck shows it in the browser and
GET /deck.pptx downloads it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runServe(opts, path, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Host, "host", "", "listen host (overrides server.host)")
	cmd.Flags().IntVar(&opts.Port, "port", 0, "listen port (overrides server.port)")

	return cmd
}

func runServe(opts *ServeOptions, path string, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	f := opts.formatter(cmd)
	cfg := opts.Config

	srvCfg := &httpapi.Config{Host: cfg.Server.Host, Port: cfg.Server.Port, Layout: cfg.Layout.Options()}
	if opts.Host != "" {
		srvCfg.Host = opts.Host
	}
	if opts.Port != 0 {
		srvCfg.Port = opts.Port
	}

	var srvOpts []httpapi.Option
	if path != "" {
		doc, err := loader.Load(path)
		if err != nil {
			return loadFailure(f, err)
		}
		srvOpts = append(srvOpts, httpapi.WithDeck(doc, path))
	}
	if cfg.Journal.Enabled() {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return f.Fail(ExitCommandError, loader.ErrCodeGeneric, "failed to open journal: "+err.Error(), nil)
		}
		defer j.Close()
		srvOpts = append(srvOpts, httpapi.WithJournal(j))
	}

	srv, err := httpapi.NewServer(opts.Logger, srvCfg, srvOpts...)
	if err != nil {
		return f.Fail(ExitCommandError, loader.ErrCodeGeneric, err.Error(), nil)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		opts.Logger.Error("server stopped", zap.Error(err))
		return WrapExitError(ExitCommandError, "server failed", err)
	}
	return nil
}
