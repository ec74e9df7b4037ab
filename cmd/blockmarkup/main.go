package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	bm "github.com/pthm/blockmarkup"
	"github.com/pthm/blockmarkup/lib/document"
	"github.com/pthm/blockmarkup/lib/minify"
)

const version = "0.1.0"

var errNoDocument = errors.New("path to a document is required")

// env is shared by all commands once flags are parsed.
type env struct {
	log    *zap.Logger
	stdout io.Writer
}

func (e *env) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if cmd.Bool("debug") {
		cfg = zap.NewDevelopmentConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	e.log = log
	e.log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", version))
	return ctx, nil
}

func (e *env) after(_ context.Context, _ *cli.Command) error {
	if e.log == nil {
		return nil
	}
	e.log.Debug("Program ended")
	// stderr cannot always be synced, nothing useful to report then
	_ = e.log.Sync()
	return nil
}

func (e *env) exitErrHandler(_ context.Context, _ *cli.Command, err error) {
	if e.log != nil {
		e.log.Error("Program ended with error", zap.Error(err))
	}
}

func (e *env) load(cmd *cli.Command) (*document.Document, error) {
	if cmd.NArg() == 0 {
		return nil, errNoDocument
	}
	path := cmd.Args().First()
	doc, err := document.LoadFile(path)
	if err != nil {
		return nil, err
	}
	e.log.Debug("Document loaded", zap.String("path", path), zap.Int("blocks", len(doc.Blocks)))
	return doc, nil
}

func (e *env) render(_ context.Context, cmd *cli.Command) (err error) {
	doc, err := e.load(cmd)
	if err != nil {
		return err
	}

	var p bm.Processor
	if cmd.Bool("minify") {
		p = minify.Default()
	}
	out, err := doc.Render(p, e.log)
	if err != nil {
		return err
	}

	w := e.stdout
	if dst := cmd.String("out"); dst != "" {
		var f *os.File
		if f, err = os.Create(dst); err != nil {
			return fmt.Errorf("unable to create output: %w", err)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		w = f
		e.log.Info("Writing output", zap.String("path", dst))
	}

	if _, err = io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

func (e *env) validate(_ context.Context, cmd *cli.Command) error {
	doc, err := e.load(cmd)
	if err != nil {
		return err
	}
	if _, err := doc.Build(); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s: ok (%d blocks)\n", cmd.Args().First(), len(doc.Blocks))
	return nil
}

func newApp(e *env) *cli.Command {
	return &cli.Command{
		Name:            "blockmarkup",
		Usage:           "renders YAML content documents as block editor markup",
		Version:         version,
		HideHelpCommand: true,
		Before:          e.before,
		After:           e.after,
		ExitErrHandler:  e.exitErrHandler,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "verbose development logging"},
		},
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "Renders a document to block markup",
				ArgsUsage: "DOCUMENT",
				Action:    e.render,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "minify", Aliases: []string{"m"}, Usage: "minify the markup, keeping block comments"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write markup to `FILE` instead of STDOUT"},
				},
			},
			{
				Name:      "validate",
				Usage:     "Checks that a document loads and builds",
				ArgsUsage: "DOCUMENT",
				Action:    e.validate,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newApp(&env{stdout: os.Stdout}).Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
