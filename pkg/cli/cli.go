package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/scorm-inspect/pkg/cli/config"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		loggerCfg  = config.Logger{Output: stderr}
		inspectCfg config.Inspect
		storageCfg config.Storage
		logger     *slog.Logger
	)

	flags := append(loggerCfg.Flags(), inspectCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)

	app := &cli.Command{
		Name:      "scorm-inspect",
		Usage:     "Unpack a SCORM package and report its contents, manifest and launch files",
		ArgsUsage: "<path-to-scorm.zip | gs://bucket/object>",
		Version:   types.Version,
		Flags:     flags,
		Writer:    stdout,
		ErrWriter: stderr,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return inspectAction(ctx, c, stdout, &inspectCfg, &storageCfg)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
