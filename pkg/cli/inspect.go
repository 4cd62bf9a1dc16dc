package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/scorm-inspect/pkg/cli/config"
	"github.com/m-mizutani/scorm-inspect/pkg/controller/console"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/model"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/types"
	"github.com/m-mizutani/scorm-inspect/pkg/infra/gcs"
	"github.com/m-mizutani/scorm-inspect/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const usageText = `Usage: scorm-inspect [options] <path-to-scorm.zip | gs://bucket/object>

Examples:
  scorm-inspect assets/data/scorm.zip
  scorm-inspect assets/data/pri.zip
  scorm-inspect gs://courses/pri.zip

Run "scorm-inspect --help" for all options.
`

var errMissingPackage = goerr.New("package path is required")

// inspectAction examines one package. Inspection failures are reported to the
// user and do not fail the command; only a missing argument does.
func inspectAction(ctx context.Context, c *cli.Command, w io.Writer, inspectCfg *config.Inspect, storageCfg *config.Storage) error {
	logger := ctxlog.From(ctx)

	if c.NArg() == 0 {
		_, _ = fmt.Fprint(w, usageText)
		return errMissingPackage
	}
	source := c.Args().First()

	if err := config.LoadFile(inspectCfg.ConfigFile, inspectCfg, storageCfg); err != nil {
		return err
	}

	printer := console.NewPrinter(w, console.WithNoColor(inspectCfg.NoColor))
	printer.Start(source)

	opts := []usecase.Option{
		usecase.WithScratchBase(inspectCfg.ScratchDir),
		usecase.WithManifestName(inspectCfg.ManifestName),
		usecase.WithLaunchExtensions(inspectCfg.LaunchExtensions...),
		usecase.WithKeepScratch(inspectCfg.KeepScratch),
	}

	if src, err := model.ParsePackageSource(source); err == nil && src.IsRemote() {
		var gcsOpts []gcs.Option
		if storageCfg.Project != "" {
			gcsOpts = append(gcsOpts, gcs.WithQuotaProject(storageCfg.Project))
		}
		if storageCfg.Endpoint != "" {
			gcsOpts = append(gcsOpts, gcs.WithEndpoint(storageCfg.Endpoint))
		}

		client, err := gcs.NewClient(ctx, gcsOpts...)
		if err != nil {
			logger.Error("Failed to set up Cloud Storage", slog.Any("error", err))
			printer.Failure(err)
			return nil
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.Warn("Failed to close Cloud Storage client", slog.Any("error", err))
			}
		}()
		opts = append(opts, usecase.WithStorage(client))
	}

	report, err := usecase.NewInspector(opts...).Inspect(ctx, source)
	if err != nil {
		if errors.Is(err, types.ErrPackageNotFound) {
			logger.Debug("Package not found", slog.String("source", source), slog.Any("error", err))
			printer.NotFound(source)
			return nil
		}

		logger.Error("Failed to examine SCORM package", slog.String("source", source), slog.Any("error", err))
		printer.Failure(err)
		return nil
	}

	printer.Report(report)
	return nil
}
