package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/interfaces"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/model"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/types"
)

const (
	// DefaultManifestName is the SCORM descriptor file name
	DefaultManifestName = "imsmanifest.xml"

	scratchPrefix  = "scorm-inspect-"
	contentDirName = "content"
)

// DefaultLaunchExtensions lists the extensions treated as launch files
var DefaultLaunchExtensions = []string{".html"}

type inspector struct {
	storage      interfaces.ObjectStorage
	scratchBase  string
	manifestName string
	launchExts   map[string]struct{}
	keepScratch  bool
}

// Option is a functional option for the inspector
type Option func(*inspector)

// WithStorage sets the object storage used for gs:// sources
func WithStorage(storage interfaces.ObjectStorage) Option {
	return func(uc *inspector) {
		uc.storage = storage
	}
}

// WithScratchBase sets the directory in which scratch directories are created
func WithScratchBase(dir string) Option {
	return func(uc *inspector) {
		uc.scratchBase = dir
	}
}

// WithManifestName overrides the manifest file name to look for
func WithManifestName(name string) Option {
	return func(uc *inspector) {
		if name != "" {
			uc.manifestName = name
		}
	}
}

// WithLaunchExtensions replaces the set of launch file extensions. A leading
// dot is added when missing; matching is case-insensitive.
func WithLaunchExtensions(exts ...string) Option {
	return func(uc *inspector) {
		if len(exts) == 0 {
			return
		}
		uc.launchExts = extensionSet(exts)
	}
}

// WithKeepScratch leaves the scratch directory on disk after inspection
func WithKeepScratch(keep bool) Option {
	return func(uc *inspector) {
		uc.keepScratch = keep
	}
}

// NewInspector creates a new InspectUseCase instance
func NewInspector(opts ...Option) interfaces.InspectUseCase {
	uc := &inspector{
		manifestName: DefaultManifestName,
		launchExts:   extensionSet(DefaultLaunchExtensions),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Inspect unpacks and examines the package at raw
func (uc *inspector) Inspect(ctx context.Context, raw string) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	src, err := model.ParsePackageSource(raw)
	if err != nil {
		return nil, err
	}

	if err := uc.checkSource(ctx, src); err != nil {
		return nil, err
	}

	scratchDir, err := uc.createScratchDir(ctx)
	if err != nil {
		return nil, err
	}
	defer uc.removeScratchDir(ctx, scratchDir)

	archivePath := src.Path
	if src.IsRemote() {
		archivePath, err = uc.download(ctx, src, scratchDir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to download package", goerr.V("source", raw))
		}
	}

	contentDir := filepath.Join(scratchDir, contentDirName)
	extracted, err := extractArchive(ctx, archivePath, contentDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to extract package",
			goerr.V("source", raw),
			goerr.V("scratch_dir", scratchDir),
		)
	}

	logger.Info("Extracted package",
		"source", raw,
		"file_count", len(extracted.Files),
		"total_size_bytes", extracted.Size,
	)

	listing, err := walkTree(contentDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list package contents", goerr.V("source", raw))
	}

	report := &model.Report{
		Source:    raw,
		Extracted: extracted,
		Listing:   listing,
	}

	if entry := findManifest(listing, uc.manifestName); entry != nil {
		report.ManifestPath = entry.Path

		data, err := os.ReadFile(filepath.Join(contentDir, filepath.FromSlash(entry.Path)))
		if err != nil {
			logger.Warn("Failed to read manifest", "path", entry.Path, "error", err)
			report.ManifestError = err.Error()
		} else {
			report.Manifest = parseManifest(ctx, data)
		}
	}

	report.HTMLFiles = findLaunchFiles(listing, uc.launchExts)

	logger.Debug("Inspection finished",
		"source", raw,
		"entries", len(listing),
		"manifest", report.ManifestPath,
		"launch_files", len(report.HTMLFiles),
	)

	return report, nil
}

// checkSource fails with ErrPackageNotFound when the package does not exist
func (uc *inspector) checkSource(ctx context.Context, src *model.PackageSource) error {
	if src.IsRemote() {
		if uc.storage == nil {
			return goerr.New("object storage is not configured", goerr.V("source", src.Raw))
		}

		exists, err := uc.storage.Exists(ctx, src.Bucket, src.Object)
		if err != nil {
			return goerr.Wrap(err, "failed to look up package object", goerr.V("source", src.Raw))
		}
		if !exists {
			return goerr.Wrap(types.ErrPackageNotFound, "object does not exist", goerr.V("source", src.Raw))
		}
		return nil
	}

	info, err := os.Stat(src.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return goerr.Wrap(types.ErrPackageNotFound, "file does not exist", goerr.V("path", src.Path))
		}
		return goerr.Wrap(err, "failed to access package", goerr.V("path", src.Path))
	}
	if info.IsDir() {
		return goerr.Wrap(types.ErrPackageNotFound, "path is a directory", goerr.V("path", src.Path))
	}

	return nil
}

// createScratchDir creates a fresh scratch directory, replacing any leftover
// directory of the same name
func (uc *inspector) createScratchDir(ctx context.Context) (string, error) {
	base, err := uc.resolveScratchBase()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, scratchPrefix+uuid.NewString())
	if err := os.RemoveAll(dir); err != nil {
		return "", goerr.Wrap(err, "failed to remove stale scratch directory", goerr.V("dir", dir))
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", goerr.Wrap(err, "failed to create scratch directory", goerr.V("dir", dir))
	}

	ctxlog.From(ctx).Debug("Created scratch directory", "scratch_dir", dir)
	return dir, nil
}

func (uc *inspector) resolveScratchBase() (string, error) {
	if uc.scratchBase != "" {
		return uc.scratchBase, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return os.TempDir(), nil
	}
	return filepath.Dir(exe), nil
}

func (uc *inspector) removeScratchDir(ctx context.Context, dir string) {
	logger := ctxlog.From(ctx)

	if uc.keepScratch {
		logger.Warn("Keeping scratch directory", "scratch_dir", dir)
		return
	}

	if err := os.RemoveAll(dir); err != nil {
		logger.Error("Failed to remove scratch directory", "scratch_dir", dir, "error", err)
		return
	}
	logger.Debug("Removed scratch directory", "scratch_dir", dir)
}

// download copies a remote package into the scratch directory
func (uc *inspector) download(ctx context.Context, src *model.PackageSource, scratchDir string) (string, error) {
	rc, err := uc.storage.NewReader(ctx, src.Bucket, src.Object)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open package object", goerr.V("source", src.Raw))
	}
	defer rc.Close()

	dst := filepath.Join(scratchDir, "package"+path.Ext(src.Object))
	if err := writeFile(dst, rc, 0600); err != nil {
		return "", err
	}

	ctxlog.From(ctx).Debug("Downloaded package", "source", src.Raw, "path", dst)
	return dst, nil
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}
