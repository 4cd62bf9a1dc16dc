package usecase

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/model"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/types"
	"github.com/mholt/archives"
)

// extractArchive extracts the archive at archivePath into destDir
func extractArchive(ctx context.Context, archivePath, destDir string) (*model.ExtractResult, error) {
	logger := ctxlog.From(ctx)

	file, err := os.Open(archivePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open archive", goerr.V("path", archivePath))
	}
	defer file.Close()

	// Identify by content only, a misnamed file must not pass as a zip
	format, _, err := archives.Identify(ctx, "", file)
	if err != nil {
		if errors.Is(err, archives.NoMatch) {
			return nil, goerr.Wrap(types.ErrUnsupportedArchive, "archive format not recognized", goerr.V("path", archivePath))
		}
		return nil, goerr.Wrap(err, "failed to identify archive", goerr.V("path", archivePath))
	}

	extractor, ok := format.(archives.Extractor)
	if !ok {
		return nil, goerr.Wrap(types.ErrUnsupportedArchive, "format does not support extraction",
			goerr.V("path", archivePath),
			goerr.V("format", format.Extension()),
		)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, goerr.Wrap(err, "failed to rewind archive", goerr.V("path", archivePath))
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create extraction directory", goerr.V("dir", destDir))
	}

	logger.Debug("Extracting archive",
		"path", archivePath,
		"format", format.Extension(),
		"dest", destDir,
	)

	result := &model.ExtractResult{Dir: destDir}
	handler := func(ctx context.Context, info archives.FileInfo) error {
		written, err := extractFile(ctx, info, destDir)
		if err != nil {
			return err
		}
		if written {
			result.Files = append(result.Files, info.NameInArchive)
			result.Size += info.Size()
		}
		return nil
	}

	if err := extractor.Extract(ctx, file, handler); err != nil {
		return nil, goerr.Wrap(err, "failed to extract archive", goerr.V("path", archivePath))
	}

	return result, nil
}

// extractFile writes a single archive entry below destDir. It reports whether
// a regular file was written.
func extractFile(ctx context.Context, info archives.FileInfo, destDir string) (bool, error) {
	root := filepath.Clean(destDir)
	destPath := filepath.Join(root, filepath.FromSlash(info.NameInArchive))

	// Security check: prevent path traversal attacks
	if destPath == root && info.IsDir() {
		return false, nil
	}
	if !strings.HasPrefix(destPath, root+string(os.PathSeparator)) {
		return false, goerr.New("invalid file path detected",
			goerr.V("file", info.NameInArchive),
			goerr.V("dest", destPath),
		)
	}

	if info.IsDir() {
		if err := os.MkdirAll(destPath, 0755); err != nil {
			return false, goerr.Wrap(err, "failed to create directory", goerr.V("dir", destPath))
		}
		return false, nil
	}

	if !info.Mode().IsRegular() {
		ctxlog.From(ctx).Debug("Skipping non-regular archive entry",
			"name", info.NameInArchive,
			"mode", info.Mode().String(),
		)
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return false, goerr.Wrap(err, "failed to create parent directories", goerr.V("dir", filepath.Dir(destPath)))
	}

	rc, err := info.Open()
	if err != nil {
		return false, goerr.Wrap(err, "failed to open file in archive", goerr.V("file", info.NameInArchive))
	}
	defer rc.Close()

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = 0644
	}

	if err := writeFile(destPath, rc, perm); err != nil {
		return false, err
	}

	return true, nil
}

func writeFile(destPath string, r io.Reader, perm fs.FileMode) error {
	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}

	if _, err := io.Copy(destFile, r); err != nil {
		_ = destFile.Close()
		return goerr.Wrap(err, "failed to copy file content", goerr.V("path", destPath))
	}

	if err := destFile.Close(); err != nil {
		return goerr.Wrap(err, "failed to close destination file", goerr.V("path", destPath))
	}

	return nil
}
