package cli

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

func writePackage(t *testing.T, files map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		gt.NoError(t, err)
		_, err = w.Write([]byte(body))
		gt.NoError(t, err)
	}
	gt.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "scorm.zip")
	gt.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"scorm-inspect"}, &stdout, &stderr)

	gt.Error(t, err)
	gt.True(t, errors.Is(err, errMissingPackage))
	gt.String(t, stdout.String()).Contains("Usage: scorm-inspect")
	gt.String(t, stdout.String()).Contains("Examples:")
}

func TestRun_FileNotFound(t *testing.T) {
	var stdout, stderr bytes.Buffer
	scratch := t.TempDir()
	missing := filepath.Join(t.TempDir(), "missing.zip")

	err := run(context.Background(), []string{
		"scorm-inspect", "--no-color", "--scratch-dir", scratch, missing,
	}, &stdout, &stderr)

	gt.NoError(t, err)
	gt.String(t, stdout.String()).Contains("File not found: " + missing)

	entries, err := os.ReadDir(scratch)
	gt.NoError(t, err)
	gt.Equal(t, len(entries), 0)
}

func TestRun_Report(t *testing.T) {
	var stdout, stderr bytes.Buffer
	scratch := t.TempDir()
	pkg := writePackage(t, map[string]string{
		"a/imsmanifest.xml": `<manifest><organizations><organization identifier="ORG1"><title>Foo</title></organization></organizations>
<resources><resource href="a.html"/><resource href="b.html"/><resource href="c.html"/></resources></manifest>`,
		"a/INDEX.HTML": "<html></html>",
		"quiz.html":    "<html></html>",
	})

	err := run(context.Background(), []string{
		"scorm-inspect", "--no-color", "--scratch-dir", scratch, pkg,
	}, &stdout, &stderr)
	gt.NoError(t, err)

	out := stdout.String()
	gt.String(t, out).Contains("Examining SCORM package: " + pkg)
	gt.String(t, out).Contains("Found manifest: a/imsmanifest.xml")
	gt.String(t, out).Contains("Title: Foo")
	gt.String(t, out).Contains("Organization: ORG1")
	gt.String(t, out).Contains("  - a.html\n  - b.html\n  - c.html\n")
	gt.String(t, out).Contains("   - a/INDEX.HTML\n")
	gt.String(t, out).Contains("   - quiz.html\n")
	gt.String(t, out).Contains("Analysis complete!")

	entries, err := os.ReadDir(scratch)
	gt.NoError(t, err)
	gt.Equal(t, len(entries), 0)
}

func TestRun_InspectionErrorKeepsExitStatus(t *testing.T) {
	var stdout, stderr bytes.Buffer
	broken := filepath.Join(t.TempDir(), "broken.zip")
	gt.NoError(t, os.WriteFile(broken, []byte("not a zip"), 0644))

	err := run(context.Background(), []string{
		"scorm-inspect", "--no-color", "--scratch-dir", t.TempDir(), broken,
	}, &stdout, &stderr)

	gt.NoError(t, err)
	gt.String(t, stdout.String()).Contains("Error examining SCORM package:")
	gt.String(t, stderr.String()).Contains("Failed to examine SCORM package")
}

func TestRun_ConfigFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	scratch := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "scorm-inspect.toml")
	gt.NoError(t, os.WriteFile(cfgPath, []byte(
		"[inspect]\nscratch_dir = \""+filepath.ToSlash(scratch)+"\"\nlaunch_extensions = [\"htm\"]\n",
	), 0600))

	pkg := writePackage(t, map[string]string{
		"index.html": "<html></html>",
		"old.htm":    "<html></html>",
	})

	err := run(context.Background(), []string{
		"scorm-inspect", "--no-color", "--config", cfgPath, pkg,
	}, &stdout, &stderr)
	gt.NoError(t, err)

	out := stdout.String()
	gt.String(t, out).Contains("   - old.htm\n")
	gt.False(t, bytes.Contains(stdout.Bytes(), []byte("   - index.html\n")))

	entries, err := os.ReadDir(scratch)
	gt.NoError(t, err)
	gt.Equal(t, len(entries), 0)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{
		"scorm-inspect", "--log-level", "verbose", "pkg.zip",
	}, &stdout, &stderr)

	gt.Error(t, err)
}
