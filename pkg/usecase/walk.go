package usecase

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/scorm-inspect/pkg/domain/model"
)

// walkTree lists everything below root depth first. Entries of one directory
// appear in lexical order and a directory's children follow it directly.
func walkTree(root string) (model.Listing, error) {
	var listing model.Listing

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return goerr.Wrap(err, "failed to walk directory", goerr.V("path", p))
		}
		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return goerr.Wrap(err, "failed to resolve relative path", goerr.V("path", p))
		}
		rel = filepath.ToSlash(rel)

		entry := model.Entry{
			Path:  rel,
			Name:  d.Name(),
			Depth: strings.Count(rel, "/"),
			IsDir: d.IsDir(),
		}
		if !d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return goerr.Wrap(err, "failed to stat file", goerr.V("path", p))
			}
			entry.Size = model.ByteSize(info.Size())
		}

		listing = append(listing, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return listing, nil
}

// findManifest returns the first file in traversal order whose name matches
// name case-insensitively, or nil.
func findManifest(listing model.Listing, name string) *model.Entry {
	for i := range listing {
		if !listing[i].IsDir && strings.EqualFold(listing[i].Name, name) {
			return &listing[i]
		}
	}
	return nil
}

// findLaunchFiles returns paths of files whose lowercased extension is in exts
func findLaunchFiles(listing model.Listing, exts map[string]struct{}) []string {
	var files []string
	for _, e := range listing {
		if e.IsDir {
			continue
		}
		if _, ok := exts[strings.ToLower(path.Ext(e.Name))]; ok {
			files = append(files, e.Path)
		}
	}
	return files
}
