// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wiki

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// ErrNoContent is returned when loading an item that names no file.
var ErrNoContent = errors.New("wiki: item has no content")

// ManifestFile is the name of the manifest in a wiki file system.
const ManifestFile = "wiki-manifest.json"

// A Loader returns the Markdown of the file a tree item names.
type Loader interface {
	Load(ctx context.Context, path string) (string, error)
}

// An FSLoader loads pages from the wiki directory of FS.
// A page with path p is read from wiki/p.
type FSLoader struct {
	FS fs.FS
}

func (l FSLoader) Load(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p == "" {
		return "", ErrNoContent
	}
	name := path.Join("wiki", p)
	if !fs.ValidPath(name) || !fs.ValidPath(p) {
		return "", fmt.Errorf("wiki: load %s: %w", p, fs.ErrInvalid)
	}
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return "", fmt.Errorf("wiki: load %s: %w", p, err)
	}
	return string(data), nil
}

// ReadManifest reads and parses the [ManifestFile] at the root of fsys.
func ReadManifest(fsys fs.FS) (Tree, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("wiki: %w", err)
	}
	return ParseManifest(data)
}
