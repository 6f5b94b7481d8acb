/*
Copyright © 2025 Sitestack Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TemplateReader reads a stack template body by name
type TemplateReader interface {
	ReadTemplate(name string) (string, error)
}

// FileSystemResolver reads templates from a directory on disk. Names may be
// file:// URIs, absolute paths, or paths relative to Dir.
type FileSystemResolver struct {
	Dir string
}

// ReadTemplate reads template content from disk
func (r *FileSystemResolver) ReadTemplate(name string) (string, error) {
	path, err := r.path(name)
	if err != nil {
		return "", fmt.Errorf("invalid template name %s: %w", name, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return string(content), nil
}

func (r *FileSystemResolver) path(name string) (string, error) {
	path := strings.TrimPrefix(name, "file://")
	if path == "" {
		return "", fmt.Errorf("template name is empty")
	}
	if filepath.IsAbs(path) || r.Dir == "" {
		return path, nil
	}
	return filepath.Join(r.Dir, path), nil
}

// FSResolver reads templates from an fs.FS such as an embedded template set
type FSResolver struct {
	FS fs.FS
}

// ReadTemplate reads template content from the file system
func (r *FSResolver) ReadTemplate(name string) (string, error) {
	content, err := fs.ReadFile(r.FS, name)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return string(content), nil
}
