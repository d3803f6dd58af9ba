package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
)

// sourceExtensions are the JavaScript-family files the scanner handles.
var sourceExtensions = []string{".js", ".mjs", ".cjs", ".jsx"}

// skipDirs are directory names never descended into during discovery.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// IsSourceFile reports whether path has a JavaScript-family extension.
func IsSourceFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range sourceExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// DiscoverSources expands each path into the JavaScript source files it
// denotes: files are taken as-is, directories are walked recursively. The
// result is sorted for deterministic scan order.
func DiscoverSources(paths ...string) ([]string, error) {
	var sources []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			sources = append(sources, path)
			continue
		}
		err = filepath.Walk(path, func(entry string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if skipDirs[info.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if IsSourceFile(entry) {
				sources = append(sources, entry)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
	}
	sort.Strings(sources)
	return sources, nil
}

// ReadSource loads the content of one source file.
func ReadSource(ctx context.Context, path string) ([]byte, error) {
	fs := afs.New()
	content, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}
