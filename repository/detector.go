// Package repository locates the project surrounding scanned source files
// and provides source discovery and reading.
package repository

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Project describes the detected project root for a scanned file.
type Project struct {
	Name     string
	Type     string
	RootPath string
}

// Detector identifies project root folders so record file paths can be
// reported relative to them.
type Detector struct {
	markers []string
}

// NewDetector creates a detector with the marker files this tool meets in
// practice: JavaScript projects, Go repositories hosting JavaScript assets,
// and a generic VCS fallback.
func NewDetector() *Detector {
	return &Detector{
		markers: []string{
			"package.json", // JavaScript/Node projects
			"go.mod",       // Go projects carrying JS assets
			".git",         // generic VCS marker
		},
	}
}

// DetectProject identifies the project root containing filePath. When no
// marker is found the file's own directory is the root.
func (d *Detector) DetectProject(filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)
	project := &Project{Type: "unknown", RootPath: startDir}
	if rootPath != "" {
		project.RootPath = rootPath
		project.Type = projectType
		project.Name = extractProjectName(rootPath, projectType)
	}
	if project.Name == "" {
		project.Name = filepath.Base(project.RootPath)
	}
	return project, nil
}

// Relativize returns filePath relative to the project root, with forward
// slashes, falling back to the input when the paths do not share a prefix.
func (p *Project) Relativize(filePath string) string {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return filePath
	}
	rel, err := filepath.Rel(p.RootPath, absPath)
	if err != nil {
		return filePath
	}
	return filepath.ToSlash(rel)
}

// findProjectRoot searches up the directory tree for project markers.
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, projectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

func projectType(marker string) string {
	switch marker {
	case "package.json":
		return "javascript"
	case "go.mod":
		return "go"
	case ".git":
		return "git"
	}
	return "unknown"
}

var packageNameRegex = regexp.MustCompile(`"name"\s*:\s*"([^"]+)"`)

// extractProjectName pulls a project name out of the marker configuration.
func extractProjectName(rootPath, kind string) string {
	switch kind {
	case "javascript":
		data, err := os.ReadFile(filepath.Join(rootPath, "package.json"))
		if err != nil {
			return ""
		}
		if matches := packageNameRegex.FindSubmatch(data); len(matches) == 2 {
			return string(matches[1])
		}
	case "go":
		goModPath := filepath.Join(rootPath, "go.mod")
		fs := afs.New()
		if content, _ := fs.DownloadWithURL(context.Background(), goModPath); len(content) > 0 {
			if mod, _ := modfile.Parse(goModPath, content, nil); mod != nil {
				return mod.Module.Mod.Path
			}
		}
	}
	return ""
}
