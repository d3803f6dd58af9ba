package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetectProject_JavaScript(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"name": "demo-app", "version": "1.0.0"}`)
	writeFile(t, filepath.Join(dir, "src", "app.js"), "let x = 1;\n")

	detector := NewDetector()
	project, err := detector.DetectProject(filepath.Join(dir, "src", "app.js"))
	require.NoError(t, err)
	assert.Equal(t, "javascript", project.Type)
	assert.Equal(t, "demo-app", project.Name)
	assert.Equal(t, dir, project.RootPath)
	assert.Equal(t, "src/app.js", project.Relativize(filepath.Join(dir, "src", "app.js")))
}

func TestDetectProject_GoModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module github.com/acme/site\n\ngo 1.23\n")
	writeFile(t, filepath.Join(dir, "assets", "main.js"), "let x = 1;\n")

	detector := NewDetector()
	project, err := detector.DetectProject(filepath.Join(dir, "assets", "main.js"))
	require.NoError(t, err)
	assert.Equal(t, "go", project.Type)
	assert.Equal(t, "github.com/acme/site", project.Name)
	assert.Equal(t, dir, project.RootPath)
}

func TestDetectProject_NoMarker(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lone.js"), "let x = 1;\n")

	detector := NewDetector()
	project, err := detector.DetectProject(filepath.Join(dir, "lone.js"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(project.RootPath), project.Name)
}

func TestDetectProject_Missing(t *testing.T) {
	detector := NewDetector()
	_, err := detector.DetectProject(filepath.Join(t.TempDir(), "absent.js"))
	assert.Error(t, err)
}
