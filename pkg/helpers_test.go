package dupmirror

import (
	"errors"
	"path"
	"testing"

	"github.com/spf13/afero"
)

// writeTree creates files (path -> content) in fs, creating parents
func writeTree(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for p, content := range files {
		if err := fs.MkdirAll(path.Dir(p), 0o755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", p, err)
		}
		if err := afero.WriteFile(fs, p, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", p, err)
		}
	}
}

// scanRegistry walks root in fs and classifies every file
func scanRegistry(t *testing.T, fs afero.Fs, root string, strategy Strategy, indexed bool) *Registry {
	t.Helper()
	hasher := NewContentHasher(fs, nil, 0)
	reg := NewRegistry(strategy, indexed)
	err := WalkFiles(fs, root, func(dir string, siblings []string, name string) error {
		rec, err := NewFileRecord(hasher, dir, siblings, name)
		if err != nil {
			return err
		}
		reg.Classify(rec)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan of %s failed: %v", root, err)
	}
	return reg
}

var errDisk = errors.New("simulated disk error")

// failingReadFs fails every Read after the first on the named file
type failingReadFs struct {
	afero.Fs
	path string
}

func (f failingReadFs) Open(name string) (afero.File, error) {
	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	if name == f.path {
		return &failingFile{File: file}, nil
	}
	return file, nil
}

type failingFile struct {
	afero.File
	reads int
}

func (f *failingFile) Read(p []byte) (int, error) {
	if f.reads > 0 {
		return 0, errDisk
	}
	f.reads++
	return f.File.Read(p[:1])
}
