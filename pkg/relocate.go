package dupmirror

import (
	"os"

	"github.com/spf13/afero"
)

// renameFunc is replaceable so tests can simulate EXDEV and other rename
// failures.
var renameFunc = func(fs afero.Fs, src, dst string) error {
	return fs.Rename(src, dst)
}

// DestinationDir maps a record directory under sourceRoot to the mirrored
// directory under destRoot by removing len(sourceRoot) characters from the
// front of dir. The removal is literal: separators are not normalised.
func DestinationDir(sourceRoot, destRoot, dir string) string {
	offset := len(sourceRoot)
	if offset > len(dir) {
		offset = len(dir)
	}
	return destRoot + dir[offset:]
}

// RelocationResult counts what Relocate did
type RelocationResult struct {
	Moved   int
	Skipped int
}

// Relocator moves duplicates into a tree under destRoot that mirrors their
// position under sourceRoot.
type Relocator struct {
	fs         afero.Fs
	sourceRoot string
	destRoot   string
}

// NewRelocator creates a relocator for one source/destination pair
func NewRelocator(fs afero.Fs, sourceRoot, destRoot string) *Relocator {
	return &Relocator{fs: fs, sourceRoot: sourceRoot, destRoot: destRoot}
}

// Relocate moves every duplicate in reg. A duplicate whose file is gone is
// skipped. Any other failure stops the loop and is returned; moves already
// made are kept.
func (rl *Relocator) Relocate(reg *Registry) (RelocationResult, error) {
	defer VerboseEnter()()

	var result RelocationResult
	for _, group := range reg.Groups() {
		for _, dup := range group.Duplicates {
			moved, err := rl.move(dup)
			if err != nil {
				return result, err
			}
			if moved {
				result.Moved++
			} else {
				result.Skipped++
			}
		}
	}
	return result, nil
}

// move relocates one duplicate. It returns false with a nil error when the
// source no longer exists.
func (rl *Relocator) move(dup *FileRecord) (bool, error) {
	src := dup.Path()

	info, err := rl.fs.Stat(src)
	if err != nil || !info.Mode().IsRegular() {
		VerboseLog(1, "skipping %s: no longer a regular file", src)
		return false, nil
	}

	newDir := DestinationDir(rl.sourceRoot, rl.destRoot, dup.Dir())
	if err := rl.createDir(newDir); err != nil {
		return false, err
	}

	dst := joinDir(newDir, dup.Name())
	if IsDebugEnabled("relocate") {
		VerboseLog(2, "rename %s -> %s", src, dst)
	}
	if err := renameFunc(rl.fs, src, dst); err != nil {
		if os.IsNotExist(err) {
			if _, statErr := rl.fs.Stat(src); os.IsNotExist(statErr) {
				VerboseLog(1, "skipping %s: removed before rename", src)
				return false, nil
			}
		}
		if isEXDEV(err) {
			err = &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return false, &IOError{Op: "rename", Path: src, Err: err}
	}

	VerboseLog(1, "moved %s -> %s", src, dst)
	return true, nil
}

// createDir creates dir and its parents. An existing directory is success.
func (rl *Relocator) createDir(dir string) error {
	if err := rl.fs.MkdirAll(dir, 0o755); err != nil && !os.IsExist(err) {
		return &DirectoryCreateError{Path: dir, Err: err}
	}
	return nil
}
