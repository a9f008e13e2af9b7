package dupmirror

import (
	"os"

	"github.com/spf13/afero"
)

// WalkFunc receives one regular file: the directory it was listed in, that
// directory's full listing, and the file's base name. Returning an error
// stops the walk and the error is returned from WalkFiles.
type WalkFunc func(dir string, siblings []string, name string) error

// WalkFiles visits every regular file under root, top-down: a directory's
// files are yielded before its subdirectories are entered. Directories and
// non-regular entries are never yielded. Entries are listed without
// following symlinks.
//
// A root that cannot be listed is an *IOError. Subdirectories that cannot be
// listed are logged and skipped.
func WalkFiles(fs afero.Fs, root string, fn WalkFunc) error {
	defer VerboseEnter()()

	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return &IOError{Op: "readdir", Path: root, Err: err}
	}
	return walkEntries(fs, root, entries, fn)
}

func walkEntries(fs afero.Fs, dir string, entries []os.FileInfo, fn WalkFunc) error {
	siblings := make([]string, 0, len(entries))
	for _, entry := range entries {
		siblings = append(siblings, entry.Name())
	}

	var subdirs []string
	for _, entry := range entries {
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, entry.Name())
		case entry.Mode().IsRegular():
			if IsDebugEnabled("scan") {
				VerboseLog(3, "WalkFiles: file %s in %s", entry.Name(), dir)
			}
			if err := fn(dir, siblings, entry.Name()); err != nil {
				return err
			}
		default:
			if IsDebugEnabled("scan") {
				VerboseLog(3, "WalkFiles: skipping non-regular %s (%s)", joinDir(dir, entry.Name()), entry.Mode().Type())
			}
		}
	}

	for _, name := range subdirs {
		sub := joinDir(dir, name)
		subEntries, err := afero.ReadDir(fs, sub)
		if err != nil {
			VerboseLog(0, "skipping unreadable directory %s: %v", sub, err)
			continue
		}
		if err := walkEntries(fs, sub, subEntries, fn); err != nil {
			return err
		}
	}

	return nil
}
