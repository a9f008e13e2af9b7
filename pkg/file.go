package dupmirror

import (
	"fmt"
	"time"
)

// FileRecord is one regular file found by the walk. Size, digest and
// modification time are captured once at construction and never refreshed.
type FileRecord struct {
	dir        string
	siblings   []string
	name       string
	size       int64
	digest     string
	modifiedAt time.Time
}

// NewFileRecord stats and hashes dir/name. Any failure is returned as an
// *IOError and no record is produced.
func NewFileRecord(hasher *ContentHasher, dir string, siblings []string, name string) (*FileRecord, error) {
	p := joinDir(dir, name)

	digest, err := hasher.HashFile(p)
	if err != nil {
		return nil, err
	}

	info, err := hasher.fs.Stat(p)
	if err != nil {
		return nil, &IOError{Op: "stat", Path: p, Err: err}
	}

	return &FileRecord{
		dir:        dir,
		siblings:   siblings,
		name:       name,
		size:       info.Size(),
		digest:     digest,
		modifiedAt: info.ModTime(),
	}, nil
}

// Path returns dir + "/" + name
func (f *FileRecord) Path() string { return joinDir(f.dir, f.name) }

// Dir returns the directory the walk yielded this file from
func (f *FileRecord) Dir() string { return f.dir }

// Name returns the base name
func (f *FileRecord) Name() string { return f.name }

// Siblings returns the directory listing captured at discovery time
func (f *FileRecord) Siblings() []string { return f.siblings }

// Size returns the size in bytes at discovery time
func (f *FileRecord) Size() int64 { return f.size }

// Digest returns the hex content digest at discovery time
func (f *FileRecord) Digest() string { return f.digest }

// ModifiedAt returns the modification time at discovery time
func (f *FileRecord) ModifiedAt() time.Time { return f.modifiedAt }

// Year returns the four digit year of the modification time
func (f *FileRecord) Year() string { return f.modifiedAt.Format("2006") }

// Month returns the two digit month of the modification time
func (f *FileRecord) Month() string { return f.modifiedAt.Format("01") }

// Quarter returns the calendar quarter (1-4) of the modification time
func (f *FileRecord) Quarter() int {
	month := int(f.modifiedAt.Month())
	switch {
	case month <= 3:
		return 1
	case month <= 6:
		return 2
	case month <= 9:
		return 3
	default:
		return 4
	}
}

func (f *FileRecord) String() string {
	return fmt.Sprintf("File=%s size=%d", f.Path(), f.size)
}
