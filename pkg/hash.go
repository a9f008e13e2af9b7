package dupmirror

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// HashAlgorithm represents a hash algorithm configuration
type HashAlgorithm struct {
	Name    string
	TypeID  uint16
	Size    int
	NewFunc func() hash.Hash
}

// GetHashAlgorithm returns the hash algorithm configuration for the given name
func GetHashAlgorithm(name string) (*HashAlgorithm, error) {
	switch strings.ToLower(name) {
	case "sha1":
		return &HashAlgorithm{
			Name:    "sha1",
			TypeID:  HashTypeSHA1,
			Size:    HashSizeSHA1,
			NewFunc: func() hash.Hash { return sha1.New() },
		}, nil
	case "sha256":
		return &HashAlgorithm{
			Name:    "sha256",
			TypeID:  HashTypeSHA256,
			Size:    HashSizeSHA256,
			NewFunc: func() hash.Hash { return sha256.New() },
		}, nil
	case "sha512":
		return &HashAlgorithm{
			Name:    "sha512",
			TypeID:  HashTypeSHA512,
			Size:    HashSizeSHA512,
			NewFunc: func() hash.Hash { return sha512.New() },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s", name)
	}
}

// ContentHasher computes content digests by streaming fixed-size blocks
// through an incremental hash.
type ContentHasher struct {
	fs        afero.Fs
	algorithm *HashAlgorithm
	blockSize int
}

// NewContentHasher creates a hasher reading from fs. A nil algorithm selects
// SHA-1 and a non-positive blockSize selects DefaultBlockSize.
func NewContentHasher(fs afero.Fs, algorithm *HashAlgorithm, blockSize int) *ContentHasher {
	if algorithm == nil {
		algorithm, _ = GetHashAlgorithm(DefaultHashAlgorithm)
	}
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &ContentHasher{fs: fs, algorithm: algorithm, blockSize: blockSize}
}

// Algorithm returns the hash algorithm in use
func (h *ContentHasher) Algorithm() *HashAlgorithm {
	return h.algorithm
}

// BlockSize returns the read block size in bytes
func (h *ContentHasher) BlockSize() int {
	return h.blockSize
}

// HashFile returns the hex digest of the file at filePath. On any open or
// read failure it returns an *IOError and no digest.
func (h *ContentHasher) HashFile(filePath string) (string, error) {
	file, err := h.fs.Open(filePath)
	if err != nil {
		return "", &IOError{Op: "open", Path: filePath, Err: err}
	}
	defer file.Close()

	hasher := h.algorithm.NewFunc()
	buffer := make([]byte, h.blockSize)

	for {
		n, err := file.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &IOError{Op: "read", Path: filePath, Err: err}
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
