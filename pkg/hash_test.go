package dupmirror

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestGetHashAlgorithm(t *testing.T) {
	tests := []struct {
		name     string
		wantType uint16
		wantSize int
		wantErr  bool
	}{
		{"sha1", HashTypeSHA1, HashSizeSHA1, false},
		{"SHA256", HashTypeSHA256, HashSizeSHA256, false},
		{"sha512", HashTypeSHA512, HashSizeSHA512, false},
		{"md5", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			algo, err := GetHashAlgorithm(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetHashAlgorithm(%s) failed: %v", tt.name, err)
			}
			if algo.TypeID != tt.wantType {
				t.Errorf("Expected type %d, got %d", tt.wantType, algo.TypeID)
			}
			if algo.Size != tt.wantSize {
				t.Errorf("Expected size %d, got %d", tt.wantSize, algo.Size)
			}
			if got := algo.NewFunc().Size(); got != tt.wantSize {
				t.Errorf("Hasher size %d does not match %d", got, tt.wantSize)
			}
		})
	}
}

func TestContentHasher_KnownDigests(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, map[string]string{
		"/data/hi.txt":    "hi",
		"/data/empty.txt": "",
	})

	hasher := NewContentHasher(fs, nil, 0)
	if hasher.BlockSize() != DefaultBlockSize {
		t.Errorf("Expected default block size %d, got %d", DefaultBlockSize, hasher.BlockSize())
	}
	if hasher.Algorithm().Name != "sha1" {
		t.Errorf("Expected default algorithm sha1, got %s", hasher.Algorithm().Name)
	}

	expected := map[string]string{
		"/data/hi.txt":    "c22b5f9178342609428d6f51b2c5af4c0bde6a42",
		"/data/empty.txt": "da39a3ee5e6b4b0d3255bfef95601890afd80709",
	}
	for p, want := range expected {
		got, err := hasher.HashFile(p)
		if err != nil {
			t.Fatalf("HashFile(%s) failed: %v", p, err)
		}
		if got != want {
			t.Errorf("HashFile(%s) = %s, want %s", p, got, want)
		}
	}
}

func TestContentHasher_SHA256(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, map[string]string{"/hi": "hi"})

	algo, err := GetHashAlgorithm("sha256")
	if err != nil {
		t.Fatal(err)
	}
	got, err := NewContentHasher(fs, algo, 0).HashFile("/hi")
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if got != "8f434346648f6b96df89dda901c5176b10a6d83961dd3c1ac88b59b2dc327aa4" {
		t.Errorf("Unexpected sha256 digest %s", got)
	}
}

func TestContentHasher_BlockBoundaries(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := strings.Repeat("0123456789abcdef", 41) + "tail"
	writeTree(t, fs, map[string]string{"/big.bin": content})

	sum := sha1.Sum([]byte(content))
	want := hex.EncodeToString(sum[:])

	for _, blockSize := range []int{1, 7, 16, 64, len(content), len(content) + 1} {
		got, err := NewContentHasher(fs, nil, blockSize).HashFile("/big.bin")
		if err != nil {
			t.Fatalf("HashFile with block size %d failed: %v", blockSize, err)
		}
		if got != want {
			t.Errorf("Block size %d: got %s, want %s", blockSize, got, want)
		}
	}
}

func TestContentHasher_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, map[string]string{"/a": "same bytes"})
	hasher := NewContentHasher(fs, nil, 0)

	first, err := hasher.HashFile("/a")
	if err != nil {
		t.Fatal(err)
	}
	second, err := hasher.HashFile("/a")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Hashing twice gave %s and %s", first, second)
	}
	if len(first) != 2*HashSizeSHA1 {
		t.Errorf("Expected %d hex characters, got %d", 2*HashSizeSHA1, len(first))
	}
}

func TestContentHasher_MissingFile(t *testing.T) {
	hasher := NewContentHasher(afero.NewMemMapFs(), nil, 0)

	digest, err := hasher.HashFile("/nope")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if digest != "" {
		t.Errorf("Expected no digest on failure, got %s", digest)
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected *IOError, got %T", err)
	}
	if ioErr.Op != "open" || ioErr.Path != "/nope" {
		t.Errorf("Unexpected IOError fields: %+v", ioErr)
	}
}

func TestContentHasher_ReadFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	writeTree(t, base, map[string]string{"/bad.bin": "more than one byte"})
	fs := failingReadFs{Fs: base, path: "/bad.bin"}

	digest, err := NewContentHasher(fs, nil, 4).HashFile("/bad.bin")
	if err == nil {
		t.Fatal("Expected read failure")
	}
	if digest != "" {
		t.Errorf("Expected no partial digest, got %s", digest)
	}
	if !IsIOError(err) {
		t.Errorf("Expected IOError, got %T", err)
	}
	if !errors.Is(err, errDisk) {
		t.Errorf("Expected wrapped disk error, got %v", err)
	}
}
