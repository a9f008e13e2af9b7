//go:build linux

package dupmirror

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteLines_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	var lines [][]byte
	var want strings.Builder
	// More lines than a single writev chunk
	for i := 0; i < maxIovecs+10; i++ {
		line := fmt.Sprintf("line %d\n", i)
		lines = append(lines, []byte(line))
		want.WriteString(line)
	}
	lines = append(lines, []byte{})

	if err := writeLines(file, lines); err != nil {
		t.Fatalf("writeLines failed: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want.String() {
		t.Errorf("File content mismatch: got %d bytes, want %d", len(got), want.Len())
	}
}

func TestUnwritten(t *testing.T) {
	lines := [][]byte{[]byte("abc"), []byte("de"), []byte("fgh")}

	tests := []struct {
		written int
		want    string
	}{
		{0, "abcdefgh"},
		{2, "cdefgh"},
		{3, "defgh"},
		{4, "efgh"},
		{7, "h"},
		{8, ""},
	}

	for _, tt := range tests {
		var got strings.Builder
		for _, line := range unwritten(lines, tt.written) {
			got.Write(line)
		}
		if got.String() != tt.want {
			t.Errorf("unwritten(%d) = %q, want %q", tt.written, got.String(), tt.want)
		}
	}
	if string(lines[0]) != "abc" {
		t.Error("unwritten must not modify its input")
	}
}
