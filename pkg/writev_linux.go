//go:build linux

package dupmirror

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/google/vectorio"
)

// maxIovecs bounds a single writev call (conservative IOV_MAX)
const maxIovecs = 1024

// writeLines gathers lines into one writev per chunk when w is a file,
// otherwise it falls back to sequential writes.
func writeLines(w io.Writer, lines [][]byte) error {
	file, ok := w.(*os.File)
	if !ok {
		return writeLinesSequential(w, lines)
	}

	nonEmpty := make([][]byte, 0, len(lines))
	for _, line := range lines {
		if len(line) > 0 {
			nonEmpty = append(nonEmpty, line)
		}
	}

	for offset := 0; offset < len(nonEmpty); offset += maxIovecs {
		end := offset + maxIovecs
		if end > len(nonEmpty) {
			end = len(nonEmpty)
		}
		chunk := nonEmpty[offset:end]

		iovecs := make([]syscall.Iovec, len(chunk))
		chunkSize := 0
		for i, line := range chunk {
			iovecs[i] = syscall.Iovec{Base: &line[0]}
			iovecs[i].SetLen(len(line))
			chunkSize += len(line)
		}

		nw, err := vectorio.WritevRaw(uintptr(file.Fd()), iovecs)
		if err != nil {
			return fmt.Errorf("failed to write report with vectorio: %w", err)
		}
		if nw < chunkSize {
			// short write: finish the chunk and the rest sequentially
			return writeLinesSequential(w, unwritten(nonEmpty[offset:], nw))
		}
	}
	return nil
}

// unwritten drops the first n bytes from lines
func unwritten(lines [][]byte, n int) [][]byte {
	for i, line := range lines {
		if n < len(line) {
			rest := make([][]byte, 0, len(lines)-i)
			rest = append(rest, line[n:])
			return append(rest, lines[i+1:]...)
		}
		n -= len(line)
	}
	return nil
}
