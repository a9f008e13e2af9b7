//go:build !linux

package dupmirror

import "io"

func writeLines(w io.Writer, lines [][]byte) error {
	return writeLinesSequential(w, lines)
}
