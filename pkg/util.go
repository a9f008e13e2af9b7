package dupmirror

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// joinDir joins dir and name with a single "/". Unlike filepath.Join it does
// not clean dir, so a walk rooted at "./src" keeps yielding "./src/...",
// which the literal prefix strip in DestinationDir relies on.
func joinDir(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// ParseHumanSize parses a size such as "64KiB", "2M" or "4096" into bytes
func ParseHumanSize(sizeStr string) (int, error) {
	sizeStr = strings.TrimSpace(sizeStr)
	if sizeStr == "" {
		return 0, fmt.Errorf("empty size string")
	}

	size, err := humanize.ParseBytes(sizeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid size string %s: %w", sizeStr, err)
	}
	if size > math.MaxInt32 {
		return 0, fmt.Errorf("size %s too large", sizeStr)
	}
	return int(size), nil
}

// FormatBytes formats a byte count with IEC units, e.g. "1.5 MiB"
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
