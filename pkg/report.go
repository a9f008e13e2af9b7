package dupmirror

import (
	"fmt"
	"io"
)

// Reporter prints per-group duplicate listings and run totals
type Reporter struct {
	w          io.Writer
	sourceRoot string
	destRoot   string
}

// NewReporter creates a reporter writing to w. sourceRoot and destRoot are
// used to show where each duplicate would be relocated.
func NewReporter(w io.Writer, sourceRoot, destRoot string) *Reporter {
	return &Reporter{w: w, sourceRoot: sourceRoot, destRoot: destRoot}
}

// Header prints the run parameters
func (rp *Reporter) Header(strategy Strategy, execute bool) error {
	line := fmt.Sprintf("sdir=%s, odir=%s, compare=%s, execute=%t\n",
		rp.sourceRoot, rp.destRoot, strategy.Code(), execute)
	return writeLines(rp.w, [][]byte{[]byte(line)})
}

// Summarize prints every group that has duplicates, then the number of
// groups and duplicates. Nothing is moved.
func (rp *Reporter) Summarize(reg *Registry) error {
	var lines [][]byte

	for _, group := range reg.Groups() {
		if !group.HasDuplicates() {
			continue
		}
		lines = append(lines, []byte(fmt.Sprintf("\n%s\n", group.Canonical)))
		for _, dup := range group.Duplicates {
			newDir := DestinationDir(rp.sourceRoot, rp.destRoot, dup.Dir())
			lines = append(lines, []byte(fmt.Sprintf("  duplicate %s --> new path=%s\n", dup, newDir)))
		}
	}

	dupBytes := reg.DuplicateBytes()
	lines = append(lines,
		[]byte(fmt.Sprintf("\ntotal files=%d\n", reg.Len())),
		[]byte(fmt.Sprintf("total duplicates=%d\n", reg.TotalDuplicates())),
		[]byte(fmt.Sprintf("duplicate bytes=%d (%s)\n", dupBytes, FormatBytes(dupBytes))),
	)

	return writeLines(rp.w, lines)
}

// Relocated prints the outcome of a relocation pass
func (rp *Reporter) Relocated(result RelocationResult) error {
	line := fmt.Sprintf("moved=%d skipped=%d\n", result.Moved, result.Skipped)
	return writeLines(rp.w, [][]byte{[]byte(line)})
}

// writeLinesSequential writes each line with a plain Write call
func writeLinesSequential(w io.Writer, lines [][]byte) error {
	for _, line := range lines {
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
