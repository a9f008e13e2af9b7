package dupmirror

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// RunState is the driver's position in walk -> report -> relocate
type RunState int

const (
	StateIdle RunState = iota
	StateWalking
	StateReported
	StateRelocating
	StateDone
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateReported:
		return "reported"
	case StateRelocating:
		return "relocating"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// Options configures one run
type Options struct {
	SourceRoot string
	DestRoot   string
	Strategy   Strategy  // nil selects the configured strategy
	Execute    bool      // false is report-only
	Fs         afero.Fs  // nil selects the OS filesystem
	Out        io.Writer // nil selects stdout
	Config     *Config   // nil selects DefaultConfig
}

// RunResult describes a finished (or aborted) run
type RunResult struct {
	Registry   *Registry
	Files      int // files classified
	Unreadable int // files skipped because hashing failed
	Relocation RelocationResult
	State      RunState
}

// Run walks SourceRoot, classifies every file, prints the report and, when
// Execute is set, relocates the duplicates under DestRoot. There is no
// rollback: a relocation error leaves earlier moves in place.
func Run(opts Options) (*RunResult, error) {
	defer VerboseEnter()()

	if opts.SourceRoot == "" || opts.DestRoot == "" {
		return nil, NewArgumentError("source and destination directories are required")
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Config == nil {
		opts.Config = DefaultConfig()
	}
	all := opts.Config.GetAllConfig()

	if opts.Strategy == nil {
		strategy, err := ParseStrategy(all.Compare.Strategy)
		if err != nil {
			return nil, &ArgumentError{Msg: err.Error(), Code: ExitUsage}
		}
		opts.Strategy = strategy
	}

	algorithm, err := GetHashAlgorithm(all.Hash.Default)
	if err != nil {
		return nil, &ArgumentError{Msg: err.Error(), Code: ExitUsage}
	}
	blockSize, err := opts.Config.HashBufferSize()
	if err != nil {
		return nil, &ArgumentError{Msg: err.Error(), Code: ExitUsage}
	}

	result := &RunResult{
		Registry: NewRegistry(opts.Strategy, all.Registry.Index),
		State:    StateIdle,
	}
	hasher := NewContentHasher(opts.Fs, algorithm, blockSize)
	VerboseLog(2, "hashing with %s in %s blocks", HashTypeName(algorithm.TypeID), FormatBytes(int64(blockSize)))
	reporter := NewReporter(opts.Out, opts.SourceRoot, opts.DestRoot)

	if err := reporter.Header(opts.Strategy, opts.Execute); err != nil {
		return result, err
	}

	result.transition(StateWalking)
	err = WalkFiles(opts.Fs, opts.SourceRoot, func(dir string, siblings []string, name string) error {
		rec, err := NewFileRecord(hasher, dir, siblings, name)
		if err != nil {
			if all.Scan.SkipUnreadable && IsIOError(err) {
				VerboseLog(0, "skipping unreadable file: %v", err)
				result.Unreadable++
				return nil
			}
			return err
		}
		result.Registry.Classify(rec)
		result.Files++
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("scan of %s failed: %w", opts.SourceRoot, err)
	}
	VerboseLog(1, "classified %d files into %d groups using %s", result.Files, result.Registry.Len(), opts.Strategy.Name())

	if err := reporter.Summarize(result.Registry); err != nil {
		return result, err
	}
	result.transition(StateReported)

	if !opts.Execute {
		result.transition(StateDone)
		return result, nil
	}

	result.transition(StateRelocating)
	relocation, err := NewRelocator(opts.Fs, opts.SourceRoot, opts.DestRoot).Relocate(result.Registry)
	result.Relocation = relocation
	if err != nil {
		return result, fmt.Errorf("relocation aborted after %d moves: %w", relocation.Moved, err)
	}
	if err := reporter.Relocated(relocation); err != nil {
		return result, err
	}
	result.transition(StateDone)

	return result, nil
}

func (r *RunResult) transition(to RunState) {
	VerboseLog(2, "run state %s -> %s", r.State, to)
	r.State = to
}
