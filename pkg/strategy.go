package dupmirror

import (
	"fmt"
	"strconv"
)

// Strategy decides which single FileRecord attribute defines a duplicate.
// A registry keeps one Strategy for its whole lifetime.
type Strategy interface {
	// Code is the -t value selecting this strategy
	Code() string
	// Name is a human-readable label
	Name() string
	// Key returns the scalar attribute the strategy compares
	Key(rec *FileRecord) string
	// Matches reports whether candidate is equivalent to existing
	Matches(candidate, existing *FileRecord) bool
}

type byName struct{}

func (byName) Code() string                  { return StrategyCodeName }
func (byName) Name() string                  { return "name" }
func (byName) Key(rec *FileRecord) string    { return rec.Name() }
func (byName) Matches(c, e *FileRecord) bool { return c.Name() == e.Name() }

type bySize struct{}

func (bySize) Code() string                  { return StrategyCodeSize }
func (bySize) Name() string                  { return "size" }
func (bySize) Key(rec *FileRecord) string    { return strconv.FormatInt(rec.Size(), 10) }
func (bySize) Matches(c, e *FileRecord) bool { return c.Size() == e.Size() }

type byHash struct{}

func (byHash) Code() string                  { return StrategyCodeHash }
func (byHash) Name() string                  { return "hash" }
func (byHash) Key(rec *FileRecord) string    { return rec.Digest() }
func (byHash) Matches(c, e *FileRecord) bool { return c.Digest() == e.Digest() }

// Predefined strategies
var (
	ByName Strategy = byName{}
	BySize Strategy = bySize{}
	ByHash Strategy = byHash{}
)

// AllowedStrategyCodes lists the accepted -t values in display order
var AllowedStrategyCodes = []string{StrategyCodeSize, StrategyCodeName, StrategyCodeHash}

// ParseStrategy returns the strategy for a -t code (n, s or h)
func ParseStrategy(code string) (Strategy, error) {
	switch code {
	case StrategyCodeName:
		return ByName, nil
	case StrategyCodeSize:
		return BySize, nil
	case StrategyCodeHash:
		return ByHash, nil
	default:
		return nil, fmt.Errorf("unknown compare strategy %q", code)
	}
}
