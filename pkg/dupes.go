package dupmirror

import (
	"sync"
)

// DuplicateGroup is a canonical file plus the later files equivalent to it,
// in discovery order. The canonical file is never moved.
type DuplicateGroup struct {
	Canonical  *FileRecord
	Duplicates []*FileRecord
}

// HasDuplicates reports whether the group has at least one duplicate
func (g *DuplicateGroup) HasDuplicates() bool {
	return len(g.Duplicates) > 0
}

// DuplicateBytes returns the summed size of the group's duplicates
func (g *DuplicateGroup) DuplicateBytes() int64 {
	var total int64
	for _, d := range g.Duplicates {
		total += d.Size()
	}
	return total
}

// Registry holds the duplicate groups of one run in the order their
// canonical files were first seen.
type Registry struct {
	mu       sync.Mutex
	strategy Strategy
	groups   []*DuplicateGroup
	index    *groupIndex // nil means linear scan
}

// NewRegistry creates an empty registry bound to strategy. With indexed set,
// lookups go through a key index instead of scanning every group; both give
// the same first-seen-wins result.
func NewRegistry(strategy Strategy, indexed bool) *Registry {
	r := &Registry{strategy: strategy}
	if indexed {
		r.index = newGroupIndex(16, strategy.Name())
	}
	return r
}

// Strategy returns the strategy fixed at construction
func (r *Registry) Strategy() Strategy {
	return r.strategy
}

// Classify appends rec to the group it matches, or starts a new group with
// rec as canonical.
func (r *Registry) Classify(rec *FileRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if group := r.lookupLocked(rec); group != nil {
		group.Duplicates = append(group.Duplicates, rec)
		if IsDebugEnabled("registry") {
			VerboseLog(3, "Classify: %s duplicates %s", rec.Path(), group.Canonical.Path())
		}
		return
	}

	group := &DuplicateGroup{Canonical: rec}
	r.groups = append(r.groups, group)
	if r.index != nil {
		r.index.Insert(r.strategy.Key(rec), group)
	}
	if IsDebugEnabled("registry") {
		VerboseLog(3, "Classify: %s is canonical (%s=%s)", rec.Path(), r.strategy.Name(), r.strategy.Key(rec))
	}
}

// Lookup returns the group whose canonical file matches rec, or nil
func (r *Registry) Lookup(rec *FileRecord) *DuplicateGroup {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookupLocked(rec)
}

func (r *Registry) lookupLocked(rec *FileRecord) *DuplicateGroup {
	if r.index != nil {
		return r.index.Find(r.strategy.Key(rec))
	}
	for _, group := range r.groups {
		if r.strategy.Matches(rec, group.Canonical) {
			return group
		}
	}
	return nil
}

// Groups returns the groups in insertion order. The slice must not be
// modified by the caller.
func (r *Registry) Groups() []*DuplicateGroup {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.groups
}

// Len returns the number of groups
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.groups)
}

// TotalDuplicates returns the number of duplicate files across all groups
func (r *Registry) TotalDuplicates() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, group := range r.groups {
		total += len(group.Duplicates)
	}
	return total
}

// DuplicateBytes returns the summed size of all duplicates
func (r *Registry) DuplicateBytes() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int64
	for _, group := range r.groups {
		total += group.DuplicateBytes()
	}
	return total
}
