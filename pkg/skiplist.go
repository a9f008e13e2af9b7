package dupmirror

import (
	"strings"

	zcsl "github.com/mattkeenan/zerocopyskiplist"
)

// groupRef is the skiplist item: one equivalence key pointing at its group
type groupRef struct {
	key   string
	group *DuplicateGroup
}

// groupIndex maps a strategy key to the group that owns it
type groupIndex struct {
	skiplist *zcsl.ZeroCopySkiplist[groupRef, string, string]
	context  string
}

// newGroupIndex creates an empty index. context tags every entry with the
// strategy name so a dump of the index shows which rule built it.
func newGroupIndex(maxLevels int, context string) *groupIndex {
	if maxLevels < 8 {
		maxLevels = 16
	}

	getKeyFromItem := func(ref *groupRef) string {
		return ref.key
	}

	getItemSize := func(ref *groupRef) int {
		return len(ref.key)
	}

	cmpKey := func(a, b string) int {
		return strings.Compare(a, b)
	}

	return &groupIndex{
		skiplist: zcsl.MakeZeroCopySkiplist[groupRef, string, string](
			maxLevels,
			getKeyFromItem,
			getItemSize,
			cmpKey,
		),
		context: context,
	}
}

// Find returns the group for key or nil
func (gi *groupIndex) Find(key string) *DuplicateGroup {
	itemPtr, _ := gi.skiplist.Find(key)
	if itemPtr == nil {
		return nil
	}
	return itemPtr.Item().group
}

// Insert adds key -> group. Keys are only inserted once, when the group's
// canonical file is first seen.
func (gi *groupIndex) Insert(key string, group *DuplicateGroup) bool {
	return gi.skiplist.Insert(&groupRef{key: key, group: group}, gi.context)
}

// Length returns the number of indexed keys
func (gi *groupIndex) Length() int {
	return gi.skiplist.Length()
}
