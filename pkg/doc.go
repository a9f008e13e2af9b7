// Package dupmirror finds duplicate files in a directory tree and can move
// the duplicates into a second tree that mirrors their relative location.
//
// # Core API
//
// Run performs a complete pass: walk, classify, report and, optionally,
// relocate:
//
//	strategy, _ := dupmirror.ParseStrategy("h")
//	result, err := dupmirror.Run(dupmirror.Options{
//		SourceRoot: "/photos",
//		DestRoot:   "/photos-dups",
//		Strategy:   strategy,
//		Execute:    false,
//	})
//
// # Equivalence
//
// Exactly one attribute decides whether two files are duplicates for a run:
// the base name (ByName), the size in bytes (BySize) or the content digest
// (ByHash). The first file seen for an attribute value becomes the group's
// canonical file and is never moved; every later match is a duplicate.
//
// # Building blocks
//
// The pieces Run uses are exported for callers that need a different flow:
//   - ContentHasher and FileRecord
//   - Registry and DuplicateGroup
//   - WalkFiles
//   - Relocator and DestinationDir
//   - Reporter
//
// # Configuration
//
// LoadConfig reads an optional INI file; SetVerboseLevel and SetDebugFlags
// control diagnostic output on stderr.
package dupmirror
