// Package fileutil walks a source tree and yields the files worth scanning for
// stacking-order declarations.
//
// # Walking
//
// Walk validates the root up front and returns a lazy iterator. Ranging over it
// performs the traversal; ranging again re-walks the tree from scratch:
//
//	files, err := fileutil.Walk("web/src", fileutil.DefaultWalkOptions())
//	if err != nil {
//	    return err // *models.FatalError: root missing, not a directory, unreadable
//	}
//	for path := range files {
//	    fmt.Println(path)
//	}
//
// # Filtering
//
//   - Entries below the root whose name starts with "." are pruned. Hidden
//     directories take their whole subtree with them.
//   - Directories listed in ExcludeDirs (node_modules by default) are pruned.
//   - Only regular files with an allowed extension (case-insensitive) are
//     yielded. Symlinks are yielded when they resolve to a regular file;
//     symlinked directories are never followed.
//
// # Error Tolerance
//
// Entries that fail during traversal (permission denied, vanished files) are
// dropped and the walk continues. When WalkOptions.Logger is set, each dropped
// entry is reported at debug level. Only a root that cannot be traversed at all
// is an error.
//
// # Ordering
//
// Entries are visited in lexical order within each directory, so two walks of an
// unmodified tree yield the same sequence.
package fileutil
