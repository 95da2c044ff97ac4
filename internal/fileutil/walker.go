package fileutil

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/zindex-tree/internal/logger"
	"github.com/harrison/zindex-tree/internal/models"
)

// DefaultExtensions are the front-end source extensions scanned by default.
var DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// DefaultExcludeDirs are the dependency-cache directories pruned by default.
var DefaultExcludeDirs = []string{"node_modules"}

// WalkOptions configures the directory walk
type WalkOptions struct {
	// Extensions is a list of file extensions to include (e.g., ".ts", "tsx")
	Extensions []string
	// ExcludeDirs is a list of directory names to prune with their subtree
	ExcludeDirs []string
	// Logger receives debug messages for dropped entries (optional)
	Logger logger.Logger
}

// DefaultWalkOptions returns the options used by the CLI.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Extensions:  append([]string(nil), DefaultExtensions...),
		ExcludeDirs: append([]string(nil), DefaultExcludeDirs...),
	}
}

// Walk checks that root can be traversed and returns a lazy sequence of
// candidate file paths below it. Paths are root-joined, as filepath.WalkDir
// produces them. A root that is a symlink to a directory is followed; paths
// are still reported under the root as given.
func Walk(root string, opts WalkOptions) (iter.Seq[string], error) {
	if err := checkRoot(root); err != nil {
		return nil, &models.FatalError{Root: root, Err: err}
	}
	walkRoot, err := resolveRoot(root)
	if err != nil {
		return nil, &models.FatalError{Root: root, Err: err}
	}

	extMap := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	excludeMap := make(map[string]bool, len(opts.ExcludeDirs))
	for _, dir := range opts.ExcludeDirs {
		excludeMap[dir] = true
	}

	w := &walker{root: root, walkRoot: walkRoot, exts: extMap, exclude: excludeMap, log: opts.Logger}
	return w.seq, nil
}

// resolveRoot returns the directory to hand to filepath.WalkDir, which does
// not descend into a root that is itself a symlink.
func resolveRoot(root string) (string, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return "", fmt.Errorf("failed to access directory: %w", err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return root, nil
	}
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}
	return resolved, nil
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", root)
	}
	f, err := os.Open(root)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	return f.Close()
}

type walker struct {
	root     string // as given by the caller
	walkRoot string // root with a top-level symlink resolved
	exts     map[string]bool
	exclude  map[string]bool
	log      logger.Logger
}

func (w *walker) seq(yield func(string) bool) {
	filepath.WalkDir(w.walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.debugf("skipping %s: %v", path, err)
			return nil
		}

		if path != w.walkRoot && w.pruned(d) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !w.candidate(path, d) {
			return nil
		}

		if !yield(w.display(path)) {
			return filepath.SkipAll
		}
		return nil
	})
}

// display rebases a walked path onto the caller's root.
func (w *walker) display(path string) string {
	if w.walkRoot == w.root {
		return path
	}
	rel, err := filepath.Rel(w.walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(w.root, rel)
}

// pruned reports whether d is hidden or an excluded directory.
func (w *walker) pruned(d fs.DirEntry) bool {
	if strings.HasPrefix(d.Name(), ".") {
		return true
	}
	return d.IsDir() && w.exclude[d.Name()]
}

// candidate reports whether a non-directory entry is a regular source file.
func (w *walker) candidate(path string, d fs.DirEntry) bool {
	if !w.exts[strings.ToLower(filepath.Ext(d.Name()))] {
		return false
	}

	mode := d.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			w.debugf("skipping %s: %v", path, err)
			return false
		}
		mode = info.Mode()
	}
	return mode.IsRegular()
}

func (w *walker) debugf(format string, args ...any) {
	if w.log == nil {
		return
	}
	w.log.LogDebug(fmt.Sprintf(format, args...))
}
