package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/pystylecheck/pkg/langdetect"
)

// ErrPathNotFound indicates that a user-supplied path does not exist.
var ErrPathNotFound = errors.New("path not found")

// shebangProbe is the number of bytes read when sniffing extensionless files.
const shebangProbe = 256

// Discover finds Python files for opts.Paths.
// A directory is walked recursively and yields every file whose name ends in
// ".py"; a file path is returned as given regardless of its extension.
// Returned paths keep the input path as typed, followed by the separator and
// the path relative to it, and are sorted lexicographically.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		info, err := os.Stat(inputPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, inputPath)
			}
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			add(inputPath)
			continue
		}

		root := filepath.Clean(inputPath)
		w := &walker{opts: opts, visited: make(map[string]struct{})}
		if real, err := filepath.EvalSymlinks(root); err == nil {
			w.visited[real] = struct{}{}
		}

		discovered, err := w.walk(ctx, root, inputPath)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	// Sort for deterministic ordering.
	sort.Strings(files)

	return files, nil
}

// walker carries the per-root state of a directory walk.
type walker struct {
	opts Options

	// visited holds the resolved directories already entered through symlinks.
	visited map[string]struct{}
}

// walk visits dir (a real directory) and reports files under the display
// prefix, which differs from dir only when a symlink was followed.
func (w *walker) walk(ctx context.Context, dir, display string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			// Unreadable directories are skipped, not fatal.
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			relPath = path
		}
		shown := displayPath(display, relPath)

		if entry.IsDir() {
			if path == dir {
				return nil
			}
			if matchesAny(relPath, w.opts.IgnoreGlobs) {
				return filepath.SkipDir
			}
			if w.opts.SkipVendored && langdetect.IsVendored(filepath.ToSlash(relPath)+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Inaccessible targets are skipped.
			}
			if info.IsDir() {
				if !w.opts.FollowSymlinks || matchesAny(relPath, w.opts.IgnoreGlobs) {
					return nil
				}
				if _, done := w.visited[realPath]; done {
					return nil
				}
				w.visited[realPath] = struct{}{}

				// Walk the target so WalkDir does not recurse into the link itself.
				sub, err := w.walk(ctx, realPath, shown)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if w.selects(path, relPath) {
			files = append(files, shown)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", display, err)
	}

	return files, nil
}

// displayPath appends relPath to the user's root without cleaning it, so
// "./src" yields "./src/a.py". A root already ending in a separator gets no
// second one.
func displayPath(root, relPath string) string {
	if relPath == "." {
		return root
	}
	if strings.HasSuffix(root, string(filepath.Separator)) || strings.HasSuffix(root, "/") {
		return root + relPath
	}
	return root + string(filepath.Separator) + relPath
}

// selects reports whether a file found while walking should be checked.
func (w *walker) selects(path, relPath string) bool {
	if matchesAny(relPath, w.opts.IgnoreGlobs) {
		return false
	}
	if w.opts.SkipVendored && langdetect.IsVendored(filepath.ToSlash(relPath)) {
		return false
	}
	if strings.HasSuffix(filepath.Base(path), PythonExtension) {
		return true
	}
	return w.opts.DetectShebang && filepath.Ext(path) == "" && isPythonScript(path)
}

// isPythonScript sniffs the first bytes of an extensionless file.
func isPythonScript(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, shebangProbe)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false
	}

	return langdetect.IsPythonScript(path, buf[:n])
}

// ValidateGlob reports whether pattern is a well-formed ignore glob.
func ValidateGlob(pattern string) error {
	for _, part := range strings.Split(filepath.ToSlash(pattern), "**") {
		if _, err := filepath.Match(strings.Trim(part, "/"), ""); err != nil {
			return fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
	}
	return nil
}

// matchesAny checks if the path matches any of the patterns.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern.
// It supports patterns like "*.py", "build/**", "**/migrations", etc.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStarPattern(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	// Also try matching against just the file name.
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStarPattern handles ** glob patterns.
func matchDoubleStarPattern(path, pattern string) bool {
	parts := strings.Split(pattern, "**")

	// "**/name" matches name as any path component.
	if parts[0] == "" && len(parts) == 2 {
		suffix := strings.TrimPrefix(parts[1], "/")
		if suffix == "" {
			return true
		}
		if path == suffix || strings.HasSuffix(path, "/"+suffix) {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if matched, err := filepath.Match(suffix, part); err == nil && matched {
				return true
			}
		}
		return false
	}

	// "dir/**" matches everything under dir.
	if len(parts) == 2 && (parts[1] == "" || parts[1] == "/") {
		prefix := strings.TrimSuffix(parts[0], "/")
		if prefix == "" {
			return true
		}
		return strings.HasPrefix(path, prefix+"/") || path == prefix
	}

	// "a/**/b": prefix at the start, suffix at the end or as the base name.
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[len(parts)-1], "/")

	if prefix != "" && !strings.HasPrefix(path, prefix+"/") {
		return false
	}
	if suffix == "" || strings.HasSuffix(path, "/"+suffix) {
		return true
	}
	matched, err := filepath.Match(suffix, filepath.Base(path))
	return err == nil && matched
}
