package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/yaklabco/pystylecheck/pkg/runner"
)

// writeTree creates files (slash-separated, relative to dir) with the given content.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

// joinAll prefixes each slash-separated name with dir.
func joinAll(dir string, names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, filepath.Join(dir, filepath.FromSlash(n)))
	}
	return out
}

func discover(t *testing.T, opts runner.Options) []string {
	t.Helper()

	files, err := runner.Discover(context.Background(), opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	return files
}

func TestDiscover_SingleFileAnyExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"script.txt": "x = 1\n"})

	path := filepath.Join(dir, "script.txt")
	files := discover(t, runner.Options{Paths: []string{path}})

	if !slices.Equal(files, []string{path}) {
		t.Errorf("expected [%s], got %v", path, files)
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"main.py":          "",
		"pkg/util.py":      "",
		"pkg/README.md":    "",
		"pkg/upper.PY":     "",
		"pkg/types.pyi":    "",
		".hidden/inner.py": "",
		"notes.txt":        "",
	})

	files := discover(t, runner.Options{Paths: []string{dir}})
	want := joinAll(dir, ".hidden/inner.py", "main.py", "pkg/util.py")

	if !slices.Equal(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

func TestDiscover_SortedOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"b.py": "", "a.py": "", "c/a.py": ""})

	files := discover(t, runner.Options{Paths: []string{dir}})
	want := joinAll(dir, "a.py", "b.py", "c/a.py")

	if !slices.Equal(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

func TestDiscover_RelativeDisplayPaths(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"proj/a.py": "", "proj/sub/b.py": ""})
	t.Chdir(dir)

	sep := string(filepath.Separator)
	tests := []struct {
		input string
		want  []string
	}{
		{input: "proj", want: []string{"proj" + sep + "a.py", "proj" + sep + "sub" + sep + "b.py"}},
		{input: "." + sep + "proj", want: []string{"." + sep + "proj" + sep + "a.py", "." + sep + "proj" + sep + "sub" + sep + "b.py"}},
		{input: "proj" + sep, want: []string{"proj" + sep + "a.py", "proj" + sep + "sub" + sep + "b.py"}},
		{input: "." + sep + "proj" + sep + "a.py", want: []string{"." + sep + "proj" + sep + "a.py"}},
		{input: "proj" + sep + "sub" + sep + ".." + sep + "a.py", want: []string{"proj" + sep + "sub" + sep + ".." + sep + "a.py"}},
	}

	for _, tt := range tests {
		files := discover(t, runner.Options{Paths: []string{tt.input}})
		if !slices.Equal(files, tt.want) {
			t.Errorf("Discover(%q): expected %v, got %v", tt.input, tt.want, files)
		}
	}
}

func TestDiscover_CurrentDirectoryKeepsDotPrefix(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.py": "", "pkg/b.py": ""})
	t.Chdir(dir)

	sep := string(filepath.Separator)
	files := discover(t, runner.Options{Paths: []string{"."}})
	want := []string{"." + sep + "a.py", "." + sep + "pkg" + sep + "b.py"}

	if !slices.Equal(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

func TestDiscover_IgnoreGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"app.py":               "",
		"test_app.py":          "",
		"build/gen.py":         "",
		"pkg/migrations/m1.py": "",
		"pkg/models.py":        "",
	})

	files := discover(t, runner.Options{
		Paths:       []string{dir},
		IgnoreGlobs: []string{"test_*.py", "build/**", "**/migrations"},
	})
	want := joinAll(dir, "app.py", "pkg/models.py")

	if !slices.Equal(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

func TestDiscover_Deduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.py": ""})

	files := discover(t, runner.Options{Paths: []string{dir, filepath.Join(dir, "a.py")}})
	if len(files) != 1 {
		t.Errorf("expected 1 file, got %v", files)
	}
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths: []string{filepath.Join(t.TempDir(), "missing")},
	})
	if !errors.Is(err, runner.ErrPathNotFound) {
		t.Fatalf("expected ErrPathNotFound, got %v", err)
	}
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.py": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Discover(ctx, runner.Options{Paths: []string{dir}}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestDiscover_ShebangDetection(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"main.py":     "",
		"bin/tool":    "#!/usr/bin/env python3\nprint(1)\n",
		"bin/deploy":  "#!/bin/sh\necho hi\n",
		"bin/empty":   "",
		"bin/tool.sh": "#!/usr/bin/env python3\n",
	})

	without := discover(t, runner.Options{Paths: []string{dir}})
	if !slices.Equal(without, joinAll(dir, "main.py")) {
		t.Errorf("expected only main.py without detection, got %v", without)
	}

	with := discover(t, runner.Options{Paths: []string{dir}, DetectShebang: true})
	want := joinAll(dir, "bin/tool", "main.py")
	if !slices.Equal(with, want) {
		t.Errorf("expected %v, got %v", want, with)
	}
}

func TestDiscover_SkipVendored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"app.py":                    "",
		"node_modules/pkg/build.py": "",
	})

	all := discover(t, runner.Options{Paths: []string{dir}})
	if len(all) != 2 {
		t.Errorf("expected 2 files, got %v", all)
	}

	filtered := discover(t, runner.Options{Paths: []string{dir}, SkipVendored: true})
	if !slices.Equal(filtered, joinAll(dir, "app.py")) {
		t.Errorf("expected only app.py, got %v", filtered)
	}
}

func TestDiscover_FileSymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"real.py": ""})

	if err := os.Symlink(filepath.Join(dir, "real.py"), filepath.Join(dir, "link.py")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files := discover(t, runner.Options{Paths: []string{dir}})
	if !slices.Equal(files, joinAll(dir, "link.py", "real.py")) {
		t.Errorf("expected link and real file, got %v", files)
	}
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outside := t.TempDir()
	writeTree(t, outside, map[string]string{"lib.py": ""})
	writeTree(t, dir, map[string]string{"main.py": ""})

	if err := os.Symlink(outside, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files := discover(t, runner.Options{Paths: []string{dir}})
	if !slices.Equal(files, joinAll(dir, "main.py")) {
		t.Errorf("directory symlink followed by default: %v", files)
	}

	files = discover(t, runner.Options{Paths: []string{dir}, FollowSymlinks: true})
	want := joinAll(dir, "linked/lib.py", "main.py")
	if !slices.Equal(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
}

func TestDiscover_SymlinkCycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"pkg/mod.py": ""})

	if err := os.Symlink(dir, filepath.Join(dir, "pkg", "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files := discover(t, runner.Options{Paths: []string{dir}, FollowSymlinks: true})
	if !slices.Equal(files, joinAll(dir, "pkg/mod.py")) {
		t.Errorf("expected the cycle to be cut at the root, got %v", files)
	}
}

func TestValidateGlob(t *testing.T) {
	t.Parallel()

	for _, good := range []string{"*.py", "build/**", "**/migrations", "a/**/b.py"} {
		if err := runner.ValidateGlob(good); err != nil {
			t.Errorf("ValidateGlob(%q) error = %v", good, err)
		}
	}
	if err := runner.ValidateGlob("[abc"); err == nil {
		t.Error("expected error for malformed glob")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	opts := runner.OptionsFromConfig(nil, "src")
	if !slices.Equal(opts.Paths, []string{"src"}) || opts.Jobs != 0 {
		t.Errorf("unexpected options from nil config: %+v", opts)
	}
}
