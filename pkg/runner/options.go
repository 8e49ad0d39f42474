// Package runner discovers Python files and checks them concurrently while
// keeping the output in sorted path order.
package runner

import "github.com/yaklabco/pystylecheck/pkg/config"

// PythonExtension is the suffix selected during directory discovery.
// It is matched case-sensitively.
const PythonExtension = ".py"

// Options controls multi-file checking behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// IgnoreGlobs are glob patterns used to skip files or directories found
	// while walking a directory. Patterns match the path relative to the
	// walked directory or the base name.
	IgnoreGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// DetectShebang also selects extensionless files whose shebang names Python.
	DetectShebang bool

	// SkipVendored drops virtualenv, site-packages and similar third-party trees.
	SkipVendored bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.GOMAXPROCS(0)).
	Jobs int
}

// OptionsFromConfig builds runner options for paths from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths ...string) Options {
	opts := Options{Paths: paths}
	if cfg == nil {
		return opts
	}

	opts.IgnoreGlobs = append([]string(nil), cfg.Ignore...)
	opts.FollowSymlinks = cfg.FollowSymlinks
	opts.DetectShebang = cfg.DetectShebang
	opts.SkipVendored = cfg.SkipVendored
	opts.Jobs = cfg.Jobs

	return opts
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
