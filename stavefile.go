//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const binary = "bin/pystylecheck"

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"g":   Test.Golden,
	"l":   Lint.Default,
	"c":   Check,
	"fmt": Lint.Fmt,
}

type (
	Test st.Namespace
	Lint st.Namespace
	CI   st.Namespace
)

// Build compiles bin/pystylecheck when its sources changed.
// tree-sitter is a cgo package, so a C compiler must be available.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	return sh.RunWith(map[string]string{"CGO_ENABLED": "1"},
		"go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/pystylecheck")
}

// Check formats, lints and tests.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes bin/ and coverage output.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install runs go install with version info.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/pystylecheck")
}

// Sample checks the golden-test Python files with a fresh build.
func Sample() error {
	st.Deps(Build)
	return sh.RunV(binary, "--summary", "pkg/lint/rules/testdata")
}

// Default runs every package with the race detector and coverage.
func (Test) Default() error {
	return gotestsum("./...", "-race", "-coverprofile=coverage.out", "-covermode=atomic")
}

// Parser runs the tree-sitter parser and pyast tests only.
func (Test) Parser() error {
	return gotestsum("./pkg/parser/...", "./pkg/pyast/...")
}

// Golden rewrites pkg/lint/rules/testdata/*.diags.txt from the current rules.
func (Test) Golden() error {
	return sh.RunV("go", "test", "./pkg/lint/rules", "-run", "TestGolden", "-update")
}

// Default runs golangci-lint with --fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt runs gofmt over the module.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// Gate is the CI entry point.
func (CI) Gate() {
	st.SerialDeps(CI.Fmt, CI.Lint, Build, Test.Default, CI.Tidy)
}

// Fmt fails when gofmt would change any file.
func (CI) Fmt() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("gofmt needed:\n%s", out)
	}
	return nil
}

// Lint runs golangci-lint without fixing.
func (CI) Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Tidy fails when go mod tidy would change go.mod or go.sum.
func (CI) Tidy() error {
	files := []string{"go.mod", "go.sum"}

	before := make([][]byte, len(files))
	for i, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		before[i] = data
	}

	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}

	for i, name := range files {
		after, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		if !bytes.Equal(before[i], after) {
			return errors.New(name + " is not tidy; run go mod tidy and commit the result")
		}
	}
	return nil
}

// gotestsum runs go test through gotestsum. Arguments starting with "-"
// are test flags, the rest are package patterns.
func gotestsum(args ...string) error {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	cmdArgs := []string{"tool", "gotestsum", "-f", "pkgname-and-test-fails", "--", "-p", procs}
	cmdArgs = append(cmdArgs, args...)
	return sh.RunV("go", cmdArgs...)
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags injects version, commit and build date into main.
func ldflags() string {
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339))
}
