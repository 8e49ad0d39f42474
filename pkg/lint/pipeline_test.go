package lint_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/pystylecheck/pkg/lint"
	"github.com/yaklabco/pystylecheck/pkg/pyast"
)

func newTestPipeline(parser lint.Parser) *lint.Pipeline {
	reg := lint.NewRegistry()
	reg.Register(newCheckRule("S003", func(lc *lint.LineContext) (string, bool) {
		return "Unnecessary semicolon", lc.Scan().Semicolon
	}))
	return lint.NewPipeline(lint.NewEngine(parser, reg))
}

func TestPipeline_ProcessFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mod.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1;\n"), 0o644))

	result, err := newTestPipeline(&mockParser{}).ProcessFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, result.Path)
	require.NotNil(t, result.Info)
	assert.Equal(t, int64(7), result.Info.Size)
	require.Len(t, result.Diagnostics, 1)
	assert.True(t, result.HasIssues())
}

func TestPipeline_ProcessFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestPipeline(&mockParser{}).ProcessFile(context.Background(),
		filepath.Join(t.TempDir(), "missing.py"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, lint.ErrFileNotFound))
}

func TestPipeline_ProcessContent_ParseFailure(t *testing.T) {
	t.Parallel()

	parser := &mockParser{
		parseFunc: func(context.Context, string, []byte) (*pyast.FileSnapshot, error) {
			return nil, &pyast.SyntaxError{Line: 2, Column: 1, Msg: "invalid syntax"}
		},
	}

	_, err := newTestPipeline(parser).ProcessContent(context.Background(), "bad.py", []byte("x\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, lint.ErrParseFailure))
	assert.Equal(t, "parse failure: syntax error at line 2, column 1: invalid syntax", err.Error())

	var syntaxErr *pyast.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestPipeline_ProcessContent_Clean(t *testing.T) {
	t.Parallel()

	result, err := newTestPipeline(&mockParser{}).ProcessContent(context.Background(), "ok.py", []byte("x = 1\n"))
	require.NoError(t, err)
	assert.False(t, result.HasIssues())
	assert.Nil(t, result.Info)
}

func TestPipeline_ProcessContent_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestPipeline(&mockParser{}).ProcessContent(ctx, "ok.py", []byte("x = 1\n"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, lint.ErrParseFailure))
}
