package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/pystylecheck/internal/ui/pretty"
)

func TestFormatFileError(t *testing.T) {
	styles := pretty.NewStyles(false)

	got := styles.FormatFileError("pkg/bad.py", errors.New("parse failure: invalid syntax near \"(\""))

	assert.Equal(t, "pkg/bad.py: error: parse failure: invalid syntax near \"(\"\n", got)
}
