// Package langdetect identifies Python sources that discovery cannot
// recognise by extension alone. It uses go-enry for shebang parsing and
// vendored-path classification.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langPython is the lowercased go-enry name for Python.
const langPython = "python"

// sniffLimit bounds how much of a file is inspected for a shebang.
const sniffLimit = 512

// IsPythonScript reports whether an extensionless file is a Python program.
// Only the shebang is trusted; files with an extension are never scripts.
func IsPythonScript(path string, content []byte) bool {
	if filepath.Ext(path) != "" || !bytes.HasPrefix(content, []byte("#!")) {
		return false
	}

	lang, safe := enry.GetLanguageByShebang(head(content))
	return safe && strings.ToLower(lang) == langPython
}

// IsVendored reports whether a slash-separated relative path points into
// third-party code such as a virtualenv or site-packages tree.
func IsVendored(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	if relPath == "" || relPath == "." {
		return false
	}
	return enry.IsVendor(relPath)
}

func head(content []byte) []byte {
	if len(content) > sniffLimit {
		return content[:sniffLimit]
	}
	return content
}
