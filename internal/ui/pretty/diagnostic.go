package pretty

import "fmt"

// FormatFileError formats a file that could not be checked as
// "{path}: error: {message}".
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n",
		s.FilePath.Render(path),
		s.Error.Render(fmt.Sprintf("error: %v", err)),
	)
}
