package sanitize

import (
	"regexp"
	"strings"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	unsafeCharPattern = regexp.MustCompile(`[<>'"]`)
)

// Clean strips HTML-like tags and the characters <, >, ', " from user input
// and trims surrounding whitespace. Tags are removed before the loose
// characters so partial fragments don't survive the second pass.
func Clean(input string) string {
	s := strings.TrimSpace(input)
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = unsafeCharPattern.ReplaceAllString(s, "")
	return s
}
