package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Name canonicalizes a display name for use as a lookup key:
// surrounding/repeated whitespace is collapsed and case is folded.
func Name(s string) string {
	return folder.String(strings.Join(strings.Fields(s), " "))
}
