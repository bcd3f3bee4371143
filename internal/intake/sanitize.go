package intake

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces a client-supplied filename to a flat ASCII name that
// is safe to join onto the upload directory. Decomposable characters keep
// their base letter ("café" becomes "cafe"), path separators and whitespace
// become underscores, and anything else outside [A-Za-z0-9_.-] is dropped.
// The result may be empty.
func SecureFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var sb strings.Builder
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			sb.WriteRune(r)
		}
	}

	flat := strings.NewReplacer("/", " ", `\`, " ").Replace(sb.String())
	joined := strings.Join(strings.Fields(flat), "_")
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(joined, ""), "._")
}
