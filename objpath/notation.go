package objpath

import (
	"regexp"
	"strings"
)

var (
	dotIndex     = regexp.MustCompile(`\.(\d+)`)
	bracketIndex = regexp.MustCompile(`\[(\d+)\]`)
)

// Expand rewrites every ".N" in p as "[N]".
func Expand(p string) string {
	return dotIndex.ReplaceAllString(p, "[$1]")
}

// Compress rewrites every "[N]" in p as ".N".
func Compress(p string) string {
	return bracketIndex.ReplaceAllString(p, ".$1")
}

// Canonical gives the dotted form of p. Canonical(Canonical(p)) == Canonical(p).
func Canonical(p string) string {
	return Compress(Expand(p))
}

// Segments splits the canonical form of p into keys. The empty path has no
// segments.
func Segments(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(Canonical(p), ".")
}
