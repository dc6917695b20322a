package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fileUnsafe is the set of characters that cannot appear in filenames
// on every supported operating system.
const fileUnsafe = `<>:"/|~\*?`

// asciiSubstitutions maps characters that NFKD decomposition cannot
// reduce to ASCII but that have an accepted ASCII stand-in.
var asciiSubstitutions = map[rune]rune{
	'‘': '\'', // left single quotation mark
	'’': '\'', // right single quotation mark
	'¡': '!',  // inverted exclamation mark
}

// ToASCII transliterates s to pure ASCII.
//
// The string is decomposed with Unicode NFKD; ASCII code points are
// kept, a small table of substitutions is applied, and anything left
// over is dropped:
//
//	ToASCII("bók")   // "bok"
//	ToASCII("’twas") // "'twas"
func ToASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFKD.String(s) {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		default:
			if sub, ok := asciiSubstitutions[r]; ok {
				b.WriteRune(sub)
			}
		}
	}
	return b.String()
}

// makeFileSafe replaces filename-unsafe characters in s. It reports
// whether any replacement was made; when changed is false the returned
// string is s itself.
func makeFileSafe(s string) (safe string, changed bool) {
	if !strings.ContainsAny(s, fileUnsafe) {
		return s, false
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		switch r {
		case '<':
			b.WriteByte('[')
		case '>':
			b.WriteByte(']')
		case ':':
			// "Title: Sub" reads better as "Title - Sub", but a
			// bare "12:34" becomes "12-34".
			if i+1 < len(s) && s[i+1] == ' ' {
				b.WriteString(" -")
			} else {
				b.WriteByte('-')
			}
		case '"':
			b.WriteByte('\'')
		case '/', '|', '~':
			b.WriteByte('-')
		case '\\', '*':
			b.WriteByte('_')
		case '?':
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), true
}

// IsFileSafe reports whether s contains no filename-unsafe characters.
func IsFileSafe(s string) bool {
	return !strings.ContainsAny(s, fileUnsafe)
}
