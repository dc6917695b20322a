// Package text provides a value type for strings that carry multiple
// synchronized representations: the display text itself, an ASCII
// transliteration (which may be manually overridden), and a form that is
// safe to use in filenames.
//
// # Text
//
// A Text is constructed once and never modified:
//
//	title := text.New("bók")
//	title.Value()    // "bók"
//	title.ASCII()    // "bok"
//	title.FileSafe() // "bok"
//
// The ASCII form can be overridden when transliteration would produce a
// poor result:
//
//	title := text.WithASCII("本", "book")
//	title.ASCII() // "book"
//
// # Concatenation
//
// Texts form a monoid under Concat with the empty Text as identity. An
// overridden ASCII form is absorbing: concatenating with an overridden
// operand yields an overridden result. This keeps manual transliterations
// from being silently demoted when titles are assembled from parts.
package text

import "strings"

// asciiState describes how a Text's ASCII form relates to its value.
type asciiState uint8

const (
	// asciiSame means the value is pure ASCII and usable as-is.
	asciiSame asciiState = iota

	// asciiDerived means the ASCII form was computed by transliteration.
	asciiDerived

	// asciiOverridden means the ASCII form was supplied by hand.
	asciiOverridden
)

// Text is an immutable string with ASCII and filename-safe forms.
//
// The zero value is the empty Text, which is the identity for Concat.
// Text is comparable: two Texts are equal when their values, ASCII forms,
// and override status all match.
type Text struct {
	value string

	// ascii is empty when state is asciiSame.
	ascii string
	state asciiState

	// fileSafe holds the replacement form only when hasFileSafe is
	// set; otherwise the ASCII form is already safe for filenames and
	// FileSafe falls back to it. The flag is needed because a valid
	// replacement form can be the empty string (a title of "?").
	fileSafe    string
	hasFileSafe bool
}

// Empty is the identity element for Concat.
var Empty = Text{}

// commaSep separates artist names in joined artist credits.
var commaSep = New(", ")

// New creates a Text from a display string.
//
// If the string is not pure ASCII, an ASCII form is derived by Unicode
// decomposition (see ToASCII). The filename-safe form is computed
// eagerly so accessors never allocate.
func New(value string) Text {
	return build(value, "", false)
}

// WithASCII creates a Text with a manually supplied ASCII form.
//
// If the override itself contains non-ASCII characters it is
// transliterated rather than rejected; the result still counts as
// overridden.
func WithASCII(value, ascii string) Text {
	return build(value, ascii, true)
}

func build(value, override string, overridden bool) Text {
	t := Text{value: value}

	switch {
	case overridden:
		t.state = asciiOverridden
		if isASCII(override) {
			t.ascii = override
		} else {
			t.ascii = ToASCII(override)
		}
	case isASCII(value):
		t.state = asciiSame
	default:
		t.state = asciiDerived
		t.ascii = ToASCII(value)
	}

	if safe, changed := makeFileSafe(t.effectiveASCII()); changed {
		t.fileSafe = safe
		t.hasFileSafe = true
	}

	return t
}

// effectiveASCII returns the ASCII string without falling back through
// fileSafe, valid for all states.
func (t Text) effectiveASCII() string {
	if t.state == asciiSame {
		return t.value
	}
	return t.ascii
}

// Value returns the display form of the text.
func (t Text) Value() string {
	return t.value
}

// ASCII returns the ASCII form of the text: the override if one was
// supplied, the derived transliteration otherwise, or the value itself
// when it is already pure ASCII.
func (t Text) ASCII() string {
	return t.effectiveASCII()
}

// FileSafe returns the ASCII form with filesystem-unsafe characters
// replaced. The substitutions are fixed because they determine real
// file names:
//
//	<  →  [
//	>  →  ]
//	:  →  " -" before a space, "-" otherwise
//	"  →  '
//	/ | ~  →  -
//	\ *    →  _
//	?  →  removed
func (t Text) FileSafe() string {
	if t.hasFileSafe {
		return t.fileSafe
	}
	return t.effectiveASCII()
}

// SortableFileSafe returns the filename-safe form with a leading
// article ("a", "an", "the", any case, followed by a space) moved to
// the end after a comma, so titles sort alphabetically:
//
//	text.New("The Wall").SortableFileSafe() // "Wall, The"
func (t Text) SortableFileSafe() string {
	fileSafe := t.FileSafe()
	article, rest, ok := splitArticle(fileSafe)
	if !ok {
		return fileSafe
	}
	return rest + ", " + article
}

// HasOverriddenASCII reports whether the ASCII form was manually
// supplied rather than derived from the value.
func (t Text) HasOverriddenASCII() bool {
	return t.state == asciiOverridden
}

// IsEmpty reports whether the Text is the empty Text.
func (t Text) IsEmpty() bool {
	return t == Empty
}

// String implements fmt.Stringer, returning the display form.
func (t Text) String() string {
	return t.value
}

// Concat returns the concatenation of t and other.
//
// The values append directly. The ASCII state follows an absorbing
// algebra: only two same-as-value operands produce a same-as-value
// result, and an override on either side marks the result overridden.
// The filename-safe form is recomputed from the concatenated parts and
// re-scanned for unsafe characters rather than assumed safe.
func (t Text) Concat(other Text) Text {
	if t == Empty {
		return other
	}
	if other == Empty {
		return t
	}

	out := Text{value: t.value + other.value}

	if t.state == asciiSame && other.state == asciiSame {
		out.state = asciiSame
	} else {
		out.ascii = t.effectiveASCII() + other.effectiveASCII()
		if t.state == asciiOverridden || other.state == asciiOverridden {
			out.state = asciiOverridden
		} else {
			out.state = asciiDerived
		}
	}

	if t.hasFileSafe || other.hasFileSafe {
		combined := t.FileSafe() + other.FileSafe()
		// Safety is per-character, so joining two safe strings cannot
		// introduce unsafe characters, but the re-scan keeps that an
		// invariant of this function rather than an assumption.
		if safe, changed := makeFileSafe(combined); changed {
			combined = safe
		}
		out.fileSafe = combined
		out.hasFileSafe = true
	}

	return out
}

// Join concatenates texts with sep between consecutive elements.
//
// A single-element slice returns its element unchanged, and an empty
// slice returns the empty Text.
func Join(texts []Text, sep Text) Text {
	if len(texts) == 1 {
		return texts[0]
	}

	var out Text
	for i, t := range texts {
		if i != 0 {
			out = out.Concat(sep)
		}
		out = out.Concat(t)
	}
	return out
}

// CommaSeparated joins texts with ", ", the separator used for artist
// credits.
func CommaSeparated(texts []Text) Text {
	return Join(texts, commaSep)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// splitArticle splits a leading English article from s. The article
// must be followed by exactly one space; only that space is removed.
func splitArticle(s string) (article, rest string, ok bool) {
	for _, a := range [...]string{"the", "an", "a"} {
		if len(s) <= len(a) || s[len(a)] != ' ' {
			continue
		}
		if strings.EqualFold(s[:len(a)], a) {
			return s[:len(a)], s[len(a)+1:], true
		}
	}
	return "", "", false
}
