package arxiv

import (
	"strconv"
	"strings"
)

// Bounds of the modern identifier scheme. The two-digit year always maps to
// 2000+YY: the scheme was introduced in April 2007, so the earliest usable
// year is 2007, and the two digits run out at 2099.
const (
	// MinYear is the earliest year representable in a modern identifier.
	MinYear = 2007
	// MaxYear is the latest year representable in a modern identifier.
	MaxYear = 2099
)

const (
	minMonth = 1
	maxMonth = 12
)

// idPrefix is the case-sensitive label that precedes an identifier.
const idPrefix = "arXiv:"

// ArticleID is a parsed modern-scheme article identifier such as
// "arXiv:0706.0001v1" (scheme in use since April 2007). Fields are plain data
// and the type is comparable, so identifiers work directly as map keys; use
// Compare for ordering.
type ArticleID struct {
	// Year is the full four-digit year, between MinYear and MaxYear.
	Year int

	// Month is the calendar month, between 1 and 12.
	Month int

	// Number is the digit run after the dot, exactly as written. Leading
	// zeros and length are part of the identifier, so it stays a string.
	Number string

	// Version selects a specific revision, or VersionLatest when the
	// identifier carried no version suffix.
	Version ArticleVersion
}

// ParseOptions configures the identifier parsers.
type ParseOptions struct {
	// OptionalPrefix allows the "arXiv:" label to be absent, accepting the
	// bare form "0706.0001v1" that appears in metadata feeds. The label is
	// still consumed when present.
	OptionalPrefix bool
}

// ParseArticleID parses a modern-scheme article identifier. The "arXiv:"
// label is required; use ParseArticleIDWithOptions to accept the bare form.
func ParseArticleID(s string) (ArticleID, error) {
	return ParseArticleIDWithOptions(s, nil)
}

// ParseArticleIDWithOptions parses a modern-scheme article identifier with
// custom options. A nil opts is equivalent to the defaults.
//
// The accepted shape is "arXiv:YYMM.number" with an optional "vN" suffix.
// Parsing is a single left-to-right pass that stops at the first violated
// rule, and the returned error names that rule: ErrExpectedPrefix,
// ErrInvalidYear, ErrInvalidMonth, ErrExpectedDot, ErrInvalidNumber, or
// ErrExpectedVersionNumber. Trailing characters after a well-formed
// identifier are a syntax error, never ignored.
func ParseArticleIDWithOptions(s string, opts *ParseOptions) (ArticleID, error) {
	if opts == nil {
		opts = &ParseOptions{}
	}

	rest, err := stripIDPrefix(s, opts.OptionalPrefix)
	if err != nil {
		return ArticleID{}, err
	}

	year, ok := twoDigits(rest, 0)
	if !ok {
		return ArticleID{}, ErrInvalidYear
	}
	year += 2000
	if year < MinYear || year > MaxYear {
		return ArticleID{}, ErrInvalidYear
	}

	month, ok := twoDigits(rest, 2)
	if !ok || month < minMonth || month > maxMonth {
		return ArticleID{}, ErrInvalidMonth
	}

	if len(rest) < 5 || rest[4] != '.' {
		return ArticleID{}, ErrExpectedDot
	}

	number, version, err := parseNumberVersion(rest[5:])
	if err != nil {
		return ArticleID{}, err
	}

	return ArticleID{Year: year, Month: month, Number: number, Version: version}, nil
}

// NewArticleID builds an identifier from parts, enforcing the same field
// rules as the parser: year within [MinYear, MaxYear], month within [1, 12],
// and a non-empty all-digit number.
func NewArticleID(year, month int, number string, version ArticleVersion) (ArticleID, error) {
	if year < MinYear || year > MaxYear {
		return ArticleID{}, ErrInvalidYear
	}
	if month < minMonth || month > maxMonth {
		return ArticleID{}, ErrInvalidMonth
	}
	if !allDigits(number) {
		return ArticleID{}, ErrInvalidNumber
	}
	return ArticleID{Year: year, Month: month, Number: number, Version: version}, nil
}

// Ident returns the identifier portion that follows the "arXiv:" label,
// without any version suffix, e.g. "0706.0001". This is the form arXiv uses
// to key an article across all of its revisions.
func (id ArticleID) Ident() string {
	var b strings.Builder
	b.Grow(5 + len(id.Number))
	writeTwoDigits(&b, id.Year%100)
	writeTwoDigits(&b, id.Month)
	b.WriteByte('.')
	b.WriteString(id.Number)
	return b.String()
}

// String formats the identifier in its canonical form, e.g.
// "arXiv:0706.0001v1". The version suffix appears if and only if the version
// is specific, so a parsed identifier formats back to its input.
func (id ArticleID) String() string {
	return idPrefix + id.Ident() + id.Version.String()
}

// Compare orders two identifiers field by field: year, then month, then
// number (byte-wise), then version, with the latest-version tag sorting
// before any specific version. It returns -1, 0, or +1.
func (id ArticleID) Compare(other ArticleID) int {
	if id.Year != other.Year {
		return compareInt(id.Year, other.Year)
	}
	if id.Month != other.Month {
		return compareInt(id.Month, other.Month)
	}
	if c := strings.Compare(id.Number, other.Number); c != 0 {
		return c
	}
	return compareInt(int(id.Version), int(other.Version))
}

// stripIDPrefix consumes the "arXiv:" label. The label is matched
// case-sensitively; when optional, a missing label is not an error.
func stripIDPrefix(s string, optional bool) (string, error) {
	if strings.HasPrefix(s, idPrefix) {
		return s[len(idPrefix):], nil
	}
	if optional {
		return s, nil
	}
	return "", ErrExpectedPrefix
}

// parseNumberVersion splits the tail of an identifier into the article number
// and the optional version suffix, consuming the whole input.
func parseNumberVersion(s string) (string, ArticleVersion, error) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return "", VersionLatest, ErrInvalidNumber
	}
	number := s[:i]

	if i == len(s) {
		return number, VersionLatest, nil
	}
	if s[i] != 'v' {
		return "", VersionLatest, ErrInvalidNumber
	}

	version, err := parseVersionNumber(s[i+1:])
	if err != nil {
		return "", VersionLatest, err
	}
	return number, version, nil
}

// parseVersionNumber parses the digits after a "v" marker. Revisions are
// numbered from 1 and stored in a uint8, so zero and anything above 255 are
// rejected together with non-digit input.
func parseVersionNumber(s string) (ArticleVersion, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n == 0 {
		return VersionLatest, ErrExpectedVersionNumber
	}
	return ArticleVersion(n), nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// allDigits reports whether s is a non-empty run of ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// twoDigits reads the two ASCII digits at s[i:i+2] as a decimal value.
func twoDigits(s string, i int) (int, bool) {
	if len(s) < i+2 || !isDigit(s[i]) || !isDigit(s[i+1]) {
		return 0, false
	}
	return int(s[i]-'0')*10 + int(s[i+1]-'0'), true
}

// writeTwoDigits appends n as exactly two decimal digits.
func writeTwoDigits(b *strings.Builder, n int) {
	b.WriteByte(byte('0' + n/10))
	b.WriteByte(byte('0' + n%10))
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
