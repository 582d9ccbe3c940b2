package arxiv

import "strings"

// Bounds of the old identifier scheme, which ran from arXiv's founding until
// the modern scheme replaced it in April 2007.
const (
	// MinOldYear is the earliest year representable in an old-scheme
	// identifier.
	MinOldYear = 1991
	// MaxOldYear is the latest year representable in an old-scheme
	// identifier.
	MaxOldYear = 2007
)

// oldNumberDigits is the fixed width of an old-scheme article number.
const oldNumberDigits = 3

// OldArticleID is a parsed old-scheme article identifier such as
// "arXiv:cond-mat/0001448v1" (identifiers issued up to March 2007). The
// category before the slash is an archive optionally followed by a subject
// class; many old identifiers carry the bare archive alone.
type OldArticleID struct {
	// Archive is the archive named before the slash.
	Archive Archive

	// Subject is the subject class after the archive, or "" when the
	// identifier carries a bare archive.
	Subject string

	// Year is the full four-digit year, between MinOldYear and MaxOldYear.
	Year int

	// Month is the calendar month, between 1 and 12.
	Month int

	// Number is the three-digit article number, exactly as written.
	Number string

	// Version selects a specific revision, or VersionLatest when the
	// identifier carried no version suffix.
	Version ArticleVersion
}

// ParseOldArticleID parses an old-scheme article identifier. The "arXiv:"
// label is required; use ParseOldArticleIDWithOptions to accept the bare form.
func ParseOldArticleID(s string) (OldArticleID, error) {
	return ParseOldArticleIDWithOptions(s, nil)
}

// ParseOldArticleIDWithOptions parses an old-scheme article identifier with
// custom options. A nil opts is equivalent to the defaults.
//
// The accepted shape is "arXiv:archive/YYMMNNN" with an optional subject
// class on the archive and an optional "vN" suffix, e.g.
// "arXiv:math.GT/0309136". Two-digit years 91 through 99 fall in the 1900s
// and everything else in the 2000s, which covers the scheme's 1991 to 2007
// lifetime without ambiguity.
func ParseOldArticleIDWithOptions(s string, opts *ParseOptions) (OldArticleID, error) {
	if opts == nil {
		opts = &ParseOptions{}
	}

	rest, err := stripIDPrefix(s, opts.OptionalPrefix)
	if err != nil {
		return OldArticleID{}, err
	}

	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return OldArticleID{}, ErrExpectedSlash
	}

	archive, subject, err := splitCategory(rest[:slash], false)
	if err != nil {
		return OldArticleID{}, err
	}

	rest = rest[slash+1:]

	year, ok := twoDigits(rest, 0)
	if !ok {
		return OldArticleID{}, ErrInvalidYear
	}
	year = oldFullYear(year)
	if year < MinOldYear || year > MaxOldYear {
		return OldArticleID{}, ErrInvalidYear
	}

	month, ok := twoDigits(rest, 2)
	if !ok || month < minMonth || month > maxMonth {
		return OldArticleID{}, ErrInvalidMonth
	}

	if len(rest) < 4+oldNumberDigits || !allDigits(rest[4:4+oldNumberDigits]) {
		return OldArticleID{}, ErrInvalidNumber
	}
	number := rest[4 : 4+oldNumberDigits]

	version := VersionLatest
	if tail := rest[4+oldNumberDigits:]; tail != "" {
		if tail[0] != 'v' {
			return OldArticleID{}, ErrInvalidNumber
		}
		version, err = parseVersionNumber(tail[1:])
		if err != nil {
			return OldArticleID{}, err
		}
	}

	return OldArticleID{
		Archive: archive,
		Subject: subject,
		Year:    year,
		Month:   month,
		Number:  number,
		Version: version,
	}, nil
}

// NewOldArticleID builds an old-scheme identifier from parts, enforcing the
// same field rules as the parser: a known archive, year within
// [MinOldYear, MaxOldYear], month within [1, 12], and an exactly three-digit
// number. An empty subject means a bare archive.
func NewOldArticleID(
	archive Archive,
	subject string,
	year, month int,
	number string,
	version ArticleVersion,
) (OldArticleID, error) {
	if !archive.Valid() {
		return OldArticleID{}, ErrUnknownArchive
	}
	if year < MinOldYear || year > MaxOldYear {
		return OldArticleID{}, ErrInvalidYear
	}
	if month < minMonth || month > maxMonth {
		return OldArticleID{}, ErrInvalidMonth
	}
	if len(number) != oldNumberDigits || !allDigits(number) {
		return OldArticleID{}, ErrInvalidNumber
	}
	return OldArticleID{
		Archive: archive,
		Subject: subject,
		Year:    year,
		Month:   month,
		Number:  number,
		Version: version,
	}, nil
}

// Category returns the identifier's category when a subject class is present.
// It reports false for a bare archive, which is not a complete category in
// the archive.subject sense.
func (id OldArticleID) Category() (CategoryID, bool) {
	if id.Subject == "" {
		return CategoryID{}, false
	}
	return CategoryID{Archive: id.Archive, Subject: id.Subject}, true
}

// Ident returns the identifier portion that follows the "arXiv:" label,
// without any version suffix, e.g. "cond-mat/0001448". This is the path form
// arXiv uses to address old articles.
func (id OldArticleID) Ident() string {
	var b strings.Builder
	b.Grow(len(id.Archive) + 1 + len(id.Subject) + 5 + len(id.Number))
	b.WriteString(string(id.Archive))
	if id.Subject != "" {
		b.WriteByte('.')
		b.WriteString(id.Subject)
	}
	b.WriteByte('/')
	writeTwoDigits(&b, id.Year%100)
	writeTwoDigits(&b, id.Month)
	b.WriteString(id.Number)
	return b.String()
}

// String formats the identifier in its canonical form, e.g.
// "arXiv:cond-mat/0001448v1". The version suffix appears if and only if the
// version is specific.
func (id OldArticleID) String() string {
	return idPrefix + id.Ident() + id.Version.String()
}

// Compare orders two identifiers field by field: archive, subject, year,
// month, number, then version. It returns -1, 0, or +1.
func (id OldArticleID) Compare(other OldArticleID) int {
	if c := strings.Compare(string(id.Archive), string(other.Archive)); c != 0 {
		return c
	}
	if c := strings.Compare(id.Subject, other.Subject); c != 0 {
		return c
	}
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

// oldFullYear expands a two-digit old-scheme year. Years 91 through 99 fall
// in the 1900s; everything else is 2000s.
func oldFullYear(y2 int) int {
	if y2 >= 91 {
		return 1900 + y2
	}
	return 2000 + y2
}
