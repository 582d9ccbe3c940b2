package arxiv

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the parsers in this package. Each one names the
// specific grammar rule that was violated and can be checked with errors.Is().
// The set is not closed; new sentinels may be added as the grammars grow, so
// consumers should never treat an unmatched error as impossible.

// ErrExpectedPrefix is returned when an input does not begin with the literal
// "arXiv:" label and the parser requires it.
var ErrExpectedPrefix = errors.New(`expected the literal "arXiv:" prefix`)

// ErrInvalidYear is returned when the two-digit year component is not made of
// ASCII digits or maps to a year outside the scheme's supported range.
var ErrInvalidYear = errors.New("year is outside the supported range")

// ErrInvalidMonth is returned when the two-digit month component is not made
// of ASCII digits or is not between 01 and 12.
var ErrInvalidMonth = errors.New("month must be between 01 and 12")

// ErrExpectedDot is returned when the dot separating the year/month block from
// the article number is missing.
var ErrExpectedDot = errors.New(`expected a "." after the year and month`)

// ErrExpectedSlash is returned when an old-scheme identifier is missing the
// slash separating the category from the article number.
var ErrExpectedSlash = errors.New(`expected a "/" after the category`)

// ErrInvalidNumber is returned when the article number component is empty or
// contains anything other than ASCII digits.
var ErrInvalidNumber = errors.New("article number must be one or more digits")

// ErrExpectedVersionNumber is returned when a "v" version marker is not
// followed by a valid version number.
var ErrExpectedVersionNumber = errors.New(`expected a version number after "v"`)

// ErrUnknownArchive is returned when a category does not begin with one of the
// archive identifiers listed in the arXiv taxonomy. Matching is exact-case.
var ErrUnknownArchive = errors.New("unrecognized archive identifier")

// ErrUnknownGroup is returned when a group identifier is not one of the
// groups listed in the arXiv taxonomy.
var ErrUnknownGroup = errors.New("unrecognized group identifier")

// ErrExpectedSubject is returned when a category names an archive but the
// subject class after the dot is missing or empty.
var ErrExpectedSubject = errors.New("expected a subject class after the archive")

// ErrMissingBrackets is returned when a bracketed category is not enclosed in
// a balanced pair of square brackets.
var ErrMissingBrackets = errors.New("category must be enclosed in square brackets")

// ErrStampTooShort is returned when a stamp does not contain enough
// space-separated components to hold an identifier, a category, and a date.
var ErrStampTooShort = errors.New("stamp has too few components")

// ErrInvalidDate is returned when a stamp's submission date is not of the form
// "1 Jan 2007" or does not name a real calendar day.
var ErrInvalidDate = errors.New("invalid submission date")

// wrapErrorf wraps err with formatted context while preserving the ability to
// check against sentinel errors using errors.Is().
func wrapErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
