package arxiv

import (
	"strings"

	"github.com/neoncitylights/arxiv/internal/taxonomy"
)

// CategoryID is a parsed category such as "astro-ph.HE": an archive from the
// taxonomy followed by a subject class. The archive must be one of the known
// taxonomy entries; the subject is only required to be non-empty, so new
// subject classes keep parsing without a library update.
type CategoryID struct {
	// Archive is the validated archive before the dot.
	Archive Archive

	// Subject is the subject class after the dot, exactly as written.
	Subject string
}

// ParseCategoryID parses a category of the form "archive.subject". The
// archive is matched longest-prefix against the taxonomy table, so "math-ph"
// wins over "math" when both could apply, and matching is exact-case.
func ParseCategoryID(s string) (CategoryID, error) {
	archive, subject, err := splitCategory(s, true)
	if err != nil {
		return CategoryID{}, err
	}
	return CategoryID{Archive: archive, Subject: subject}, nil
}

// ParseBracketedCategoryID parses a category enclosed in square brackets,
// e.g. "[astro-ph.HE]", the form categories take inside a stamp. Missing or
// unbalanced brackets return ErrMissingBrackets, distinct from any failure in
// the category content itself.
func ParseBracketedCategoryID(s string) (CategoryID, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return CategoryID{}, ErrMissingBrackets
	}
	return ParseCategoryID(s[1 : len(s)-1])
}

// NewCategoryID builds a category from parts, enforcing the same rules as the
// parser: a known archive and a non-empty subject.
func NewCategoryID(archive Archive, subject string) (CategoryID, error) {
	if !archive.Valid() {
		return CategoryID{}, wrapErrorf(ErrUnknownArchive, "%q", string(archive))
	}
	if subject == "" {
		return CategoryID{}, ErrExpectedSubject
	}
	return CategoryID{Archive: archive, Subject: subject}, nil
}

// Group returns the group the category's archive belongs to. It is derived
// from the taxonomy table on each call rather than stored on the value.
func (c CategoryID) Group() Group {
	return c.Archive.Group()
}

// String formats the category as it appears on arxiv.org, e.g. "astro-ph.HE".
func (c CategoryID) String() string {
	return string(c.Archive) + "." + c.Subject
}

// Bracketed formats the category the way it appears inside a stamp, e.g.
// "[astro-ph.HE]".
func (c CategoryID) Bracketed() string {
	return "[" + c.String() + "]"
}

// Compare orders two categories field by field: archive, then subject. It
// returns -1, 0, or +1.
func (c CategoryID) Compare(other CategoryID) int {
	if cmp := strings.Compare(string(c.Archive), string(other.Archive)); cmp != 0 {
		return cmp
	}
	return strings.Compare(c.Subject, other.Subject)
}

// splitCategory splits "archive.subject" text into its parts. The archive is
// the longest taxonomy entry prefixing s; whatever follows must be a dot and
// a subject. With subjectRequired false a bare archive is accepted, which is
// how categories appear inside old-scheme identifiers.
func splitCategory(s string, subjectRequired bool) (Archive, string, error) {
	row, ok := taxonomy.LongestPrefix(s)
	if !ok {
		return "", "", wrapErrorf(ErrUnknownArchive, "%q", s)
	}

	rest := s[len(row.ID):]
	if rest == "" {
		if subjectRequired {
			return "", "", ErrExpectedSubject
		}
		return Archive(row.ID), "", nil
	}
	if rest[0] != '.' {
		// The archive only prefixes the text, e.g. "mathematics".
		return "", "", wrapErrorf(ErrUnknownArchive, "%q", s)
	}

	subject := rest[1:]
	if subject == "" {
		return "", "", ErrExpectedSubject
	}
	return Archive(row.ID), subject, nil
}
