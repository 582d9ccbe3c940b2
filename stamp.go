package arxiv

import (
	"strconv"
	"strings"
	"time"
)

// Stamp is the provenance line printed along the side of an arXiv PDF, e.g.
// "arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007": an article identifier, the
// article's primary category in brackets, and the submission date.
type Stamp struct {
	// ID is the article identifier.
	ID ArticleID

	// Category is the article's primary category.
	Category CategoryID

	// Submitted is the submission date. Only the calendar day matters, so
	// the value is always pinned to midnight UTC.
	Submitted time.Time
}

// monthAbbrs holds the canonical three-letter month abbreviations used in
// stamp dates. Matching is exact-case: "jun" and "JUN" are invalid.
var monthAbbrs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ParseStamp parses a stamp of the form "<identifier> <[category]> <date>",
// with the three components separated by single spaces.
//
// Parsing is left-to-right and stops at the first failing component. An
// identifier or category failure is wrapped with the segment name while
// keeping the underlying sentinel reachable through errors.Is; a malformed or
// impossible date (such as "31 Feb 2007") is reported as ErrInvalidDate with
// no further detail.
func ParseStamp(s string) (Stamp, error) {
	space1 := strings.IndexByte(s, ' ')
	if space1 < 0 {
		return Stamp{}, ErrStampTooShort
	}
	space2 := strings.IndexByte(s[space1+1:], ' ')
	if space2 < 0 {
		return Stamp{}, ErrStampTooShort
	}
	space2 += space1 + 1

	id, err := ParseArticleID(s[:space1])
	if err != nil {
		return Stamp{}, wrapErrorf(err, "stamp identifier")
	}

	category, err := ParseBracketedCategoryID(s[space1+1 : space2])
	if err != nil {
		return Stamp{}, wrapErrorf(err, "stamp category")
	}

	submitted, err := parseStampDate(s[space2+1:])
	if err != nil {
		return Stamp{}, err
	}

	return Stamp{ID: id, Category: category, Submitted: submitted}, nil
}

// NewStamp builds a stamp from parts. The time-of-day and location of
// submitted are discarded: only its calendar date is kept, pinned to midnight
// UTC like the dates produced by ParseStamp.
func NewStamp(id ArticleID, category CategoryID, submitted time.Time) Stamp {
	y, m, d := submitted.Date()
	return Stamp{
		ID:        id,
		Category:  category,
		Submitted: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

// Equal reports whether two stamps carry the same identifier, category, and
// calendar date. Use this instead of == so that Submitted values from
// different locations compare by the instant they name.
func (st Stamp) Equal(other Stamp) bool {
	return st.ID == other.ID &&
		st.Category == other.Category &&
		st.Submitted.Equal(other.Submitted)
}

// String formats the stamp the way it is printed on a PDF, e.g.
// "arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007". The day carries no zero
// padding, so a parsed stamp formats back to its input.
func (st Stamp) String() string {
	var b strings.Builder
	b.WriteString(st.ID.String())
	b.WriteByte(' ')
	b.WriteString(st.Category.Bracketed())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(st.Submitted.Day()))
	b.WriteByte(' ')
	b.WriteString(monthAbbrs[st.Submitted.Month()-1])
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(st.Submitted.Year()))
	return b.String()
}

// parseStampDate parses a date of the form "1 Jun 2007": an unpadded day, a
// canonically capitalized three-letter month, and a four-digit year. Every
// failure collapses to ErrInvalidDate.
func parseStampDate(s string) (time.Time, error) {
	dayStr, rest, ok := strings.Cut(s, " ")
	if !ok {
		return time.Time{}, ErrInvalidDate
	}
	monthStr, yearStr, ok := strings.Cut(rest, " ")
	if !ok {
		return time.Time{}, ErrInvalidDate
	}

	if len(dayStr) > 2 || !allDigits(dayStr) {
		return time.Time{}, ErrInvalidDate
	}
	day, _ := strconv.Atoi(dayStr)

	month := 0
	for i, abbr := range monthAbbrs {
		if monthStr == abbr {
			month = i + 1
			break
		}
	}
	if month == 0 {
		return time.Time{}, ErrInvalidDate
	}

	// A fourth token would end up inside yearStr and fail the digit check.
	if len(yearStr) != 4 || !allDigits(yearStr) {
		return time.Time{}, ErrInvalidDate
	}
	year, _ := strconv.Atoi(yearStr)

	// time.Date normalizes impossible days (Feb 31 becomes Mar 3) instead
	// of failing, so build the date and require it to round-trip.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}
