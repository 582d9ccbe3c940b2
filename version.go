package arxiv

import "strconv"

// ArticleVersion identifies which revision of an article an identifier refers
// to. The zero value means "latest": an identifier with no version suffix
// refers to whatever the newest revision happens to be, and the absence of the
// suffix is data rather than an error. Any nonzero value names one specific
// revision. Revisions are numbered from 1, and the parsers reject "v0", so the
// zero value is never ambiguous.
type ArticleVersion uint8

// VersionLatest tags an identifier that carries no version suffix.
const VersionLatest ArticleVersion = 0

// IsLatest reports whether the version refers to the newest revision rather
// than a specific one.
func (v ArticleVersion) IsLatest() bool {
	return v == VersionLatest
}

// String formats the version the way it appears inside an identifier: the
// empty string for the latest revision, "v3" for revision 3. An identifier
// therefore round-trips exactly, with the suffix present if and only if the
// version is specific.
func (v ArticleVersion) String() string {
	if v.IsLatest() {
		return ""
	}
	return "v" + strconv.FormatUint(uint64(v), 10)
}
