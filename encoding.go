package arxiv

// Text marshaling for embedding the parsed types in JSON, YAML, and similar
// documents. Every type serializes as its canonical string form, and
// unmarshaling runs the same validation as the corresponding parser, so a
// decoded value is always well-formed.

// MarshalText formats the identifier in its canonical "arXiv:..." form.
func (id ArticleID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses an identifier with ParseArticleID.
func (id *ArticleID) UnmarshalText(text []byte) error {
	parsed, err := ParseArticleID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText formats the identifier in its canonical "arXiv:..." form.
func (id OldArticleID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses an identifier with ParseOldArticleID.
func (id *OldArticleID) UnmarshalText(text []byte) error {
	parsed, err := ParseOldArticleID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText formats the category as "archive.subject".
func (c CategoryID) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a category with ParseCategoryID.
func (c *CategoryID) UnmarshalText(text []byte) error {
	parsed, err := ParseCategoryID(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText formats the stamp as it is printed on a PDF.
func (st Stamp) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

// UnmarshalText parses a stamp with ParseStamp.
func (st *Stamp) UnmarshalText(text []byte) error {
	parsed, err := ParseStamp(string(text))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

// MarshalText formats the archive identifier.
func (a Archive) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// UnmarshalText resolves the archive identifier with ParseArchive, so a
// decoded Archive is always a taxonomy member.
func (a *Archive) UnmarshalText(text []byte) error {
	parsed, err := ParseArchive(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText formats the group identifier.
func (g Group) MarshalText() ([]byte, error) {
	return []byte(g), nil
}

// UnmarshalText resolves the group identifier with ParseGroup.
func (g *Group) UnmarshalText(text []byte) error {
	parsed, err := ParseGroup(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
