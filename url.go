package arxiv

import "net/url"

// arxivHost is the host all constructed links point at.
const arxivHost = "arxiv.org"

// arxivURL builds an https link to the given path on arxiv.org.
func arxivURL(path string) *url.URL {
	return &url.URL{Scheme: "https", Host: arxivHost, Path: path}
}

// AbsURL returns the link to the article's abstract page, e.g.
// https://arxiv.org/abs/0706.0001v1. The version suffix is present if and
// only if the identifier names a specific revision.
func (id ArticleID) AbsURL() *url.URL {
	return arxivURL("/abs/" + id.Ident() + id.Version.String())
}

// PDFURL returns the article's PDF download link, e.g.
// https://arxiv.org/pdf/0706.0001v1.pdf.
func (id ArticleID) PDFURL() *url.URL {
	return arxivURL("/pdf/" + id.Ident() + id.Version.String() + ".pdf")
}

// SourceURL returns the article's source download link, e.g.
// https://arxiv.org/e-print/0706.0001v1.
func (id ArticleID) SourceURL() *url.URL {
	return arxivURL("/e-print/" + id.Ident() + id.Version.String())
}

// AbsURL returns the link to the article's abstract page, e.g.
// https://arxiv.org/abs/cond-mat/0001448v1.
func (id OldArticleID) AbsURL() *url.URL {
	return arxivURL("/abs/" + id.Ident() + id.Version.String())
}

// PDFURL returns the article's PDF download link, e.g.
// https://arxiv.org/pdf/cond-mat/0001448v1.pdf.
func (id OldArticleID) PDFURL() *url.URL {
	return arxivURL("/pdf/" + id.Ident() + id.Version.String() + ".pdf")
}

// SourceURL returns the article's source download link, e.g.
// https://arxiv.org/e-print/cond-mat/0001448v1.
func (id OldArticleID) SourceURL() *url.URL {
	return arxivURL("/e-print/" + id.Ident() + id.Version.String())
}

// URL returns the link to the archive's overview page, e.g.
// https://arxiv.org/archive/astro-ph.
func (a Archive) URL() *url.URL {
	return arxivURL("/archive/" + string(a))
}
