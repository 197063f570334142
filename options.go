package readability

import "log/slog"

// Option configures a Document at construction time.
type Option func(*Document)

// WithURL sets the page's URL, used for absolute-link resolution and
// next-page discovery. Without it, only an in-document <base> tag (if any)
// is honored and multi-page traversal is skipped.
//
// Example:
//
//	doc, err := readability.New(html, readability.WithURL("https://example.com/article"))
func WithURL(url string) Option {
	return func(d *Document) {
		d.url = url
	}
}

// WithFetcher injects the fetcher used to retrieve subsequent pages during
// multi-page traversal. Without one, Summary() returns only the primary
// page even if a next-page link is found.
//
// Example:
//
//	doc, err := readability.New(html, readability.WithURL(u), readability.WithFetcher(myFetcher))
func WithFetcher(fetcher Fetcher) Option {
	return func(d *Document) {
		d.fetcher = fetcher
	}
}

// WithMinTextLength overrides the default 25-character paragraph-inclusion
// threshold used throughout scoring and sanitizing.
func WithMinTextLength(n int) Option {
	return func(d *Document) {
		d.opts.MinTextLength = n
	}
}

// WithRetryLength overrides the default 250-byte minimum cleaned-article
// length before the extraction loop falls back to its lenient phase.
func WithRetryLength(n int) Option {
	return func(d *Document) {
		d.opts.RetryLength = n
	}
}

// WithContentType sets the Content-Type header value (if known) so the
// charset in it, when present, takes priority over sniffing during parse.
func WithContentType(contentType string) Option {
	return func(d *Document) {
		d.contentType = contentType
	}
}

// WithLogger overrides the Document's logger, used to report next-page
// fetch/parse failures during multi-page traversal — the only diagnostics
// the core ever produces, since a failed fetch stops traversal rather than
// surfacing as an error. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		d.opts.Logger = logger
	}
}
