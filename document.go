package readability

import (
	"errors"
	"fmt"

	"github.com/corpuslabs/readability/internal/readability"
)

// Document wraps one page's raw HTML and exposes the title/content/summary
// operations described for it. It keeps the raw bytes rather than a parsed
// tree: every Title, Content and Summary call parses them afresh, so the
// tree that Summary() mutates belongs to that call alone.
type Document struct {
	url         string
	contentType string
	fetcher     Fetcher
	opts        engine.Options

	raw []byte
}

// New stores html in a Document for later parsing; it does not parse or
// fetch anything itself. An empty html is rejected with ErrInvalidInput.
func New(html string, opts ...Option) (*Document, error) {
	if html == "" {
		return nil, &ParseError{Code: ErrInvalidInput, Op: "New", Err: errEmptyHTML}
	}

	d := &Document{
		opts: engine.NewOptions(),
		raw:  []byte(html),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

var errEmptyHTML = errors.New("empty html")

func (d *Document) parse() (*engine.ParsedDocument, error) {
	return engine.Parse(d.raw, d.contentType, d.url)
}

// Title returns the document's <title> text, whitespace-normalized, or ""
// if none.
func (d *Document) Title() (string, error) {
	doc, err := d.parse()
	if err != nil {
		return "", &ParseError{Code: ErrUnparseable, Op: "Title", Err: err}
	}
	return engine.Title(doc.Document), nil
}

// ShortTitle returns Title() with site-name-suffix heuristics stripped.
func (d *Document) ShortTitle() (string, error) {
	title, err := d.Title()
	if err != nil {
		return "", err
	}
	return engine.ShortTitle(title, d.url), nil
}

// Content returns the parsed document's <body> serialized back to HTML,
// without running the extraction pipeline.
func (d *Document) Content() (string, error) {
	doc, err := d.parse()
	if err != nil {
		return "", &ParseError{Code: ErrUnparseable, Op: "Content", Err: err}
	}
	body := doc.Document.Find("body")
	html, err := body.Html()
	if err != nil {
		return "", &ParseError{Code: ErrUnparseable, Op: "Content", Err: err}
	}
	return html, nil
}

// Summary runs the full extraction pipeline — ruthless/lenient scoring,
// sibling assembly, sanitizing, and (if a Fetcher and URL are configured)
// multi-page assembly — and returns its confidence score and cleaned HTML.
// A Summary with Score 0 and empty HTML means nothing scored highly enough
// to be considered article content; this is never an error. A panic inside
// the pipeline is returned as an ErrUnparseable ParseError.
func (d *Document) Summary() (s Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = Summary{}
			err = &ParseError{Code: ErrUnparseable, Op: "Summary", Err: fmt.Errorf("%v", r)}
		}
	}()

	doc, err := d.parse()
	if err != nil {
		return Summary{}, &ParseError{Code: ErrUnparseable, Op: "Summary", Err: err}
	}

	result := engine.Assemble(doc.Document, d.url, d.fetcher, d.opts)
	if !result.OK {
		return Summary{}, nil
	}
	return Summary{Score: result.Score, HTML: result.HTML}, nil
}

// Summary is the outcome of one Document.Summary() call.
type Summary struct {
	// Score is the winning candidate's content score; 0 means nothing
	// scored and HTML is empty.
	Score float64
	// HTML is the cleaned article fragment, always rooted at
	// <div id="article"> with one <div class="article-page" id="page-N">
	// per page, a single-page result included (as page-1).
	HTML string
}
