// Package readability extracts the main article content from an HTML page,
// in the lineage of the classic Readability/Arc90 algorithm: heuristic DOM
// scoring, structural normalization, sibling assembly, and conditional
// sanitizing, with optional multi-page assembly for paginated articles.
//
// # Basic usage
//
// Parse HTML you already have and ask for a summary:
//
//	doc, err := readability.New(html, readability.WithURL("https://example.com/article"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	summary, err := doc.Summary()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary.HTML)
//
// # Multi-page articles
//
// Provide a Fetcher alongside the page URL to let Summary() follow
// discovered "next page" links and assemble a combined article, up to ten
// pages:
//
//	doc, err := readability.New(html,
//	    readability.WithURL(pageURL),
//	    readability.WithFetcher(readability.NewHTTPFetcher()),
//	)
//
// # Error handling
//
// Errors are typed for programmatic handling:
//
//	summary, err := doc.Summary()
//	var parseErr *readability.ParseError
//	if errors.As(err, &parseErr) {
//	    switch parseErr.Code {
//	    case readability.ErrUnparseable:
//	        // the underlying HTML parser failed, or extraction panicked
//	    case readability.ErrInvalidInput:
//	        // empty html passed to New
//	    }
//	}
//
// A low-confidence extraction is never an error: Summary() can return a
// Summary with Score 0 and an empty HTML string when nothing in the page
// scored highly enough to be considered article content.
//
// # Concurrency
//
// A Document keeps the raw HTML and parses it afresh on every Title,
// Content or Summary call, so calls never share a parsed tree. The Fetcher
// configured on a Document is shared by every Summary call made on it; the
// package adds no synchronization around it.
package readability
