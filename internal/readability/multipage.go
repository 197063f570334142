package engine

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

const maxPages = 10

// Fetcher retrieves the raw bytes and content type of a next-page URL
// during multi-page traversal. Any error is treated as "stop appending" —
// no retry, no surfaced failure.
type Fetcher interface {
	Fetch(url string) (data []byte, contentType string, err error)
}

// Assemble runs the primary page through Extract, then recursively
// discovers and appends next pages via fetcher (if non-nil), up to
// maxPages. Returns the multi-page article wrapped in <div id="article">
// containing one <div class="article-page" id="page-N"> per page, and the
// primary page's confidence score.
func Assemble(primary *goquery.Document, pageURL string, fetcher Fetcher, opts Options) Result {
	nextURL, hasNext := "", false
	if pageURL != "" {
		base := findBaseURL(pageURL)
		nextURL, hasNext = findNextPageURL(primary.Selection, base, pageURL, nil)
	}

	result := Extract(primary, opts)
	if !result.OK {
		return result
	}

	article := newArticleContainer("article")
	page1 := wrapPage(result.HTML, 1)
	if page1 != nil {
		article.AppendSelection(page1)
	}

	if hasNext && fetcher != nil {
		seen := map[string]bool{nextURL: true}
		appendNextPage(fetcher, seen, 1, nextURL, article, opts)
	}

	out, err := goquery.OuterHtml(article)
	if err != nil {
		out = ""
	}
	return Result{Score: result.Score, HTML: out, OK: true}
}

func appendNextPage(fetcher Fetcher, seen map[string]bool, pageIndex int, pageURL string, article *goquery.Selection, opts Options) {
	if pageIndex >= maxPages {
		return
	}

	data, contentType, err := fetcher.Fetch(pageURL)
	if err != nil {
		opts.logger().Warn("next page fetch failed, stopping traversal", "url", pageURL, "page", pageIndex+1, "err", err)
		return
	}

	doc, err := parseHTML(data, contentType, pageURL)
	if err != nil {
		opts.logger().Warn("next page parse failed, stopping traversal", "url", pageURL, "page", pageIndex+1, "err", err)
		return
	}

	base := findBaseURL(pageURL)
	nextURL, hasNext := findNextPageURL(doc.Selection, base, pageURL, seen)

	result := Extract(doc, opts)
	if !result.OK {
		return
	}

	page := wrapPage(result.HTML, pageIndex+1)
	if page == nil {
		return
	}

	if isSuspectedDuplicate(article, page) {
		return
	}

	article.AppendSelection(page)

	if hasNext {
		seen[nextURL] = true
		appendNextPage(fetcher, seen, pageIndex+1, nextURL, article, opts)
	}
}

// wrapPage parses a cleaned article fragment and tags it as one numbered
// page of the assembled article.
func wrapPage(html string, pageIndex int) *goquery.Selection {
	frag := newFragment(html)
	if frag == nil {
		return nil
	}
	frag.SetAttr("id", fmt.Sprintf("page-%d", pageIndex))
	frag.SetAttr("class", "article-page")
	return frag
}

// isSuspectedDuplicate compares page's first <p> text against the first
// <p> of every page already appended to article; an exact match (or a
// near-exact one, per a Levenshtein-ratio fallback) means page is a repeat
// of content already seen, which happens when a "next page" link loops
// back into the same article.
func isSuspectedDuplicate(article, page *goquery.Selection) bool {
	pageP := firstParagraphText(page)
	if pageP == "" {
		return false
	}

	dup := false
	article.Find(".article-page").Each(func(_ int, existing *goquery.Selection) {
		if dup {
			return
		}
		existingP := firstParagraphText(existing)
		if existingP == "" {
			return
		}
		if existingP == pageP || isNearDuplicateText(existingP, pageP) {
			dup = true
		}
	})
	return dup
}

func firstParagraphText(e *goquery.Selection) string {
	p := e.Find("p").First()
	if p.Length() == 0 {
		return ""
	}
	return p.Text()
}
