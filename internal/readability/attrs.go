package engine

import "github.com/microcosm-cc/bluemonday"

// attributeCleaner implements the external attribute-cleaner contract (§6):
// given a serialized HTML string, strip presentational and unsafe
// attributes. Elements outside the policy's allow-list are dropped as well;
// bluemonday keeps their inner content, except for script-like elements
// whose content it discards. Built once and reused for every summary() call.
var attributeCleaner = newArticleAttributePolicy()

// newArticleAttributePolicy allows the structural/content tags the
// extraction pipeline itself produces or preserves, and the attributes
// genuinely load-bearing for an article body: links, images, and the
// id/class pairs the pipeline sets on its own containers. Everything else
// (style, on*, presentational cruft) is dropped.
func newArticleAttributePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "hr",
		"strong", "b", "em", "i", "u", "s", "small", "sub", "sup", "mark",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "dl", "dt", "dd",
		"blockquote", "pre", "code", "q", "cite",
		"table", "thead", "tbody", "tfoot", "tr", "td", "th", "caption",
		"article", "section", "figure", "figcaption",
		"img", "a", "span", "div",
	)

	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("title").OnElements("a", "abbr")
	p.RequireNoReferrerOnLinks(true)
	p.RequireNoFollowOnLinks(false)

	p.AllowAttrs("src", "alt", "width", "height", "srcset", "sizes").OnElements("img")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")

	p.AllowAttrs("id", "class").OnElements(
		"div", "span", "p", "a", "img",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"article", "section", "figure", "table",
	)

	return p
}

// cleanAttributes re-serializes html through the attribute cleaner.
func cleanAttributes(html string) string {
	return attributeCleaner.Sanitize(html)
}
