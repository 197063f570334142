package engine

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/PuerkitoBio/goquery"
)

// newFragment parses a standalone HTML fragment and returns its (detached)
// root selection, used whenever the pipeline needs to synthesize a new
// container element.
func newFragment(html string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return doc.Find("body").Children().First()
}

var endsSentenceRe = regexp.MustCompile(`\.( |$)`)

// assembleSiblings builds the article container from best's parent's
// children: best itself, any sibling that scored well enough on its own,
// and short paragraph-like siblings that look like they belong (long enough
// with low link density, or short but clearly sentence-terminated prose).
func assembleSiblings(best *candidate, candidates candidateMap) *goquery.Selection {
	threshold := 0.2 * best.contentScore
	if threshold < 10 {
		threshold = 10
	}

	parent := best.sel.Parent()
	article := newArticleContainer("page")

	if parent.Length() == 0 {
		article.AppendSelection(best.sel.Clone())
		return article
	}

	var snapshot []*goquery.Selection
	parent.Children().Each(func(_ int, s *goquery.Selection) {
		snapshot = append(snapshot, s)
	})

	for _, s := range snapshot {
		if nodeOf(s) == nodeOf(best.sel) {
			article.AppendSelection(s)
			continue
		}

		if c, ok := candidates.get(s); ok && c.contentScore >= threshold {
			article.AppendSelection(s)
			continue
		}

		if goquery.NodeName(s) == "p" {
			text := leadingText(s)
			ld := linkDensity(s)
			switch {
			case len(text) > 80 && ld < 0.25:
				article.AppendSelection(s)
				continue
			case len(text) < 80 && ld == 0 && endsSentenceRe.MatchString(strings.TrimRight(text, " \t\n")):
				article.AppendSelection(s)
				continue
			}
		}
	}

	return article
}

// newArticleContainer builds a detached <div id="..."> usable as an
// assembly root.
func newArticleContainer(id string) *goquery.Selection {
	return newFragment(`<div id="` + id + `"></div>`)
}

// leadingText returns s's own leading text — the text node immediately
// after its opening tag, before any child element — the way lxml's
// `element.text` works, as opposed to goquery's Text() which concatenates
// every descendant's text too.
func leadingText(s *goquery.Selection) string {
	n := nodeOf(s)
	if n == nil || n.FirstChild == nil || n.FirstChild.Type != html.TextNode {
		return ""
	}
	return n.FirstChild.Data
}
