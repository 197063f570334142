package engine

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestIsSuspectedDuplicate(t *testing.T) {
	article := newArticleContainer("article")

	pageA := wrapPage(`<div><p>Identical opening paragraph text right here.</p></div>`, 1)
	require.NotNil(t, pageA)
	article.AppendSelection(pageA)

	dupPage := wrapPage(`<div><p>Identical opening paragraph text right here.</p></div>`, 2)
	require.NotNil(t, dupPage)
	require.True(t, isSuspectedDuplicate(article, dupPage))

	freshPage := wrapPage(`<div><p>A completely different opening paragraph about something else.</p></div>`, 2)
	require.NotNil(t, freshPage)
	require.False(t, isSuspectedDuplicate(article, freshPage))
}

type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Fetch(url string) ([]byte, string, error) {
	html, ok := f.pages[url]
	if !ok {
		return nil, "", errNotFound
	}
	return []byte(html), "text/html; charset=utf-8", nil
}

var errNotFound = &ParseError{Code: ErrUnparseable, Message: "not found"}

func longParagraph(label string) string {
	return "<p>" + strings.Repeat(label+" filler content word ", 30) + "</p>"
}

func TestAssembleMultiPage(t *testing.T) {
	pageURL := "http://basic.com/article.html"

	primaryHTML := `<html><body><div id="content">` +
		longParagraph("primary") +
		`<a href="http://basic.com/article.html?pagewanted=2">Next</a>` +
		`</div></body></html>`

	page2URL := "http://basic.com/article.html?pagewanted=2"
	page2HTML := `<html><body><div id="content">` +
		longParagraph("pagetwo") +
		`<a href="http://basic.com/article.html?pagewanted=3">Next</a>` +
		`</div></body></html>`

	page3URL := "http://basic.com/article.html?pagewanted=3"
	page3HTML := `<html><body><div id="content">` +
		longParagraph("pagethree") +
		`</div></body></html>`

	fetcher := &fakeFetcher{pages: map[string]string{
		page2URL: page2HTML,
		page3URL: page3HTML,
	}}

	primaryDoc, err := parseHTML([]byte(primaryHTML), "text/html; charset=utf-8", pageURL)
	require.NoError(t, err)

	result := Assemble(primaryDoc, pageURL, fetcher, NewOptions())
	require.True(t, result.OK)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	require.NoError(t, err)

	pages := doc.Find(".article-page")
	require.Equal(t, 3, pages.Length())

	var ids []string
	pages.Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids = append(ids, id)
	})
	require.Equal(t, []string{"page-1", "page-2", "page-3"}, ids)
}
