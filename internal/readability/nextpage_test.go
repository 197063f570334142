package engine

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestFindNextPageURLBasic(t *testing.T) {
	html := `<html><body>
		<article>
			<p>Some opening paragraph text that is long enough to matter for scoring purposes here.</p>
			<a href="http://basic.com/article.html?pagewanted=2">Next</a>
		</article>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	pageURL := "http://basic.com/article.html"
	base := findBaseURL(pageURL)

	href, ok := findNextPageURL(doc.Selection, base, pageURL, nil)
	require.True(t, ok)
	require.Equal(t, "http://basic.com/article.html?pagewanted=2", href)
}

func TestFindNextPageURLNoCandidate(t *testing.T) {
	html := `<html><body>
		<article>
			<p>No links here at all, just some prose that talks about nothing in particular.</p>
		</article>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	pageURL := "http://basic.com/article.html"
	base := findBaseURL(pageURL)

	_, ok := findNextPageURL(doc.Selection, base, pageURL, nil)
	require.False(t, ok)
}

func TestFindNextPageURLSkipsSeen(t *testing.T) {
	html := `<html><body>
		<article>
			<a href="http://basic.com/article.html?pagewanted=2">Next</a>
		</article>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	pageURL := "http://basic.com/article.html"
	base := findBaseURL(pageURL)
	seen := map[string]bool{"http://basic.com/article.html?pagewanted=2": true}

	_, ok := findNextPageURL(doc.Selection, base, pageURL, seen)
	require.False(t, ok)
}
