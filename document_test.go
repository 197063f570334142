package readability_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corpuslabs/readability"
)

func TestNewRejectsEmptyHTML(t *testing.T) {
	_, err := readability.New("")
	require.Error(t, err)

	var parseErr *readability.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, readability.ErrInvalidInput, parseErr.Code)
}

func TestSummaryOnThinDocumentReturnsZeroScore(t *testing.T) {
	html := `<html><body><p>too short</p></body></html>`
	doc, err := readability.New(html, readability.WithURL("https://example.com/a"))
	require.NoError(t, err)

	summary, err := doc.Summary()
	require.NoError(t, err)
	require.Equal(t, float64(0), summary.Score)
	require.Empty(t, summary.HTML)
}

func TestSummaryExtractsArticleBody(t *testing.T) {
	paragraph := strings.Repeat("This is a long sentence used as filler content for the article body. ", 10)
	html := `<html><body>
		<div id="nav" class="sidebar"><a href="/a">one</a><a href="/b">two</a></div>
		<div id="content"><p>` + paragraph + `</p></div>
	</body></html>`

	doc, err := readability.New(html, readability.WithURL("https://example.com/article"))
	require.NoError(t, err)

	summary, err := doc.Summary()
	require.NoError(t, err)
	require.True(t, summary.Score > 0)
	require.Contains(t, summary.HTML, "filler content")
}

func TestTitleAndShortTitle(t *testing.T) {
	html := `<html><head><title>Article Headline - Example Site</title></head><body><p>x</p></body></html>`
	doc, err := readability.New(html, readability.WithURL("https://example.com/article"))
	require.NoError(t, err)

	title, err := doc.Title()
	require.NoError(t, err)
	require.Equal(t, "Article Headline - Example Site", title)

	short, err := doc.ShortTitle()
	require.NoError(t, err)
	require.NotEqual(t, title, short)
}
