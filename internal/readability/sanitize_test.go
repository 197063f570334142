package engine

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestSanitizeDropsWeakHeaders(t *testing.T) {
	html := `<div id="article"><h2 class="comment">Weak</h2><p>` +
		strings.Repeat("real article content here ", 10) + `</p></div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	article := doc.Find("#article")

	out := sanitize(article, candidateMap{}, 25)
	require.NotContains(t, out, "Weak")
}

func TestSanitizeDropsFormsAndIframes(t *testing.T) {
	html := `<div id="article"><form><input></form><iframe src="x"></iframe><p>` +
		strings.Repeat("real article content here ", 10) + `</p></div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	article := doc.Find("#article")

	out := sanitize(article, candidateMap{}, 25)
	require.NotContains(t, out, "<form")
	require.NotContains(t, out, "<iframe")
}

func TestSanitizeRemovesLinkHeavyDiv(t *testing.T) {
	var links strings.Builder
	for i := 0; i < 20; i++ {
		links.WriteString(`<a href="/x">link text here</a> `)
	}
	html := `<div id="article"><div class="nav-ish">` + links.String() + `</div><p>` +
		strings.Repeat("real article content here ", 10) + `</p></div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	article := doc.Find("#article")

	out := sanitize(article, candidateMap{}, 25)
	require.NotContains(t, out, "link text here")
	require.Contains(t, out, "real article content")
}
