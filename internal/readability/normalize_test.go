package engine

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseDiv(t *testing.T, fragment string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>" + fragment + "</body></html>"))
	require.NoError(t, err)
	return doc.Find("div").First()
}

func TestTransformDoubleBreaksIntoParagraphs(t *testing.T) {
	t.Run("double br becomes two paragraphs", func(t *testing.T) {
		div := parseDiv(t, "<div>A<br><br>B</div>")
		walkDoubleBreaks(div)

		ps := div.Children().FilterFunction(func(_ int, s *goquery.Selection) bool {
			return goquery.NodeName(s) == "p"
		})
		require.Equal(t, 2, ps.Length())
		require.Equal(t, "A", strings.TrimSpace(ps.Eq(0).Text()))
		require.Equal(t, "B", strings.TrimSpace(ps.Eq(1).Text()))
	})

	t.Run("whitespace between breaks squeezes to double break", func(t *testing.T) {
		div := parseDiv(t, "<div>A<br> \n <br>B</div>")
		walkDoubleBreaks(div)

		ps := div.Children().FilterFunction(func(_ int, s *goquery.Selection) bool {
			return goquery.NodeName(s) == "p"
		})
		require.Equal(t, 2, ps.Length())
		require.Equal(t, "A", strings.TrimSpace(ps.Eq(0).Text()))
		require.Equal(t, "B", strings.TrimSpace(ps.Eq(1).Text()))
	})

	t.Run("single break between text does not split", func(t *testing.T) {
		div := parseDiv(t, "<div>A<br>text<br>B</div>")
		walkDoubleBreaks(div)

		ps := div.Children().FilterFunction(func(_ int, s *goquery.Selection) bool {
			return goquery.NodeName(s) == "p"
		})
		require.Equal(t, 0, ps.Length())
	})
}

func TestTransformMisusedDivsIntoParagraphs(t *testing.T) {
	t.Run("bare-text div becomes p", func(t *testing.T) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><div>hello</div></body></html>"))
		require.NoError(t, err)
		transformMisusedDivsIntoParagraphs(doc.Selection)
		require.Equal(t, 0, doc.Find("div").Length())
		require.Equal(t, 1, doc.Find("p").Length())
		require.Equal(t, "hello", strings.TrimSpace(doc.Find("p").Text()))
	})

	t.Run("div containing a p stays a div", func(t *testing.T) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><div><p>hello</p></div></body></html>"))
		require.NoError(t, err)
		transformMisusedDivsIntoParagraphs(doc.Selection)
		require.Equal(t, 1, doc.Find("div").Length())
		require.Equal(t, 1, doc.Find("p").Length())
	})
}
