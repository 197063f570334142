package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractEmptyDocument(t *testing.T) {
	doc, err := parseHTML([]byte("<html><body></body></html>"), "", "")
	require.NoError(t, err)

	result := Extract(doc, NewOptions())
	require.False(t, result.OK)
	require.Equal(t, float64(0), result.Score)
	require.Empty(t, result.HTML)
}

func TestExtractAllParagraphsTooShort(t *testing.T) {
	html := "<html><body><div><p>short</p><p>also short</p><p>tiny</p></div></body></html>"
	doc, err := parseHTML([]byte(html), "", "")
	require.NoError(t, err)

	result := Extract(doc, NewOptions())
	require.False(t, result.OK)
}

func TestExtractRuthlessFallsBackToLenient(t *testing.T) {
	// The whole body lives inside class="comment", which the ruthless phase
	// strips outright, leaving zero candidates; only the lenient retry finds
	// one (here, the <body> wrapper itself, since the comment div's own very
	// negative class weight keeps it from winning best-candidate).
	paragraph := strings.Repeat("Filler sentence content for the article body goes here. ", 10)
	html := `<html><body><div class="comment"><p>` + paragraph + `</p></div></body></html>`

	doc, err := parseHTML([]byte(html), "", "")
	require.NoError(t, err)

	result := Extract(doc, NewOptions())
	require.True(t, result.OK)
}
