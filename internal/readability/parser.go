package engine

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParsedDocument is the root element the parser adapter hands back to
// callers: a parsed tree plus the page URL it was parsed with (not the
// base URL from an in-document <base> tag).
type ParsedDocument struct {
	Document *goquery.Document
	URL      string
}

// Parse is the exported entry point for the parser adapter (§4.3).
func Parse(data []byte, contentType, pageURL string) (*ParsedDocument, error) {
	doc, err := parseHTML(data, contentType, pageURL)
	if err != nil {
		return nil, err
	}
	return &ParsedDocument{Document: doc, URL: pageURL}, nil
}

// parseHTML implements the parser adapter (§4.3): decode raw bytes to UTF-8,
// parse into a goquery document, drop <script>/<style> noise the cleaner
// needs gone before scoring ever sees it, and resolve relative links.
// pageURL may be empty, in which case only an in-document <base> tag (if
// any) is honored.
func parseHTML(data []byte, contentType, pageURL string) (*goquery.Document, error) {
	text := toUTF8(data, contentType)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, &ParseError{Code: ErrUnparseable, Message: "parse html", Err: err}
	}

	doc.Find("script, style").Remove()

	resolveBase := pageURL
	if base, ok := doc.Find("base").First().Attr("href"); ok && base != "" {
		if pageURL != "" {
			if resolved, err := resolveURL(pageURL, base); err == nil {
				resolveBase = resolved
			}
		} else {
			resolveBase = base
		}
	}

	if resolveBase != "" {
		makeLinksAbsolute(doc.Selection, resolveBase)
	}

	return doc, nil
}

// makeLinksAbsolute rewrites href/src/srcset attributes in place against
// base.
func makeLinksAbsolute(root *goquery.Selection, base string) {
	parsedBase, err := url.Parse(base)
	if err != nil {
		return
	}

	for _, attr := range []string{"href", "src"} {
		root.Find("[" + attr + "]").Each(func(_ int, e *goquery.Selection) {
			v, ok := e.Attr(attr)
			if !ok || v == "" {
				return
			}
			if abs := resolveAgainst(parsedBase, v); abs != "" {
				e.SetAttr(attr, abs)
			}
		})
	}

	root.Find("[srcset]").Each(func(_ int, e *goquery.Selection) {
		v, ok := e.Attr("srcset")
		if !ok || v == "" {
			return
		}
		e.SetAttr("srcset", absolutizeSrcset(v, parsedBase))
	})
}

func resolveAgainst(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}

func resolveURL(pageURL, ref string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(u).String(), nil
}

// absolutizeSrcset rewrites every URL candidate in a srcset attribute,
// preserving its width/density descriptor.
func absolutizeSrcset(srcset string, base *url.URL) string {
	parts := strings.Split(srcset, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 0 {
			continue
		}
		fields[0] = resolveAgainst(base, fields[0])
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, ", ")
}
