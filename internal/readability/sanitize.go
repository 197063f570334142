package engine

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/PuerkitoBio/goquery"
)

// sanitize cleans the assembled article in place and returns its serialized,
// attribute-filtered HTML.
func sanitize(article *goquery.Selection, candidates candidateMap, minTextLen int) string {
	article.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		if classWeight(h) < 0 || linkDensity(h) > 0.33 {
			h.Remove()
		}
	})

	article.Find("form, iframe, textarea").Remove()

	allowed := map[*html.Node]bool{}

	var targets []*goquery.Selection
	article.Find("table, ul, div").Each(func(_ int, e *goquery.Selection) {
		targets = append(targets, e)
	})
	for i := len(targets) - 1; i >= 0; i-- {
		sanitizeOne(targets[i], candidates, minTextLen, allowed)
	}

	out, err := goquery.OuterHtml(article)
	if err != nil {
		out = ""
	}
	return cleanAttributes(out)
}

func sanitizeOne(el *goquery.Selection, candidates candidateMap, minTextLen int, allowed map[*html.Node]bool) {
	n := nodeOf(el)
	if n == nil || allowed[n] || n.Parent == nil {
		return
	}

	weight := float64(classWeight(el))
	score := 0.0
	if c, ok := candidates.get(el); ok {
		score = c.contentScore
	}

	if weight+score < 0 {
		el.Remove()
		return
	}

	text := clean(el.Text())
	commaCount := strings.Count(text, ",")

	removed := false
	if commaCount < 10 {
		p := el.Find("p").Length()
		img := el.Find("img").Length()
		li := el.Find("li").Length() - 100
		a := el.Find("a").Length()
		embed := el.Find("embed").Length()
		input := el.Find("input").Length()
		_ = a

		tag := goquery.NodeName(el)

		switch {
		case p > 0 && img > p:
			removed = true
		case li > p && tag != "ul" && tag != "ol":
			removed = true
		case float64(input) > float64(p)/3.0:
			removed = true
		case textLength(el) < minTextLen && (img == 0 || img > 2):
			removed = true
		case weight < 25 && linkDensity(el) > 0.2:
			removed = true
		case weight >= 25 && linkDensity(el) > 0.5:
			removed = true
		case (embed == 1 && textLength(el) < 75) || embed > 1:
			removed = true
		}

		if !removed {
			// Sibling rescue: the source counters these with `=+`, which is
			// assignment-of-unary-plus rather than increment, so each side
			// only ever contributes its first non-empty sibling regardless
			// of how many siblings are walked. Preserved here rather than
			// fixed, per the observed contract.
			total := 0
			rescued := false

			for next := el.Next(); next.Length() > 0; next = next.Next() {
				if l := textLength(next); l > 0 {
					total += l
					break
				}
			}
			for prev := el.Prev(); prev.Length() > 0; prev = prev.Prev() {
				if l := textLength(prev); l > 0 {
					total += l
					break
				}
			}

			if total > 1000 {
				rescued = true
			}

			if rescued {
				allowed[n] = true
				el.Find("table, ul, div").Each(func(_ int, d *goquery.Selection) {
					if dn := nodeOf(d); dn != nil {
						allowed[dn] = true
					}
				})
			}
		}
	}

	if removed {
		el.Remove()
	}
}
