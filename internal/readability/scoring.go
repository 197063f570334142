package engine

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/PuerkitoBio/goquery"
)

// tagBaseScore is the fixed per-tag contribution to score_node, independent
// of class/id weighting.
func tagBaseScore(tag string) int {
	switch tag {
	case "div":
		return 5
	case "pre", "td", "blockquote":
		return 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		return -3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		return -5
	default:
		return 0
	}
}

// scoreNode returns an element's starting content score: class/id weight
// plus its tag's fixed base contribution.
func scoreNode(e *goquery.Selection) int {
	return classWeight(e) + tagBaseScore(goquery.NodeName(e))
}

// scoreParagraphs walks every <p>, <pre> and <td> with enough text, and
// distributes a content-score increment onto its parent and (halved) onto
// its grandparent. minTextLen filters out paragraphs too short to carry
// signal (navigation fragments, captions, etc).
//
// Returns the populated candidate map plus the node visit order, so callers
// can break contentScore ties in document order.
func scoreParagraphs(root *goquery.Selection, minTextLen int) (candidateMap, []*html.Node) {
	candidates := candidateMap{}
	var order []*html.Node

	root.Find("p, pre, td").Each(func(_ int, node *goquery.Selection) {
		text := node.Text()
		if len(clean(text)) < minTextLen {
			return
		}

		parent := node.Parent()
		if parent.Length() == 0 {
			return
		}
		grandparent := parent.Parent()

		if _, created := candidates.getOrCreate(parent); created {
			order = append(order, nodeOf(parent))
		}
		if grandparent.Length() > 0 {
			if _, created := candidates.getOrCreate(grandparent); created {
				order = append(order, nodeOf(grandparent))
			}
		}

		contentScore := 1.0
		contentScore += float64(strings.Count(clean(text), ","))
		lengthBonus := float64(textLength(node) / 100)
		if lengthBonus > 3 {
			lengthBonus = 3
		}
		contentScore += lengthBonus

		if pc, ok := candidates.get(parent); ok {
			pc.contentScore += contentScore
		}
		if grandparent.Length() > 0 {
			if gc, ok := candidates.get(grandparent); ok {
				gc.contentScore += contentScore / 2
			}
		}
	})

	for _, n := range order {
		c := candidates[n]
		c.contentScore *= 1 - linkDensity(c.sel)
	}

	return candidates, order
}
