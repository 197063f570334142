package engine

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// part is one element of the linear stream produced by flattening a <div>'s
// text + children + tails. It's a sum type: either a bare text fragment or a
// reference to a child element (which carries its own serialized form).
type part struct {
	text string          // valid when elem == nil
	elem *goquery.Selection // valid when non-nil
}

func textPart(s string) part { return part{text: s} }
func elemPart(e *goquery.Selection) part { return part{elem: e} }

func (p part) isBr() bool {
	return p.elem != nil && goquery.NodeName(p.elem) == "br"
}

func (p part) isBlock() bool {
	return p.elem != nil && blockLevelTags[goquery.NodeName(p.elem)]
}

func (p part) isWhitespace() bool {
	return p.elem == nil && strings.TrimSpace(p.text) == ""
}

// splitIntoParts linearizes div's text node, then for each child element the
// child itself followed by its trailing text ("tail"). This mirrors how an
// element's content is laid out: leading text, child, tail-text, child,
// tail-text, ...
func splitIntoParts(div *goquery.Selection) []part {
	var parts []part
	div.Contents().Each(func(_ int, node *goquery.Selection) {
		if goquery.NodeName(node) == "#text" {
			if t := node.Text(); t != "" {
				parts = append(parts, textPart(t))
			}
			return
		}
		parts = append(parts, elemPart(node))
	})
	return parts
}

// squeezeBreaks drops whitespace-only parts sitting strictly between two
// <br> parts, so "A<br> \n <br>B" behaves like "A<br><br>B".
func squeezeBreaks(parts []part) []part {
	var brIdx []int
	for i, p := range parts {
		if p.isBr() {
			brIdx = append(brIdx, i)
		}
	}
	if len(brIdx) < 2 {
		return parts
	}

	drop := make(map[int]bool)
	for k := 0; k < len(brIdx)-1; k++ {
		a, b := brIdx[k], brIdx[k+1]
		allWhitespace := true
		for i := a + 1; i < b; i++ {
			if !parts[i].isWhitespace() {
				allWhitespace = false
				break
			}
		}
		if allWhitespace {
			for i := a + 1; i < b; i++ {
				drop[i] = true
			}
		}
	}

	if len(drop) == 0 {
		return parts
	}
	out := make([]part, 0, len(parts)-len(drop))
	for i, p := range parts {
		if !drop[i] {
			out = append(out, p)
		}
	}
	return out
}
