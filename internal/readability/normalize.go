package engine

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// removeUnlikelyCandidates detaches elements whose class+id string looks
// like chrome (navigation, ads, comments) rather than article body, unless
// it also looks like it might be the article itself. Ruthless phase only.
func removeUnlikelyCandidates(root *goquery.Selection) {
	var toRemove []*goquery.Selection
	root.Find("*").Each(func(_ int, e *goquery.Selection) {
		if goquery.NodeName(e) == "body" {
			return
		}
		if e.Parent().Length() == 0 {
			return
		}
		class, _ := e.Attr("class")
		id, _ := e.Attr("id")
		s := class + " " + id
		if unlikelyCandidatesRe.MatchString(s) && !okMaybeCandidateRe.MatchString(s) {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		e.Remove()
	}
}

// transformMisusedDivsIntoParagraphs renames a <div> to <p> when none of its
// immediate children serialize to something DIV_TO_P recognizes as
// block/inline-block content — i.e. the div is really just holding inline
// text and was never meant to be a block container.
func transformMisusedDivsIntoParagraphs(root *goquery.Selection) {
	root.Find("div").Each(func(_ int, div *goquery.Selection) {
		var sb strings.Builder
		div.Contents().Each(func(_ int, child *goquery.Selection) {
			if goquery.NodeName(child) == "#text" {
				return
			}
			if h, err := goquery.OuterHtml(child); err == nil {
				sb.WriteString(h)
			}
		})
		if !divToPElementsRe.MatchString(sb.String()) {
			renameNode(div, "p")
		}
	})
}

// renameNode swaps e's tag in place, preserving attributes and children.
func renameNode(e *goquery.Selection, tag string) {
	node := nodeOf(e)
	if node == nil {
		return
	}
	node.Data = tag
}

// transformDoubleBreaksIntoParagraphs rewrites runs of content separated by
// double <br> (or a <br> immediately followed by a block element) into
// explicit <p> siblings, in place, for every <div> in root.
func transformDoubleBreaksIntoParagraphs(root *goquery.Selection) {
	root.Find("div").Each(func(_ int, div *goquery.Selection) {
		walkDoubleBreaks(div)
	})
}

const (
	stateStart = iota
	stateBR
)

// accumItem is one pending fragment of a paragraph being assembled: either
// raw text or a previously-standalone element being folded in.
type accumItem struct {
	text string
	elem *goquery.Selection
}

// rebuiltItem is one top-level fragment div will end up with: either a
// freshly synthesized <p> or a block element reinserted as-is.
type rebuiltItem struct {
	isParagraph bool
	accum       []accumItem
	elem        *goquery.Selection
}

func walkDoubleBreaks(div *goquery.Selection) {
	parts := squeezeBreaks(splitIntoParts(div))
	if len(parts) == 0 {
		return
	}

	state := stateStart
	var accum []accumItem
	var pendingBr *goquery.Selection
	var rebuilt []rebuiltItem
	// split records whether a double <br> or a block element separated the
	// content; without one the div is left exactly as it was.
	split := false

	flush := func() {
		if len(accum) == 0 {
			return
		}
		rebuilt = append(rebuilt, rebuiltItem{isParagraph: true, accum: accum})
		accum = nil
	}

	for _, p := range parts {
		switch state {
		case stateStart:
			switch {
			case p.isBr():
				pendingBr = p.elem
				state = stateBR
			case p.isBlock():
				flush()
				rebuilt = append(rebuilt, rebuiltItem{elem: p.elem})
				split = true
			case p.elem != nil:
				accum = append(accum, accumItem{elem: p.elem})
			default:
				accum = append(accum, accumItem{text: p.text})
			}

		case stateBR:
			switch {
			case p.isBr():
				pendingBr = nil
				flush()
				state = stateStart
				split = true
			case p.isBlock():
				accum = append(accum, accumItem{elem: pendingBr})
				pendingBr = nil
				flush()
				rebuilt = append(rebuilt, rebuiltItem{elem: p.elem})
				state = stateStart
				split = true
			case p.elem != nil:
				accum = append(accum, accumItem{elem: pendingBr}, accumItem{elem: p.elem})
				pendingBr = nil
				state = stateStart
			default:
				if pendingBr != nil {
					accum = append(accum, accumItem{elem: pendingBr})
					pendingBr = nil
				}
				accum = append(accum, accumItem{text: p.text})
				state = stateStart
			}
		}
	}
	if pendingBr != nil {
		accum = append(accum, accumItem{elem: pendingBr})
	}
	flush()

	if !split {
		return
	}

	div.Contents().Each(func(_ int, c *goquery.Selection) {
		c.Remove()
	})

	for _, r := range rebuilt {
		if !r.isParagraph {
			if r.elem != nil {
				div.AppendSelection(r.elem)
			}
			continue
		}
		hasText, hasElem := false, false
		for _, it := range r.accum {
			if it.elem != nil {
				hasElem = true
			} else if strings.TrimSpace(it.text) != "" {
				hasText = true
			}
		}
		if !hasText && !hasElem {
			continue
		}
		div.AppendHtml("<p></p>")
		p := div.Children().Last()
		for _, it := range r.accum {
			if it.elem != nil {
				p.AppendSelection(it.elem)
			} else if it.text != "" {
				p.AppendHtml(html.EscapeString(it.text))
			}
		}
	}
}
