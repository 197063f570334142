package engine

import (
	"golang.org/x/net/html"

	"github.com/PuerkitoBio/goquery"
)

// candidate tracks a scored element during paragraph scoring. Keyed by node
// identity rather than structural equality: the underlying *html.Node
// pointer goquery hands back is already a stable, hashable handle, so no
// separate arena/index scheme is needed.
type candidate struct {
	sel          *goquery.Selection
	contentScore float64
}

// candidateMap is scoped to a single extraction-loop iteration and discarded
// on return.
type candidateMap map[*html.Node]*candidate

func nodeOf(e *goquery.Selection) *html.Node {
	if e == nil || e.Length() == 0 {
		return nil
	}
	return e.Get(0)
}

// getOrCreate ensures e has a candidate entry, scoring it fresh (via
// scoreNode) if this is the first time it's been visited as a paragraph
// parent/grandparent. Returns (candidate, true) if it was just created.
func (m candidateMap) getOrCreate(e *goquery.Selection) (*candidate, bool) {
	n := nodeOf(e)
	if n == nil {
		return nil, false
	}
	if c, ok := m[n]; ok {
		return c, false
	}
	c := &candidate{sel: e, contentScore: float64(scoreNode(e))}
	m[n] = c
	return c, true
}

func (m candidateMap) get(e *goquery.Selection) (*candidate, bool) {
	n := nodeOf(e)
	if n == nil {
		return nil, false
	}
	c, ok := m[n]
	return c, ok
}

// selectBest returns the candidate with the highest content score, breaking
// ties in favor of the earliest-created (document order of first visit,
// since score_paragraphs visits in document order). Returns nil if empty.
func selectBest(candidates candidateMap, ordered []*html.Node) *candidate {
	var best *candidate
	for _, n := range ordered {
		c, ok := candidates[n]
		if !ok {
			continue
		}
		if best == nil || c.contentScore > best.contentScore {
			best = c
		}
	}
	return best
}
