package engine

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	newlineRunRe = regexp.MustCompile(`\s*\n\s*`)
	spaceRunRe   = regexp.MustCompile(`[ \t]{2,}`)
)

// clean collapses newline runs to a single "\n", collapses runs of 2+ spaces
// or tabs to a single space, and trims the result. This is the "visible
// length" normalization used everywhere text volume matters.
func clean(text string) string {
	text = newlineRunRe.ReplaceAllString(text, "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// textLength returns the length of the cleaned descendant text of e.
func textLength(e *goquery.Selection) int {
	return len(clean(e.Text()))
}

// linkDensity is the fraction of e's visible text that lives inside <a>
// descendants. Always in [0, 1].
func linkDensity(e *goquery.Selection) float64 {
	linkLen := 0
	e.Find("a").Each(func(_ int, a *goquery.Selection) {
		linkLen += textLength(a)
	})
	total := textLength(e)
	if total < 1 {
		total = 1
	}
	d := float64(linkLen) / float64(total)
	if d > 1 {
		d = 1
	}
	return d
}

// classWeight scores an element's class/id against the positive/negative
// regexes. Net range is -50..+50.
func classWeight(e *goquery.Selection) int {
	weight := 0
	if class, ok := e.Attr("class"); ok && class != "" {
		if negativeRe.MatchString(class) {
			weight -= 25
		}
		if positiveRe.MatchString(class) {
			weight += 25
		}
	}
	if id, ok := e.Attr("id"); ok && id != "" {
		if negativeRe.MatchString(id) {
			weight -= 25
		}
		if positiveRe.MatchString(id) {
			weight += 25
		}
	}
	return weight
}

// describe renders a short "tag[#id][.class]" debug label for e, including
// its parent. Used only for debug logging.
func describe(e *goquery.Selection) string {
	if e == nil || e.Length() == 0 {
		return "<nil>"
	}
	self := describeOne(e)
	parent := e.Parent()
	if parent.Length() == 0 {
		return self
	}
	return describeOne(parent) + " > " + self
}

func describeOne(e *goquery.Selection) string {
	tag := goquery.NodeName(e)
	if id, ok := e.Attr("id"); ok && id != "" {
		tag += "#" + id
	}
	if class, ok := e.Attr("class"); ok && class != "" {
		tag += "." + strings.ReplaceAll(strings.TrimSpace(class), " ", ".")
	}
	return tag
}
