package engine

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type nextPageCandidate struct {
	href     string
	score    float64
	linkText string
}

// findNextPageURL scores every <a> in doc looking for a "next page" link,
// keyed by href so repeated links accumulate their visible text. baseURL
// and pageURL may be empty; seen holds hrefs already visited by the
// multi-page assembler so they're skipped.
func findNextPageURL(doc *goquery.Selection, baseURL, pageURL string, seen map[string]bool) (string, bool) {
	candidates := map[string]*nextPageCandidate{}
	var order []string

	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		rawHref, ok := a.Attr("href")
		if !ok || rawHref == "" {
			return
		}
		href := stripTrailingSlash(rawHref)

		if href == baseURL || href == pageURL || seen[href] {
			return
		}

		if pageURL != "" && isAbsoluteURL(href) && !sameNetloc(href, pageURL) {
			return
		}

		linkText := clean(a.Text())
		if extraneousRe.MatchString(linkText) || len(linkText) > 25 {
			return
		}

		if baseURL != "" {
			rest := strings.ReplaceAll(href, baseURL, "")
			if !strings.ContainsAny(rest, "0123456789") {
				return
			}
		}

		c, exists := candidates[href]
		if !exists {
			c = &nextPageCandidate{href: href, linkText: linkText}
			candidates[href] = c
			order = append(order, href)
		} else {
			c.linkText = c.linkText + " | " + linkText
		}

		class, _ := a.Attr("class")
		id, _ := a.Attr("id")
		linkData := linkText + " " + class + " " + id

		if baseURL != "" && !strings.HasPrefix(href, baseURL) {
			c.score -= 25
		}
		if nextLinkRe.MatchString(linkData) {
			c.score += 50
		}
		if pageRe.MatchString(linkData) {
			c.score += 25
		}
		if firstLastRe.MatchString(linkData) && !nextLinkRe.MatchString(c.linkText) {
			c.score -= 65
		}
		if negativeRe.MatchString(linkData) || extraneousRe.MatchString(linkData) {
			c.score -= 50
		}
		if prevLinkRe.MatchString(linkData) {
			c.score -= 200
		}

		ancestorPageBonus := false
		ancestorNegativePenalty := false
		a.ParentsFiltered("*").Each(func(_ int, anc *goquery.Selection) {
			ac, _ := anc.Attr("class")
			aid, _ := anc.Attr("id")
			s := ac + " " + aid
			if !ancestorPageBonus && pageRe.MatchString(s) {
				c.score += 25
				ancestorPageBonus = true
			}
			if !ancestorNegativePenalty && negativeRe.MatchString(s) && !positiveRe.MatchString(s) {
				c.score -= 25
				ancestorNegativePenalty = true
			}
		})

		if pageRe.MatchString(href) {
			c.score += 25
		}
		if extraneousRe.MatchString(href) {
			c.score -= 15
		}

		if n, ok := parseLinkText(linkText); ok {
			if n == 1 {
				c.score -= 10
			} else {
				bonus := 10 - n
				if bonus < 0 {
					bonus = 0
				}
				c.score += float64(bonus)
			}
		}
	})

	var best *nextPageCandidate
	for _, href := range order {
		c := candidates[href]
		if best == nil || c.score > best.score {
			best = c
		}
	}
	if best == nil || best.score < 50 {
		return "", false
	}
	return best.href, true
}
