package engine

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/agnivade/levenshtein"
)

var (
	titleSplittersRe = regexp.MustCompile(`(: | - | \| )`)
	domainEndingsRe  = regexp.MustCompile(`\.com$|\.net$|\.org$|\.co\.uk$`)
)

// Title returns the document's <title> text, whitespace-normalized by
// clean, or "" if none.
func Title(doc *goquery.Document) string {
	return clean(doc.Find("title").First().Text())
}

// ShortTitle strips a trailing/leading site-name suffix from title, the way
// a breadcrumbed or "Article Title - Site Name" title gets trimmed down to
// just the article's own title.
func ShortTitle(title, pageURL string) string {
	if title == "" {
		return ""
	}
	if !titleSplittersRe.MatchString(title) {
		return title
	}

	segments := splitTitleWithSeparators(title)
	if len(segments) <= 1 {
		return title
	}

	if breadcrumb := extractBreadcrumbTitle(segments, title); breadcrumb != "" {
		return breadcrumb
	}
	if domainTrimmed := trimDomainFromTitle(segments, pageURL); domainTrimmed != "" {
		return domainTrimmed
	}
	return title
}

func splitTitleWithSeparators(title string) []string {
	var out []string
	last := 0
	for _, m := range titleSplittersRe.FindAllStringIndex(title, -1) {
		start, end := m[0], m[1]
		if start > last {
			out = append(out, title[last:start])
		}
		out = append(out, title[start:end])
		last = end
	}
	if last < len(title) {
		out = append(out, title[last:])
	}
	return out
}

func extractBreadcrumbTitle(segments []string, full string) string {
	if len(segments) < 6 {
		return ""
	}

	counts := map[string]int{}
	for _, s := range segments {
		counts[s]++
	}
	maxTerm, maxCount := "", 0
	for term, count := range counts {
		if count > maxCount {
			maxTerm = term
			maxCount = count
		}
	}

	if maxCount >= 2 && len(maxTerm) <= 4 {
		segments = strings.Split(full, maxTerm)
	}

	if len(segments) == 0 {
		return full
	}
	first, last := segments[0], segments[len(segments)-1]
	longest := first
	if len(last) > len(longest) {
		longest = last
	}
	if len(longest) > 10 {
		return longest
	}
	return full
}

func trimDomainFromTitle(segments []string, pageURL string) string {
	if pageURL == "" || len(segments) < 2 {
		return ""
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	nakedDomain := domainEndingsRe.ReplaceAllString(u.Host, "")

	startSlug := strings.ToLower(strings.ReplaceAll(segments[0], " ", ""))
	if levenshteinRatio(startSlug, nakedDomain) > 0.4 && len(startSlug) > 5 && len(segments) >= 3 {
		return strings.Join(segments[2:], "")
	}

	endSlug := strings.ToLower(strings.ReplaceAll(segments[len(segments)-1], " ", ""))
	if levenshteinRatio(endSlug, nakedDomain) > 0.4 && len(endSlug) >= 5 && len(segments) >= 3 {
		return strings.Join(segments[:len(segments)-2], "")
	}

	return ""
}

// levenshteinRatio is a similarity score in [0,1]: 1 for identical strings,
// scaled by edit distance over the longer string's length otherwise.
func levenshteinRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	ratio := 1.0 - float64(dist)/float64(maxLen)
	if ratio < 0 {
		ratio = 0
	}
	return ratio
}

// isNearDuplicateText supplements the exact first-<p> equality check in
// multi-page duplicate detection with a fuzzy fallback: pages re-fetched
// through slightly different next-page links sometimes differ only in
// boilerplate (ads, "read more" prefixes) injected around identical prose.
func isNearDuplicateText(a, b string) bool {
	a, b = clean(a), clean(b)
	if a == "" || b == "" {
		return false
	}
	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	if shorter < 40 {
		return false
	}
	return levenshteinRatio(a, b) > 0.95
}
