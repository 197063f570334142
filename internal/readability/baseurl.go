package engine

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	extensionTokenRe = regexp.MustCompile(`^[A-Za-z]+$`)
	ewCMSRe          = regexp.MustCompile(`,00`)
	pageNumberTailRe = regexp.MustCompile(`((_|-)?p[a-z]*|(_|-))[0-9]{1,2}$`)
	pureNumberRe     = regexp.MustCompile(`^[0-9]{1,2}$`)
	shortAlphaRe     = regexp.MustCompile(`[A-Za-z]`)
)

// findBaseURL reduces a page URL to the form likely shared by every page of
// a multi-page article, by stripping per-page segments from its path.
// Idempotent: findBaseURL(findBaseURL(u)) == findBaseURL(u).
func findBaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	segments := strings.Split(u.Path, "/")
	n := len(segments)
	var kept []string

	for i, seg := range segments {
		if seg == "" {
			kept = append(kept, seg)
			continue
		}

		if dot := strings.Index(seg, "."); dot >= 0 {
			rest := seg[dot+1:]
			if tok := firstDotToken(rest); tok != "" && extensionTokenRe.MatchString(tok) {
				seg = seg[:dot]
			}
		}

		seg = ewCMSRe.ReplaceAllString(seg, "")

		if i >= n-2 {
			stripped := pageNumberTailRe.ReplaceAllString(seg, "")
			if stripped == "" {
				continue
			}
			seg = stripped
		}

		if i >= n-2 && pureNumberRe.MatchString(seg) {
			continue
		}

		if i == n-1 && strings.ToLower(seg) == "index" {
			continue
		}

		if i >= n-2 && len(seg) < 3 {
			last := segments[n-1]
			if !shortAlphaRe.MatchString(last) {
				continue
			}
		}

		kept = append(kept, seg)
	}

	u.Path = strings.Join(kept, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

func firstDotToken(s string) string {
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// stripTrailingSlash removes one trailing "/" from a URL's path, mirroring
// the next-page scorer's href normalization.
func stripTrailingSlash(raw string) string {
	return strings.TrimSuffix(raw, "/")
}

func sameNetloc(a, b string) bool {
	ua, errA := url.Parse(a)
	ub, errB := url.Parse(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ua.Host == ub.Host
}

// isAbsoluteURL reports whether raw carries its own host, as opposed to a
// path-only or scheme-relative reference that necessarily belongs to the
// current page's site.
func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Host != ""
}

func parseLinkText(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
