package engine

import "regexp"

// Fixed, case-insensitive pattern set used throughout the pipeline. Compiled
// once at package init; never reconfigured at runtime.
var (
	unlikelyCandidatesRe = regexp.MustCompile(`(?i)combx|comment|community|disqus|extra|foot|header|menu|remark|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|pager|popup|tweet|twitter`)
	okMaybeCandidateRe    = regexp.MustCompile(`(?i)and|article|body|column|main|shadow`)
	positiveRe            = regexp.MustCompile(`(?i)article|body|content|entry|hentry|main|page|pagination|post|text|blog|story`)
	negativeRe            = regexp.MustCompile(`(?i)combx|comment|com-|contact|foot|footer|footnote|masthead|media|meta|outbrain|promo|related|scroll|shoutbox|sidebar|sponsor|shopping|tags|tool|widget`)
	extraneousRe          = regexp.MustCompile(`(?i)print|archive|comment|discuss|e-?mail|share|reply|all|login|sign|single`)
	divToPElementsRe      = regexp.MustCompile(`(?i)<(a|blockquote|dl|div|img|ol|p|pre|table|ul)`)

	// nextLinkRe matches "next"/"weiter"/"continue", or a ">" followed by
	// exactly one character other than "|" at the end of the string.
	nextLinkRe = regexp.MustCompile(`(?i)next|weiter|continue|>[^|]$`)
	prevLinkRe = regexp.MustCompile(`(?i)prev|earl|old|new|<`)
	pageRe     = regexp.MustCompile(`(?i)pag(e|ing|inat)`)
	firstLastRe = regexp.MustCompile(`(?i)first|last`)
)

// blockLevelTags are the tags that terminate a run of inline content while
// linearizing a <div> into parts (§4.4).
var blockLevelTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "div": true, "img": true, "p": true, "pre": true, "table": true,
}
