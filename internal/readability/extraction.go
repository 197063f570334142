package engine

import (
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
)

// Options configures one extraction run. Zero value is not usable; use
// NewOptions for defaults.
type Options struct {
	MinTextLength int
	RetryLength   int
	Logger        *slog.Logger
}

// NewOptions returns the spec defaults: 25-character paragraph floor, 250-
// byte minimum cleaned-article length before falling back to lenient mode,
// and a discarding logger.
func NewOptions() Options {
	return Options{
		MinTextLength: 25,
		RetryLength:   250,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// logger returns o.Logger, or a discarding logger if it wasn't set (zero
// Options value, or an Options built by hand rather than via NewOptions).
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Result is the outcome of one extraction loop: a confidence score and the
// cleaned article HTML, or a zero score and empty HTML if nothing scored.
type Result struct {
	Score float64
	HTML  string
	OK    bool
}

// Extract runs the ruthless/lenient extraction loop over doc in place and
// returns the best assembled, sanitized article. doc is mutated; callers
// that need the pristine tree (e.g. for next-page discovery) must read it
// before calling Extract. The lenient pass runs on a copy of doc taken
// before the ruthless pass, so nothing the ruthless pass removed is lost.
func Extract(doc *goquery.Document, opts Options) Result {
	ruthless := true
	pristine := doc.Selection.Clone().Get(0)

	for {
		doc.Find("script, style").Remove()
		doc.Find("body").Each(func(_ int, b *goquery.Selection) {
			b.SetAttr("id", "readabilityBody")
		})

		root := doc.Selection

		if ruthless {
			removeUnlikelyCandidates(root)
		}
		transformDoubleBreaksIntoParagraphs(root)
		transformMisusedDivsIntoParagraphs(root)

		candidates, order := scoreParagraphs(root, opts.MinTextLength)
		best := selectBest(candidates, order)

		if best == nil {
			if ruthless {
				ruthless = false
				doc = goquery.NewDocumentFromNode(pristine)
				continue
			}
			return Result{}
		}

		article := assembleSiblings(best, candidates)
		cleaned := sanitize(article, candidates, opts.MinTextLength)

		if ruthless && len(cleaned) < opts.RetryLength {
			ruthless = false
			doc = goquery.NewDocumentFromNode(pristine)
			continue
		}

		return Result{Score: best.contentScore, HTML: cleaned, OK: true}
	}
}
