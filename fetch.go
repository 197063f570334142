package readability

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/corpuslabs/readability/internal/readability"
)

// Fetcher retrieves the raw bytes and content type of a page URL, used to
// walk a multi-page article's next-page chain. Implementations may wrap an
// HTTP client, a cache, a test double, anything — the core only requires
// that a failure come back as an error rather than a panic.
type Fetcher = engine.Fetcher

// HTTPFetcher is the default Fetcher: a plain net/http client with a
// bounded timeout and a capped redirect chain.
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
}

// NewHTTPFetcher builds an HTTPFetcher with a 30-second timeout, a limit of
// 5 redirects, and the default net/http transport.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("stopped after 5 redirects")
				}
				return nil
			},
		},
		UserAgent: "readability/1.0",
	}
}

func (f *HTTPFetcher) Fetch(url string) ([]byte, string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}
