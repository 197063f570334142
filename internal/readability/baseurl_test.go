package engine

import "testing"

func TestFindBaseURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"http://foo.com/article.html", "http://foo.com/article"},
		{"http://www.ew.com/ew/article/0,,20313460_20369436,00.html", "http://www.ew.com/ew/article/0,,20313460_20369436"},
		{"http://foo.com/page5.html", "http://foo.com"},
		{"http://foo.com/path/to/5.html", "http://foo.com/path/to"},
		{"http://foo.com/index.html", "http://foo.com"},
		{"http://foo.com/en/1234567890", "http://foo.com/1234567890"},
	}
	for _, c := range cases {
		if got := findBaseURL(c.in); got != c.want {
			t.Errorf("findBaseURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFindBaseURLIdempotent(t *testing.T) {
	urls := []string{
		"http://foo.com/article.html",
		"http://www.ew.com/ew/article/0,,20313460_20369436,00.html",
		"http://foo.com/page5.html",
		"http://foo.com/path/to/5.html",
		"http://foo.com/index.html",
		"http://foo.com/en/1234567890",
	}
	for _, u := range urls {
		once := findBaseURL(u)
		twice := findBaseURL(once)
		if once != twice {
			t.Errorf("findBaseURL not idempotent for %q: %q != %q", u, once, twice)
		}
	}
}
