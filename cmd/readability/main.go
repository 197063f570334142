package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/spf13/cobra"

	"github.com/corpuslabs/readability"
)

var (
	outputFormat string
	outputFile   string
	timeout      time.Duration
	concurrency  int
	followPages  bool
	timing       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "readability",
		Short: "Extract clean article content from HTML pages",
		Long:  "readability applies heuristic scoring and sanitizing to pull article content out of arbitrary HTML",
	}

	extractCmd := &cobra.Command{
		Use:   "extract [url...]",
		Short: "Fetch and extract one or more URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputFormat, "format", "f", "html", "Output format (html|markdown|json)")
	extractCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	extractCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout per URL")
	extractCmd.Flags().IntVar(&concurrency, "concurrency", 10, "Maximum concurrent requests")
	extractCmd.Flags().BoolVar(&followPages, "follow-pages", true, "Follow discovered next-page links")
	extractCmd.Flags().BoolVar(&timing, "timing", false, "Show timing information for each URL")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("readability v0.1.0")
		},
	}

	rootCmd.AddCommand(extractCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type extractResult struct {
	URL      string
	Title    string
	Summary  readability.Summary
	Duration time.Duration
	Err      error
}

func runExtract(cmd *cobra.Command, args []string) error {
	results := batchExtract(args)

	var ok []extractResult
	for _, r := range results {
		if r.Err != nil {
			if timing {
				fmt.Fprintf(os.Stderr, "error extracting %s in %v: %v\n", r.URL, r.Duration, r.Err)
			}
			continue
		}
		ok = append(ok, r)
		if timing {
			fmt.Fprintf(os.Stderr, "extracted %s in %v\n", r.URL, r.Duration)
		}
	}

	if len(ok) == 0 {
		return fmt.Errorf("no URLs were successfully extracted")
	}

	return writeOutput(ok)
}

func batchExtract(urls []string) []extractResult {
	results := make([]extractResult, len(urls))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	client := &http.Client{Timeout: timeout}

	for i, u := range urls {
		wg.Add(1)
		sem <- struct{}{}
		go func(index int, url string) {
			defer wg.Done()
			defer func() { <-sem }()

			start := time.Now()
			title, summary, err := extractOne(client, url)
			results[index] = extractResult{
				URL:      url,
				Title:    title,
				Summary:  summary,
				Duration: time.Since(start),
				Err:      err,
			}
		}(i, u)
	}

	wg.Wait()
	return results
}

func extractOne(client *http.Client, url string) (string, readability.Summary, error) {
	resp, err := client.Get(url)
	if err != nil {
		return "", readability.Summary{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", readability.Summary{}, err
	}

	opts := []readability.Option{
		readability.WithURL(url),
		readability.WithContentType(resp.Header.Get("Content-Type")),
	}
	if followPages {
		opts = append(opts, readability.WithFetcher(readability.NewHTTPFetcher()))
	}

	doc, err := readability.New(string(body), opts...)
	if err != nil {
		return "", readability.Summary{}, err
	}

	title, err := doc.ShortTitle()
	if err != nil {
		return "", readability.Summary{}, err
	}

	summary, err := doc.Summary()
	if err != nil {
		return "", summary, err
	}
	return title, summary, nil
}

func writeOutput(results []extractResult) error {
	var out []byte
	var err error

	if len(results) == 1 {
		out, err = renderOne(results[0])
	} else {
		var all []map[string]any
		for _, r := range results {
			content, cerr := renderContent(r.Summary.HTML)
			if cerr != nil {
				return cerr
			}
			all = append(all, map[string]any{
				"url":      r.URL,
				"title":    r.Title,
				"score":    r.Summary.Score,
				"duration": r.Duration.String(),
				"content":  content,
			})
		}
		out, err = json.MarshalIndent(all, "", "  ")
	}
	if err != nil {
		return err
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, out, 0644)
	}
	fmt.Println(string(out))
	return nil
}

func renderOne(r extractResult) ([]byte, error) {
	switch outputFormat {
	case "json":
		content, err := renderContent(r.Summary.HTML)
		if err != nil {
			return nil, err
		}
		return json.MarshalIndent(map[string]any{
			"url":     r.URL,
			"title":   r.Title,
			"score":   r.Summary.Score,
			"content": content,
		}, "", "  ")
	default:
		content, err := renderContent(r.Summary.HTML)
		if err != nil {
			return nil, err
		}
		return []byte(content), nil
	}
}

func renderContent(html string) (string, error) {
	if outputFormat != "markdown" {
		return html, nil
	}
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", err
	}
	return markdown, nil
}
