// Command score-client exercises a running scoring engine over HTTP: it
// registers keywords, submits a release and prints the scored result.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

const sampleTitle = "Mustermann GmbH startet neue Software für den Mittelstand"

const sampleText = `Die Mustermann GmbH präsentiert heute ihre neue Software für die Digitalisierung des Mittelstands.

Die Software automatisiert über 200 Routineprozesse und senkt die Bearbeitungszeit um 40 Prozent. Ab dem 1. März 2026 ist die Lösung verfügbar.

"Mit dieser Software geben wir dem Mittelstand ein Werkzeug an die Hand, das bisher Konzernen vorbehalten war", sagt Geschäftsführerin Maria Mustermann.

Weitere Informationen unter https://www.mustermann.example/software

#Software #Digitalisierung #Mittelstand`

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9090", "Base URL of the scoring engine")
		title    = flag.String("title", sampleTitle, "Headline to score")
		textFile = flag.String("text-file", "", "File with the release text (default: built-in sample)")
		keywords = flag.String("keywords", "Software,Digitalisierung", "Comma-separated keywords (max 2)")
		refresh  = flag.Bool("refresh", false, "Re-run semantic analysis before printing the result")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	text := sampleText
	if *textFile != "" {
		data, err := os.ReadFile(*textFile)
		if err != nil {
			fail("read text file: %v", err)
		}
		text = string(data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := &client{baseURL: strings.TrimRight(*baseURL, "/"), http: &http.Client{Timeout: *timeout}}

	for _, kw := range strings.Split(*keywords, ",") {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if err := client.addKeyword(ctx, kw); err != nil {
			fail("add keyword %q: %v", kw, err)
		}
	}

	result, err := client.score(ctx, text, *title)
	if err != nil {
		fail("score: %v", err)
	}

	if *refresh {
		result, err = client.refresh(ctx)
		if err != nil {
			fail("refresh: %v", err)
		}
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fail("encode result: %v", err)
	}
	fmt.Println(string(out))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

type client struct {
	baseURL string
	http    *http.Client
}

func (c *client) addKeyword(ctx context.Context, keyword string) error {
	_, err := c.do(ctx, http.MethodPost, "/keywords", map[string]string{"keyword": keyword})
	return err
}

func (c *client) score(ctx context.Context, text, title string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/score", map[string]string{"text": text, "title": title})
}

func (c *client) refresh(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/refresh", nil)
}

func (c *client) do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(data)))
	}
	return data, nil
}
