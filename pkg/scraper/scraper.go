// Package scraper resolves report inputs, downloading remote PDFs when needed
package scraper

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var client = &http.Client{
	Timeout: 30 * time.Second,
}

// IsURL reports whether src is an http(s) URL rather than a local path
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// ResolveInput returns a local PDF path for src. Local paths are returned as
// is. URLs are downloaded into cacheDir once; a statistics page that links to
// a PDF is followed to its first PDF link.
func ResolveInput(src, cacheDir string) (string, error) {
	if !IsURL(src) {
		return src, nil
	}

	localPath := filepath.Join(cacheDir, localName(src))
	if _, err := os.Stat(localPath); err == nil {
		log.Printf("Using existing PDF: %s", localPath)
		return localPath, nil
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	body, err := FetchURL(src)
	if err != nil {
		return "", err
	}

	if !isPDF(body) {
		links := ExtractPDFLinks(string(body))
		if len(links) == 0 {
			return "", fmt.Errorf("no PDF found at %s", src)
		}
		pdfURL, err := ResolveRelativeURL(src, links[0])
		if err != nil {
			return "", err
		}
		log.Printf("Following PDF link: %s", pdfURL)
		if body, err = FetchURL(pdfURL); err != nil {
			return "", err
		}
		if !isPDF(body) {
			return "", fmt.Errorf("%s is not a PDF", pdfURL)
		}
	}

	if err := os.WriteFile(localPath, body, 0644); err != nil {
		return "", fmt.Errorf("error saving PDF to file: %w", err)
	}
	log.Printf("Successfully downloaded PDF to %s", localPath)
	return localPath, nil
}

// FetchURL downloads the content at url
func FetchURL(url string) ([]byte, error) {
	log.Printf("Fetching URL: %s", url)

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("error fetching URL: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("HTTP Status: %d (%s)", resp.StatusCode, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 status code: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	log.Printf("Content-Type: %s, Content-Length: %d bytes", resp.Header.Get("Content-Type"), len(body))
	return body, nil
}

// ExtractPDFLinks returns the href of every link to a PDF, in document order
func ExtractPDFLinks(htmlContent string) []string {
	var links []string

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		log.Printf("Error parsing HTML content: %v", err)
		return links
	}

	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		u, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		if strings.HasSuffix(strings.ToLower(u.Path), ".pdf") {
			links = append(links, strings.TrimSpace(href))
		}
	})
	return links
}

// ResolveRelativeURL resolves ref against the page it was found on
func ResolveRelativeURL(baseURL, ref string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", ref, err)
	}
	return base.ResolveReference(r).String(), nil
}

func isPDF(body []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(body, "\r\n\t "), []byte("%PDF-"))
}

// localName derives the cache file name for a remote report
func localName(src string) string {
	name := "report"
	if u, err := url.Parse(src); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" && base != "" {
			name = base
		}
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}
