// Package mediawiki resolves file names to URLs through the MediaWiki
// query API.
package mediawiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
)

// DefaultEndpoint is the English Wikipedia API, which also serves Commons files.
const DefaultEndpoint = "https://en.wikipedia.org/w/api.php"

const defaultUserAgent = "nlp100/1.0 (https://github.com/cognicore/nlp100)"

// Client issues imageinfo queries. The zero value talks to DefaultEndpoint.
type Client struct {
	Endpoint  string
	UserAgent string

	HTTPClient *http.Client
}

type imageInfoResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			ImageInfo []struct {
				URL string `json:"url"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

// ImageURL returns the download URL of File:<fileName>. A non-200 status
// yields ErrRemote and a response without a URL yields ErrNotFound.
func (c *Client) ImageURL(ctx context.Context, fileName string) (string, error) {
	if strings.TrimSpace(fileName) == "" {
		return "", fmt.Errorf("%w: empty file name", internalerr.ErrInvalidInput)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(fileName), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent())
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", internalerr.ErrRemote, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: %s returned %s", internalerr.ErrRemote, c.endpoint(), resp.Status)
	}

	var payload imageInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode imageinfo: %v", internalerr.ErrParse, err)
	}
	pages := payload.Query.Pages
	if len(pages) == 0 {
		return "", fmt.Errorf("%w: no pages for %q", internalerr.ErrNotFound, fileName)
	}
	keys := make([]string, 0, len(pages))
	for k := range pages {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	page := pages[keys[0]]
	if len(page.ImageInfo) == 0 || page.ImageInfo[0].URL == "" {
		return "", fmt.Errorf("%w: no imageinfo url for %q", internalerr.ErrNotFound, fileName)
	}
	return page.ImageInfo[0].URL, nil
}

func (c *Client) queryURL(fileName string) string {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")
	params.Set("titles", "File:"+fileName)
	return c.endpoint() + "?" + params.Encode()
}

func (c *Client) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return DefaultEndpoint
}

func (c *Client) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return defaultUserAgent
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}
