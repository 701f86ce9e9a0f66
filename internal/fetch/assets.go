package fetch

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListAssets fetches a release asset listing page and returns the data files
// linked from it. listingURL is the expanded-assets page for one release
// (see Sources.AssetListing).
func (c *Client) ListAssets(ctx context.Context, listingURL string) ([]Asset, error) {
	body, err := c.Get(ctx, listingURL)
	if err != nil {
		return nil, err
	}
	return parseAssets(body)
}

// parseAssets extracts download links from a release asset listing page.
func parseAssets(body []byte) ([]Asset, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing asset listing: %w", err)
	}

	var assets []Asset
	seen := make(map[string]bool)

	doc.Find("a").Each(func(i int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || !strings.Contains(href, "/releases/download/") {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = "https://github.com" + href
		}
		if seen[href] {
			return
		}
		seen[href] = true
		assets = append(assets, Asset{
			Name: path.Base(href),
			URL:  href,
		})
	})

	return assets, nil
}
