package dataset

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetch downloads a published games.json artifact. This talks to wherever
// the static site is hosted, not to the storefront itself.
func Fetch(ctx context.Context, url string) (*Snapshot, error) {
	client := resty.New().SetTimeout(time.Second * 30)

	res, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	if res.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch dataset: %s responded with status %d", url, res.StatusCode())
	}
	return Load(bytes.NewReader(res.Body()))
}
