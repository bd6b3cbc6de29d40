// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package illus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/mkaeser/menuboard/internal/httputil"
	"github.com/mkaeser/menuboard/pkg/types"
)

// imageAPIBase is the image-generation endpoint. Declared as a var so
// tests can substitute an httptest server.
var imageAPIBase = "https://image.pollinations.ai/prompt/"

// Illustrator requests an illustration for raw item text and writes the
// image to outPath. An error means no image exists for the slot; callers
// treat that as a local degradation, never a pipeline abort.
type Illustrator interface {
	Illustrate(ctx context.Context, text, outPath string) error
}

// Client is the production Illustrator backed by the remote API.
type Client struct {
	HTTP  *http.Client
	Vocab map[string]string
	Cfg   types.IllustrationConfig
}

// NewClient creates an illustration client. The vocabulary map may be
// nil, in which case prompts are sent untranslated.
func NewClient(httpClient *http.Client, vocab map[string]string, cfg types.IllustrationConfig) *Client {
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 1024
	}
	return &Client{HTTP: httpClient, Vocab: vocab, Cfg: cfg}
}

// Illustrate translates the text, requests an image, and writes it to
// outPath. The write goes to a temp file first and is renamed on
// success so a failed download never leaves a truncated image behind.
func (c *Client) Illustrate(ctx context.Context, text, outPath string) error {
	prompt := c.Cfg.PromptPrefix + Translate(c.Vocab, text)

	params := url.Values{
		"width":  {strconv.Itoa(c.Cfg.Width)},
		"height": {strconv.Itoa(c.Cfg.Height)},
		"nologo": {"true"},
	}
	reqURL := imageAPIBase + url.PathEscape(prompt) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.Cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.Cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0, nil)
	if err != nil {
		return fmt.Errorf("image API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image API returned HTTP %d", resp.StatusCode)
	}

	tmp := outPath + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing image file: %w", err)
	}
	return os.Rename(tmp, outPath)
}
