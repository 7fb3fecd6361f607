package assemble

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	// Decoders for the photo formats accepted at intake
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jonathan/cv-builder/internal/document"
)

// maxAssetSize caps how much image data we are willing to embed.
const maxAssetSize = 10 << 20 // 10 MiB

// defaultAssetTimeout bounds a single asset download.
const defaultAssetTimeout = 15 * time.Second

// embedImages replaces every remote image source in the tree with a data URI
// so the printed page needs no network access. Data URIs already present are
// left alone. Any unreachable or undecodable asset fails the whole assembly
// with an AssetFetchError.
func (a *Assembler) embedImages(ctx context.Context, tree *document.Tree) error {
	for _, img := range tree.Images() {
		if strings.HasPrefix(img.Src, "data:") {
			continue
		}
		uri, err := a.fetchAsDataURI(ctx, img.Src)
		if err != nil {
			return err
		}
		img.Src = uri
	}
	return nil
}

// fetchAsDataURI downloads an image, verifies it decodes, and returns it as a
// base64 data URI.
func (a *Assembler) fetchAsDataURI(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultAssetTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &AssetFetchError{URL: url, Message: "invalid asset URL", Cause: err}
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", &AssetFetchError{URL: url, Message: "asset unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &AssetFetchError{URL: url, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize+1))
	if err != nil {
		return "", &AssetFetchError{URL: url, Message: "reading asset body", Cause: err}
	}
	if len(data) > maxAssetSize {
		return "", &AssetFetchError{URL: url, Message: "asset exceeds size limit"}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", &AssetFetchError{URL: url, Message: "asset is not a decodable image", Cause: err}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", &AssetFetchError{URL: url, Message: "asset has empty dimensions"}
	}

	mime := "image/" + format
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
