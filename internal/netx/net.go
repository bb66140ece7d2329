// Package netx holds small HTTP helpers for talking to object storage
// directly through presigned URLs.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DownloadPresignedURL streams the object behind a presigned GET url into w.
// Any status other than 200 is an error carrying the storage's reply.
func DownloadPresignedURL(ctx context.Context, url string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	return nil
}
