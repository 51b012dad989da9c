package overmark

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPTransformRequest configures HTTPTransform.
type HTTPTransformRequest struct {
	URL      string
	Client   *http.Client
	Writer   io.Writer
	Format   Format
	Theme    Theme
	Width    int
	Metadata []SpanMeta
	Options  []Option
}

// HTTPTransform fetches an annotated export over HTTP(S) and transforms it.
func HTTPTransform(ctx context.Context, req HTTPTransformRequest) error {
	if req.URL == "" {
		return fmt.Errorf("transform http: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("transform http: Writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("transform http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return fmt.Errorf("transform http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("transform http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("transform http: status %s", resp.Status)
	}
	return Transform(TransformRequest{
		Source:   resp.Body,
		Writer:   req.Writer,
		Format:   req.Format,
		Theme:    req.Theme,
		Width:    req.Width,
		Metadata: req.Metadata,
		Options:  req.Options,
	})
}
