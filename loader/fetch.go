// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package loader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Fetcher is the interface that wraps the Fetch method.
//
// Fetch retrieves the payload identified by url, which
// is resolved against the fetcher's asset root.
// It must honor ctx cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc is a function that implements Fetcher.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) { return f(ctx, url) }

// StatusError is the error produced by HTTPFetcher when
// the response status is not 200 OK.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d %s", e.Code, http.StatusText(e.Code))
}

// HTTPFetcher fetches payloads over HTTP.
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client

	// UserAgent, if not empty, is sent with every request.
	UserAgent string
}

// Default HTTP client timeout.
const httpTimeout = 60 * time.Second

// NewHTTPFetcher creates an HTTPFetcher that resolves
// URLs against base.
// If client is nil, a client with a 60 s timeout is used.
func NewHTTPFetcher(base string, client *http.Client) (*HTTPFetcher, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf(loaderPrefix+"%w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, newLoaderErr("base URL must be http or https: " + base)
	}
	if client == nil {
		client = &http.Client{Timeout: httpTimeout}
	}
	return &HTTPFetcher{base: u, client: client}, nil
}

// Resolve returns the absolute URL that ref names.
func (f *HTTPFetcher) Resolve(ref string) (string, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return f.base.ResolveReference(r).String(), nil
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	abs, err := f.Resolve(ref)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, abs, nil)
	if err != nil {
		return nil, err
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// FSFetcher fetches payloads from a file system.
// A leading slash in the URL is ignored, so "/model.glb"
// names "model.glb" at the root of FS.
type FSFetcher struct {
	FS fs.FS
}

// Fetch implements Fetcher.
func (f FSFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := path.Clean(strings.TrimPrefix(ref, "/"))
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: ref, Err: fs.ErrInvalid}
	}
	return fs.ReadFile(f.FS, name)
}
