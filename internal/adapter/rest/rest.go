// Package rest contains http plumbing shared by platform adapters.
package rest

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/m-zajac/goportfolio/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Do executes req with given headers and returns at most maxBytes of response body.
//
// Status 404 results in app.NotFoundError, other non-success statuses and transport failures in app.UnreachableError.
// Body exceeding maxBytes results in app.MalformedResponseError.
func Do(ctx context.Context, doer HTTPDoer, req *http.Request, header http.Header, maxBytes int) ([]byte, int, error) {
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, 0, app.UnreachableError(fmt.Sprintf("doing http request: %v", err))
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, resp.StatusCode, app.NotFoundError(fmt.Sprintf("%s not found", req.URL.Path))
	}
	if resp.StatusCode/100 > 3 {
		if RateLimitExceeded(resp.Header) {
			return nil, resp.StatusCode, app.UnreachableError("rate limit exceeded")
		}
		return nil, resp.StatusCode, app.UnreachableError(fmt.Sprintf("got invalid http status code: %d", resp.StatusCode))
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, nil
	}

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, resp.StatusCode, app.UnreachableError(fmt.Sprintf("reading http response body: %v", err))
	}
	if len(b) > maxBytes {
		return nil, resp.StatusCode, app.MalformedResponseError(fmt.Sprintf("response body exceeds %d bytes", maxBytes))
	}

	return b, resp.StatusCode, nil
}

// Get executes GET request to url.
func Get(ctx context.Context, doer HTTPDoer, url string, header http.Header, maxBytes int) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	body, _, err := Do(ctx, doer, req, header, maxBytes)
	return body, err
}

// RateLimitExceeded checks GitHub/GitLab style rate limit headers.
func RateLimitExceeded(h http.Header) bool {
	for _, name := range []string{"X-RateLimit-Remaining", "RateLimit-Remaining"} {
		if s := h.Get(name); s != "" {
			if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
				return true
			}
		}
	}
	return false
}
