// Package overrides loads manually maintained catalog corrections.
package overrides

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/goportfolio/internal/adapter/rest"
	"github.com/m-zajac/goportfolio/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Loader reads override documents from http(s) urls or local files.
//
// Repositories document is a json list of {"url": "...", "id": 123} entries.
// Live urls document is a json object mapping repository name to live url.
// Empty location, missing file and 404 response all mean there are no overrides.
type Loader struct {
	doer             rest.HTTPDoer
	reposLocation    string
	liveURLsLocation string
	documentMaxSize  int
}

var _ app.OverrideProvider = &Loader{}

// NewLoader creates new Loader instance.
func NewLoader(doer rest.HTTPDoer, reposLocation string, liveURLsLocation string) *Loader {
	return &Loader{
		doer:             doer,
		reposLocation:    strings.TrimSpace(reposLocation),
		liveURLsLocation: strings.TrimSpace(liveURLsLocation),
		documentMaxSize:  1024 * 1024,
	}
}

// ExtraRepositories returns references of repositories to include beyond platform listings.
// Entries without url are skipped, since a bare native id doesn't tell which platform it belongs to.
func (l *Loader) ExtraRepositories(ctx context.Context) ([]app.RepositoryRef, error) {
	data, err := l.read(ctx, l.reposLocation)
	if err != nil || data == nil {
		return nil, err
	}

	var refs []app.RepositoryRef
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, app.MalformedResponseError(fmt.Sprintf("unmarshalling repositories overrides: %v", err))
	}

	out := make([]app.RepositoryRef, 0, len(refs))
	for _, ref := range refs {
		ref.URL = strings.TrimSpace(ref.URL)
		if ref.URL == "" {
			continue
		}
		out = append(out, ref)
	}

	return out, nil
}

// LiveURLs returns live urls forced per repository name.
func (l *Loader) LiveURLs(ctx context.Context) (map[string]string, error) {
	data, err := l.read(ctx, l.liveURLsLocation)
	if err != nil || data == nil {
		return map[string]string{}, err
	}

	var urls map[string]string
	if err := json.Unmarshal(data, &urls); err != nil {
		return map[string]string{}, app.MalformedResponseError(fmt.Sprintf("unmarshalling live url overrides: %v", err))
	}

	out := make(map[string]string, len(urls))
	for name, u := range urls {
		u = strings.TrimSpace(u)
		if name == "" || u == "" {
			continue
		}
		out[name] = u
	}

	return out, nil
}

// read returns document content, or nil if there's no document.
func (l *Loader) read(ctx context.Context, location string) ([]byte, error) {
	if location == "" {
		return nil, nil
	}

	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		data, err := rest.Get(ctx, l.doer, location, nil, l.documentMaxSize)
		if app.IsNotFoundError(err) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", location, err)
		}
		return data, nil
	}

	data, err := ioutil.ReadFile(location)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", location, err)
	}
	if len(data) > l.documentMaxSize {
		return nil, app.MalformedResponseError(fmt.Sprintf("%s exceeds %d bytes", location, l.documentMaxSize))
	}

	return data, nil
}
