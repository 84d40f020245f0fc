package overrides

import (
	"context"
	"io/ioutil"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/m-zajac/goportfolio/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_ExtraRepositories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		location      string
		routes        map[string]mock.Route
		want          []app.RepositoryRef
		wantErr       bool
		wantMalformed bool
	}{
		{
			name: "empty location",
		},
		{
			name:     "remote document",
			location: "https://config.fake/overrides/repos.json",
			routes: map[string]mock.Route{
				"/overrides/repos.json": {Body: []byte(`[
					{"url": "https://github.com/acme/secret-lab", "id": 42},
					{"url": " https://gitlab.com/acme/tool "},
					{"url": ""},
					{"id": 7}
				]`)},
			},
			want: []app.RepositoryRef{
				{URL: "https://github.com/acme/secret-lab", NativeID: 42},
				{URL: "https://gitlab.com/acme/tool"},
			},
		},
		{
			name:     "ids without url are skipped",
			location: "https://config.fake/overrides/repos.json",
			routes: map[string]mock.Route{
				"/overrides/repos.json": {Body: []byte(`[{"id": 7}, {"id": 8, "url": " "}]`)},
			},
			want: []app.RepositoryRef{},
		},
		{
			name:     "remote document missing",
			location: "https://config.fake/overrides/repos.json",
			routes:   map[string]mock.Route{},
		},
		{
			name:     "remote server error",
			location: "https://config.fake/overrides/repos.json",
			routes: map[string]mock.Route{
				"/overrides/repos.json": {Status: http.StatusBadGateway},
			},
			wantErr: true,
		},
		{
			name:     "malformed document",
			location: "https://config.fake/overrides/repos.json",
			routes: map[string]mock.Route{
				"/overrides/repos.json": {Body: []byte(`{"url": "not a list"}`)},
			},
			wantErr:       true,
			wantMalformed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &mock.HTTPDoer{Routes: tt.routes}
			l := NewLoader(doer, tt.location, "")

			got, err := l.ExtraRepositories(context.Background())
			require.Equal(t, tt.wantErr, err != nil, "unexpected error: %v", err)
			assert.Equal(t, tt.wantMalformed, app.IsMalformedResponseError(err))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoader_LiveURLs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := filepath.Join(dir, "live.json")
	require.NoError(t, ioutil.WriteFile(valid, []byte(`{"widgets": "https://example.com", "blank": " ", "": "https://nameless"}`), 0600))
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, ioutil.WriteFile(broken, []byte(`["widgets"]`), 0600))

	tests := []struct {
		name     string
		location string
		want     map[string]string
		wantErr  bool
	}{
		{
			name: "empty location",
			want: map[string]string{},
		},
		{
			name:     "local file",
			location: valid,
			want:     map[string]string{"widgets": "https://example.com"},
		},
		{
			name:     "missing local file",
			location: filepath.Join(dir, "missing.json"),
			want:     map[string]string{},
		},
		{
			name:     "malformed local file",
			location: broken,
			want:     map[string]string{},
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &mock.HTTPDoer{}
			l := NewLoader(doer, "", tt.location)

			got, err := l.LiveURLs(context.Background())
			require.Equal(t, tt.wantErr, err != nil, "unexpected error: %v", err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, doer.Requests())
		})
	}
}
