package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/m-zajac/goportfolio/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		doer          *mock.HTTPDoer
		maxBytes      int
		want          []byte
		wantNotFound  bool
		wantUnreach   bool
		wantMalformed bool
	}{
		{
			name: "ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{}`)},
			},
			maxBytes: 10,
			want:     []byte(`{}`),
		},
		{
			name:     "no content",
			doer:     &mock.HTTPDoer{Statuses: []int{http.StatusNoContent}},
			maxBytes: 10,
		},
		{
			name:         "not found",
			doer:         &mock.HTTPDoer{Statuses: []int{http.StatusNotFound}},
			maxBytes:     10,
			wantNotFound: true,
		},
		{
			name:        "server error",
			doer:        &mock.HTTPDoer{Statuses: []int{http.StatusBadGateway}},
			maxBytes:    10,
			wantUnreach: true,
		},
		{
			name: "rate limited",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
				Headers:  []http.Header{{"X-Ratelimit-Remaining": []string{"0"}}},
			},
			maxBytes:    10,
			wantUnreach: true,
		},
		{
			name: "transport error",
			doer: &mock.HTTPDoer{
				DoFunc: func(*http.Request) (*http.Response, error) {
					return nil, errors.New("connection refused")
				},
			},
			maxBytes:    10,
			wantUnreach: true,
		},
		{
			name: "body too large",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(strings.Repeat("x", 11))},
			},
			maxBytes:      10,
			wantMalformed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(
				context.Background(),
				tt.doer,
				"https://fake/path",
				http.Header{"Accept": []string{"application/json"}},
				tt.maxBytes,
			)
			assert.Equal(t, tt.wantNotFound, app.IsNotFoundError(err))
			assert.Equal(t, tt.wantUnreach, app.IsUnreachableError(err))
			assert.Equal(t, tt.wantMalformed, app.IsMalformedResponseError(err))
			if !tt.wantNotFound && !tt.wantUnreach && !tt.wantMalformed {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			reqs := tt.doer.Requests()
			if len(reqs) > 0 {
				assert.Equal(t, "application/json", reqs[0].Header.Get("Accept"))
			}
		})
	}
}
