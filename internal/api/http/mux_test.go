package http

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/goportfolio/internal/api/http/mock"
	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMux(t *testing.T) {
	t.Parallel()

	serviceDelay := 5 * time.Millisecond

	tests := []struct {
		name           string
		method         string
		path           string
		muxTimeout     time.Duration
		wantStatusCode int
	}{
		{
			name:           "projects",
			method:         http.MethodGet,
			path:           "/projects",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "project by id",
			method:         http.MethodGet,
			path:           "/projects/1",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "unknown project id",
			method:         http.MethodGet,
			path:           "/projects/2",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "non numeric project id",
			method:         http.MethodGet,
			path:           "/projects/abc",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "project by name",
			method:         http.MethodGet,
			path:           "/projects/by-name/My%20Widgets",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "documents",
			method:         http.MethodGet,
			path:           "/projects/1/documents",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "documents exceeding handler timeout",
			method:         http.MethodGet,
			path:           "/projects/1/documents",
			muxTimeout:     time.Microsecond,
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "contributions",
			method:         http.MethodGet,
			path:           "/contributions?since=2025-01-01",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "rebuild",
			method:         http.MethodPost,
			path:           "/catalog/rebuild",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "rebuild with wrong method",
			method:         http.MethodGet,
			path:           "/catalog/rebuild",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusMethodNotAllowed,
		},
		{
			name:           "invalid path",
			method:         http.MethodGet,
			path:           "/invalid_path",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			service.EXPECT().Projects().Return([]app.Project{testProject()}).AnyTimes()
			service.EXPECT().State().Return(app.Ready).AnyTimes()
			service.EXPECT().FindByID(1).Return(testProject(), true).AnyTimes()
			service.EXPECT().FindByID(2).Return(app.Project{}, false).AnyTimes()
			service.EXPECT().FindByName("My Widgets").Return(testProject(), true).AnyTimes()
			service.EXPECT().Rebuild(gomock.Any()).Return(app.Ready).AnyTimes()
			service.EXPECT().
				HydrateReadmeAndLicense(gomock.Any(), 1).
				DoAndReturn(func(ctx context.Context, id int) (app.Project, error) {
					time.Sleep(serviceDelay)

					select {
					case <-ctx.Done():
						return app.Project{}, ctx.Err()
					default:
						return testProject(), nil
					}
				}).
				MaxTimes(1)

			contributions := mock.NewMockContributionsService(ctrl)
			contributions.EXPECT().
				MergeContributions(gomock.Any(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
				Return(app.ContributionSeries{}).
				MaxTimes(1)

			l := logrus.New()
			l.Out = ioutil.Discard
			mux := NewMux(service, contributions, tt.muxTimeout, time.Minute, l)

			server := httptest.NewServer(mux)
			defer server.Close()

			req, err := http.NewRequest(tt.method, server.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
