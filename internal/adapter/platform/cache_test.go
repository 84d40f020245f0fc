package platform

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/m-zajac/goportfolio/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedSourcePublicRepositories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cacheSize     int
		calls         int
		callsInterval time.Duration
		ttl           time.Duration
		wantErr       bool
		wantCalls     int
	}{
		{
			name:      "invalid cache size",
			cacheSize: 0,
			wantErr:   true,
		},
		{
			name:          "calls within ttl",
			cacheSize:     1,
			calls:         4,
			callsInterval: time.Second,
			ttl:           time.Minute,
			wantCalls:     1,
		},
		{
			name:          "calls with expiring ttl",
			cacheSize:     1,
			calls:         4,
			callsInterval: 2 * time.Minute,
			ttl:           time.Minute,
			wantCalls:     4,
		},
	}

	repos := []app.RemoteRepository{
		{ID: "github-1", Name: "one"},
		{ID: "github-2", Name: "two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mock.NewMockSource(ctrl)
			source.EXPECT().
				PublicRepositories(gomock.Any()).
				Return(repos, nil).
				Times(tt.wantCalls)

			c, err := NewCachedSource(source, tt.cacheSize, tt.ttl)
			require.Equal(t, tt.wantErr, err != nil)
			if err != nil {
				return
			}

			now := time.Now()
			c.now = func() time.Time { return now }
			for i := 0; i < tt.calls; i++ {
				got, err := c.PublicRepositories(context.Background())
				require.NoError(t, err)
				assert.Equal(t, repos, got)
				now = now.Add(tt.callsInterval)
			}
		})
	}
}

func TestCachedSourceErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := app.RemoteRepository{ID: "gitlab-5", Platform: app.PlatformGitLab}

	source := mock.NewMockSource(ctrl)
	gomock.InOrder(
		source.EXPECT().Readme(gomock.Any(), repo).Return("", app.UnreachableError("timeout")),
		source.EXPECT().Readme(gomock.Any(), repo).Return("# five", nil),
	)

	c, err := NewCachedSource(source, 10, time.Minute)
	require.NoError(t, err)

	_, err = c.Readme(context.Background(), repo)
	assert.True(t, app.IsUnreachableError(err))

	for i := 0; i < 3; i++ {
		got, err := c.Readme(context.Background(), repo)
		require.NoError(t, err)
		assert.Equal(t, "# five", got)
	}
}

func TestCachedSourceKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoA := app.RemoteRepository{ID: "github-1"}
	repoB := app.RemoteRepository{ID: "github-2"}
	since := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	days := []app.ContributionDay{{Date: since, Count: 1, Platform: app.PlatformGitHub}}

	source := mock.NewMockSource(ctrl)
	source.EXPECT().License(gomock.Any(), repoA).Return("MIT", nil).Times(1)
	source.EXPECT().License(gomock.Any(), repoB).Return("BSD", nil).Times(1)
	source.EXPECT().Readme(gomock.Any(), repoA).Return("readme", nil).Times(1)
	source.EXPECT().Contributions(gomock.Any(), gomock.Any()).Return(days, nil).Times(2)
	source.EXPECT().
		Repository(gomock.Any(), app.RepositoryRef{URL: "https://github.com/a/b"}).
		Return(repoA, nil).
		Times(1)

	c, err := NewCachedSource(source, 10, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		l, err := c.License(context.Background(), repoA)
		require.NoError(t, err)
		assert.Equal(t, "MIT", l)

		l, err = c.License(context.Background(), repoB)
		require.NoError(t, err)
		assert.Equal(t, "BSD", l)

		r, err := c.Readme(context.Background(), repoA)
		require.NoError(t, err)
		assert.Equal(t, "readme", r)

		// Same day, different hour hits the cache; next day does not.
		got, err := c.Contributions(context.Background(), since.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, days, got)

		repo, err := c.Repository(context.Background(), app.RepositoryRef{URL: "https://github.com/a/b"})
		require.NoError(t, err)
		assert.Equal(t, repoA, repo)
	}

	_, err = c.Contributions(context.Background(), since.AddDate(0, 0, 1))
	require.NoError(t, err)
}
