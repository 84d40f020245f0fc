package platform

import (
	"context"
	"io/ioutil"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	platformmock "github.com/m-zajac/goportfolio/internal/adapter/platform/mock"
	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/m-zajac/goportfolio/internal/app/mock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTTL        = time.Hour
	testRefreshTTL = 10 * time.Minute
)

func TestSourceWithStaleDataPublicRepositories(t *testing.T) {
	t.Parallel()

	stored := []app.RemoteRepository{{ID: "github-1", Name: "stored"}}
	remote := []app.RemoteRepository{{ID: "github-1", Name: "remote"}}

	tests := []struct {
		name        string
		storedAge   time.Duration
		hasStored   bool
		sourceErr   error
		wantCalls   int
		want        []app.RemoteRepository
		wantErr     bool
		wantUpdates int
	}{
		{
			name:        "no data",
			wantCalls:   1,
			want:        remote,
			wantUpdates: 1,
		},
		{
			name:      "fresh data",
			hasStored: true,
			storedAge: time.Minute,
			want:      stored,
		},
		{
			name:        "expired data",
			hasStored:   true,
			storedAge:   2 * testTTL,
			wantCalls:   1,
			want:        remote,
			wantUpdates: 1,
		},
		{
			name:      "expired data, source fails",
			hasStored: true,
			storedAge: 2 * testTTL,
			sourceErr: app.UnreachableError("down"),
			wantCalls: 1,
			want:      stored,
		},
		{
			name:      "no data, source fails",
			sourceErr: app.UnreachableError("down"),
			wantCalls: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mock.NewMockSource(ctrl)
			source.EXPECT().Platform().Return(app.PlatformGitHub).AnyTimes()
			source.EXPECT().
				PublicRepositories(gomock.Any()).
				DoAndReturn(func(context.Context) ([]app.RemoteRepository, error) {
					if tt.sourceErr != nil {
						return nil, tt.sourceErr
					}
					return remote, nil
				}).
				Times(tt.wantCalls)

			data := map[string][]byte{}
			if tt.hasStored {
				data["repos/github"] = mustEntry(t, dbEntry{
					Created:      time.Now().Add(-tt.storedAge).Unix(),
					Repositories: stored,
				})
			}
			store := platformmock.NewKVStore(data)

			s := NewSourceWithStaleData(source, store, testTTL, testRefreshTTL, discardLogger())

			got, err := s.PublicRepositories(context.Background())
			require.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantUpdates, store.Updates())
		})
	}
}

func TestSourceWithStaleDataContributions(t *testing.T) {
	t.Parallel()

	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	days := []app.ContributionDay{
		{Date: since, Count: 1, Platform: app.PlatformGitLab},
		{Date: since.AddDate(0, 0, 5), Count: 2, Platform: app.PlatformGitLab},
	}

	tests := []struct {
		name        string
		storedSince time.Time
		requested   time.Time
		wantCalls   int
		want        []app.ContributionDay
	}{
		{
			name:        "stored entry covers request",
			storedSince: since,
			requested:   since,
			want:        days,
		},
		{
			name:        "stored entry covers later request",
			storedSince: since,
			requested:   since.AddDate(0, 0, 2).Add(5 * time.Hour),
			want:        days[1:],
		},
		{
			name:        "stored entry starts too late",
			storedSince: since.AddDate(0, 0, 1),
			requested:   since,
			wantCalls:   1,
			want:        days,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mock.NewMockSource(ctrl)
			source.EXPECT().Platform().Return(app.PlatformGitLab).AnyTimes()
			source.EXPECT().
				Contributions(gomock.Any(), app.Day(tt.requested)).
				Return(days, nil).
				Times(tt.wantCalls)

			store := platformmock.NewKVStore(map[string][]byte{
				"contributions/gitlab": mustEntry(t, dbEntry{
					Created: time.Now().Unix(),
					Since:   tt.storedSince.Unix(),
					Days:    days,
				}),
			})

			s := NewSourceWithStaleData(source, store, testTTL, testRefreshTTL, discardLogger())

			got, err := s.Contributions(context.Background(), tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSourceWithStaleDataScheduler checks that stale data is served immediately
// and a single refresh runs in background no matter how many reads happened meanwhile.
func TestSourceWithStaleDataScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []app.RemoteRepository{{ID: "github-1", Name: "stored"}}
	remote := []app.RemoteRepository{{ID: "github-1", Name: "remote"}}

	var calls int64
	release := make(chan struct{})

	source := mock.NewMockSource(ctrl)
	source.EXPECT().Platform().Return(app.PlatformGitHub).AnyTimes()
	source.EXPECT().
		PublicRepositories(gomock.Any()).
		DoAndReturn(func(context.Context) ([]app.RemoteRepository, error) {
			atomic.AddInt64(&calls, 1)
			select {
			case <-release:
			case <-time.After(time.Second):
				t.Error("source locked")
			}
			return remote, nil
		}).
		AnyTimes()

	store := platformmock.NewKVStore(map[string][]byte{
		"repos/github": mustEntry(t, dbEntry{
			Created:      time.Now().Add(-2 * testRefreshTTL).Unix(),
			Repositories: stored,
		}),
	})

	s := NewSourceWithStaleData(source, store, testTTL, testRefreshTTL, discardLogger())
	s.schedulerDone = make(chan string, 10)
	s.RunScheduler()
	defer s.Close()

	for i := 0; i < 5; i++ {
		got, err := s.PublicRepositories(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&calls) == 1 && len(s.updates) == 0
	}, time.Second, 10*time.Millisecond)

	close(release)

	select {
	case key := <-s.schedulerDone:
		assert.Equal(t, "repos/github", key)
	case <-time.After(time.Second):
		t.Fatal("scheduler locked")
	}

	// Requests queued before the update finished were deduplicated.
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	assert.Equal(t, 1, store.Updates())

	got, err := s.PublicRepositories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, remote, got)
}

func TestSourceWithStaleDataPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := app.RemoteRepository{ID: "github-3"}
	ref := app.RepositoryRef{NativeID: 3}

	source := mock.NewMockSource(ctrl)
	source.EXPECT().Platform().Return(app.PlatformGitHub).AnyTimes()
	source.EXPECT().Readme(gomock.Any(), repo).Return("readme", nil).Times(2)
	source.EXPECT().License(gomock.Any(), repo).Return("", app.NotFoundError("no license")).Times(1)
	source.EXPECT().Repository(gomock.Any(), ref).Return(repo, nil).Times(1)

	store := platformmock.NewKVStore(nil)
	s := NewSourceWithStaleData(source, store, testTTL, testRefreshTTL, discardLogger())

	for i := 0; i < 2; i++ {
		r, err := s.Readme(context.Background(), repo)
		require.NoError(t, err)
		assert.Equal(t, "readme", r)
	}

	_, err := s.License(context.Background(), repo)
	assert.True(t, app.IsNotFoundError(err))

	got, err := s.Repository(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, repo, got)

	assert.Equal(t, 0, store.Reads())
	assert.Equal(t, app.PlatformGitHub, s.Platform())
}

func mustEntry(t *testing.T, e dbEntry) []byte {
	t.Helper()

	b, err := json.Marshal(e)
	require.NoError(t, err)

	return b
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = ioutil.Discard

	return l
}
