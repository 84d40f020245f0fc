package platform

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// SourceWithStaleData wraps platform source and returns data saved in db if possible.
// Only repository lists and contributions are persisted; other calls go straight to the source.
//
// If data is available and refreshTTL is not exceeded, data is returned immediately.
// If data is available, ttl is ok, but refreshTTL is exceeded, update job is scheduled and existing data is returned immediately.
// If data is not available (or its ttl is exceeded), source is called synchronously and result is saved.
// When that call fails, expired data is returned if there is any.
type SourceWithStaleData struct {
	source        app.Source
	store         KVStore
	ttl           time.Duration
	refreshTTL    time.Duration
	updateTimeout time.Duration
	l             logrus.FieldLogger

	updates chan updateRequest

	// Chan for observing scheduler - only used for unit testing.
	schedulerDone chan string

	// Func for canceling internal worker loop
	stop func()
}

var _ app.Source = &SourceWithStaleData{}

// NewSourceWithStaleData creates new SourceWithStaleData instance.
func NewSourceWithStaleData(
	source app.Source,
	store KVStore,
	ttl time.Duration,
	refreshTTL time.Duration,
	l logrus.FieldLogger,
) *SourceWithStaleData {
	return &SourceWithStaleData{
		source:        source,
		store:         store,
		ttl:           ttl,
		refreshTTL:    refreshTTL,
		updateTimeout: time.Minute,
		l:             l.WithField("platform", source.Platform()),
		updates:       make(chan updateRequest, 100),
	}
}

// RunScheduler runs internal scheduling goroutine.
// Doesn't block.
func (s *SourceWithStaleData) RunScheduler() {
	ctx, cancel := context.WithCancel(context.Background())
	s.stop = cancel

	go func() {
		pending := make(map[string]bool)
		done := make(chan string)

		for {
			select {
			case req := <-s.updates:
				key := string(req.key())
				if pending[key] {
					continue
				}
				pending[key] = true

				go func(req updateRequest) {
					s.l.Infof("scheduled update of %s...", req.key())
					if _, err := s.update(ctx, req); err != nil {
						s.l.Errorf("scheduled update of %s: %v", req.key(), err)
					} else {
						s.l.Infof("scheduled update of %s done", req.key())
					}
					select {
					case done <- string(req.key()):
					case <-ctx.Done():
					}
				}(req)
			case key := <-done:
				delete(pending, key)
				if s.schedulerDone != nil {
					s.schedulerDone <- key
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Close stops scheduler. Updates in progress are canceled.
func (s *SourceWithStaleData) Close() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

// Platform returns platform of wrapped source.
func (s *SourceWithStaleData) Platform() app.Platform {
	return s.source.Platform()
}

// PublicRepositories returns public repositories, from db if possible.
func (s *SourceWithStaleData) PublicRepositories(ctx context.Context) ([]app.RemoteRepository, error) {
	req := updateRequest{platform: s.source.Platform()}
	entry, err := s.read(req.key())
	if err != nil {
		return nil, err
	}
	if entry != nil && s.usable(entry, req) {
		return entry.Repositories, nil
	}

	fresh, err := s.update(ctx, req)
	if err != nil {
		if entry != nil {
			s.l.Warnf("refreshing repositories failed, serving expired data: %v", err)
			return entry.Repositories, nil
		}
		return nil, err
	}

	return fresh.Repositories, nil
}

// Contributions returns commit counts per day, from db if possible.
// Stored entry is used only if it was fetched with the same or earlier starting day.
func (s *SourceWithStaleData) Contributions(ctx context.Context, since time.Time) ([]app.ContributionDay, error) {
	since = app.Day(since)
	req := updateRequest{platform: s.source.Platform(), contributions: true, since: since}
	entry, err := s.read(req.key())
	if err != nil {
		return nil, err
	}
	covers := entry != nil && !time.Unix(entry.Since, 0).UTC().After(since)
	if covers && s.usable(entry, updateRequest{platform: req.platform, contributions: true, since: time.Unix(entry.Since, 0).UTC()}) {
		return filterDays(entry.Days, since), nil
	}

	fresh, err := s.update(ctx, req)
	if err != nil {
		if covers {
			s.l.Warnf("refreshing contributions failed, serving expired data: %v", err)
			return filterDays(entry.Days, since), nil
		}
		return nil, err
	}

	return filterDays(fresh.Days, since), nil
}

// Readme returns repository readme from the source.
func (s *SourceWithStaleData) Readme(ctx context.Context, repo app.RemoteRepository) (string, error) {
	return s.source.Readme(ctx, repo)
}

// License returns repository license from the source.
func (s *SourceWithStaleData) License(ctx context.Context, repo app.RemoteRepository) (string, error) {
	return s.source.License(ctx, repo)
}

// Repository returns single repository from the source.
func (s *SourceWithStaleData) Repository(ctx context.Context, ref app.RepositoryRef) (app.RemoteRepository, error) {
	return s.source.Repository(ctx, ref)
}

// usable checks entry ttl and schedules refresh request if entry should be refreshed.
func (s *SourceWithStaleData) usable(entry *dbEntry, refresh updateRequest) bool {
	created := time.Unix(entry.Created, 0)
	now := time.Now()
	if !created.Add(s.ttl).After(now) {
		return false
	}
	if created.Add(s.refreshTTL).Before(now) {
		select {
		case s.updates <- refresh:
		default:
			s.l.Warn("stale data scheduler: no free slots left")
		}
	}

	return true
}

// update calls the source and saves the result. Returns saved entry.
func (s *SourceWithStaleData) update(ctx context.Context, req updateRequest) (dbEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.updateTimeout)
	defer cancel()

	entry := dbEntry{Created: time.Now().Unix()}
	if req.contributions {
		days, err := s.source.Contributions(ctx, req.since)
		if err != nil {
			return entry, fmt.Errorf("calling source.Contributions: %w", err)
		}
		if days == nil {
			days = []app.ContributionDay{}
		}
		entry.Since = req.since.Unix()
		entry.Days = days
	} else {
		repos, err := s.source.PublicRepositories(ctx)
		if err != nil {
			return entry, fmt.Errorf("calling source.PublicRepositories: %w", err)
		}
		if repos == nil {
			repos = []app.RemoteRepository{}
		}
		entry.Repositories = repos
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return entry, fmt.Errorf("serializing data for save: %w", err)
	}
	if err := s.store.UpdateKey(req.key(), data); err != nil {
		return entry, fmt.Errorf("saving %s: %w", req.key(), err)
	}

	return entry, nil
}

func (s *SourceWithStaleData) read(key []byte) (*dbEntry, error) {
	data, err := s.store.ReadKey(key)
	if err != nil {
		return nil, fmt.Errorf("reading %s from db: %w", key, err)
	}
	if data == nil {
		return nil, nil
	}

	var entry dbEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unserializing %s: %w", key, err)
	}

	return &entry, nil
}

func filterDays(days []app.ContributionDay, since time.Time) []app.ContributionDay {
	out := make([]app.ContributionDay, 0, len(days))
	for _, d := range days {
		if !d.Date.Before(since) {
			out = append(out, d)
		}
	}

	return out
}

type dbEntry struct {
	Created      int64
	Since        int64
	Repositories []app.RemoteRepository
	Days         []app.ContributionDay
}

type updateRequest struct {
	platform      app.Platform
	contributions bool
	since         time.Time
}

func (r updateRequest) key() []byte {
	if r.contributions {
		return []byte("contributions/" + string(r.platform))
	}
	return []byte("repos/" + string(r.platform))
}
