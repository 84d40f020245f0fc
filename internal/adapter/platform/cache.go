// Package platform contains decorators shared by all app.Source implementations.
package platform

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/goportfolio/internal/app"
)

// CachedSource wraps platform source with in-memory caching layer.
// Errors are never cached.
type CachedSource struct {
	source app.Source
	cache  *lru.Cache
	ttl    time.Duration
	now    func() time.Time
}

var _ app.Source = &CachedSource{}

// NewCachedSource creates new CachedSource instance.
func NewCachedSource(source app.Source, size int, ttl time.Duration) (*CachedSource, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache: %w", err)
	}

	return &CachedSource{
		source: source,
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Platform returns platform of wrapped source.
func (c *CachedSource) Platform() app.Platform {
	return c.source.Platform()
}

// PublicRepositories returns public repositories of configured user.
func (c *CachedSource) PublicRepositories(ctx context.Context) ([]app.RemoteRepository, error) {
	v, err := c.cached("repos", func() (interface{}, error) {
		return c.source.PublicRepositories(ctx)
	})
	if err != nil {
		return nil, err
	}

	return v.([]app.RemoteRepository), nil
}

// Readme returns repository readme.
func (c *CachedSource) Readme(ctx context.Context, repo app.RemoteRepository) (string, error) {
	v, err := c.cached("readme/"+repo.ID, func() (interface{}, error) {
		return c.source.Readme(ctx, repo)
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// License returns repository license.
func (c *CachedSource) License(ctx context.Context, repo app.RemoteRepository) (string, error) {
	v, err := c.cached("license/"+repo.ID, func() (interface{}, error) {
		return c.source.License(ctx, repo)
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// Contributions returns commit counts per day. Entries are cached per starting day.
func (c *CachedSource) Contributions(ctx context.Context, since time.Time) ([]app.ContributionDay, error) {
	key := "contributions/" + app.Day(since).Format("2006-01-02")
	v, err := c.cached(key, func() (interface{}, error) {
		return c.source.Contributions(ctx, since)
	})
	if err != nil {
		return nil, err
	}

	return v.([]app.ContributionDay), nil
}

// Repository returns single repository by reference.
func (c *CachedSource) Repository(ctx context.Context, ref app.RepositoryRef) (app.RemoteRepository, error) {
	key := "repo/" + ref.URL + "#" + strconv.FormatInt(ref.NativeID, 10)
	v, err := c.cached(key, func() (interface{}, error) {
		return c.source.Repository(ctx, ref)
	})
	if err != nil {
		return app.RemoteRepository{}, err
	}

	return v.(app.RemoteRepository), nil
}

func (c *CachedSource) cached(key string, load func() (interface{}, error)) (interface{}, error) {
	if val, ok := c.cache.Get(key); ok {
		entry := val.(cacheEntry)
		if entry.created.Add(c.ttl).After(c.now()) {
			return entry.data, nil
		}
	}

	data, err := load()
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, cacheEntry{
		created: c.now(),
		data:    data,
	})

	return data, nil
}

type cacheEntry struct {
	created time.Time
	data    interface{}
}
