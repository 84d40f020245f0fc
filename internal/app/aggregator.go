package app

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// OverrideProvider returns manually maintained catalog corrections.
//go:generate mockgen -destination mock/overrideprovider.go -package mock github.com/m-zajac/goportfolio/internal/app OverrideProvider
type OverrideProvider interface {
	// ExtraRepositories returns repositories to include beyond the platform listings.
	ExtraRepositories(ctx context.Context) ([]RepositoryRef, error)
	// LiveURLs returns forced live urls by repository name.
	LiveURLs(ctx context.Context) (map[string]string, error)
}

// Aggregator fans out calls to all platform clients and merges their results.
type Aggregator struct {
	clients   []PlatformClient
	overrides OverrideProvider
	now       func() time.Time
	l         logrus.FieldLogger
}

// NewAggregator creates new Aggregator instance. overrides is optional.
func NewAggregator(clients []PlatformClient, overrides OverrideProvider, l logrus.FieldLogger) *Aggregator {
	return &Aggregator{
		clients:   clients,
		overrides: overrides,
		now:       time.Now,
		l:         l,
	}
}

// ListAllPublicRepositories returns repositories from all platforms plus manually listed ones,
// most recently active first. Repositories with equal activity time keep platform order.
// Only returns error when ctx is done.
func (a *Aggregator) ListAllPublicRepositories(ctx context.Context) ([]RemoteRepository, error) {
	lists := make([][]RemoteRepository, len(a.clients))
	var wg sync.WaitGroup
	for i, c := range a.clients {
		wg.Add(1)
		go func(i int, c PlatformClient) {
			defer wg.Done()
			lists[i] = c.ListPublicRepositories(ctx)
		}(i, c)
	}
	wg.Wait()

	var all []RemoteRepository
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, r := range list {
			seen[r.ID] = true
			all = append(all, r)
		}
	}

	for _, r := range a.resolveOverrides(ctx) {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		all = append(all, r)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing repositories: %w", err)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].LastActivityAt.After(all[j].LastActivityAt)
	})
	if all == nil {
		all = []RemoteRepository{}
	}

	return all, nil
}

// MergeContributions returns contributions from all platforms since given date,
// summed into one record per calendar day.
func (a *Aggregator) MergeContributions(ctx context.Context, since time.Time) ContributionSeries {
	lists := make([][]ContributionDay, len(a.clients))
	var wg sync.WaitGroup
	for i, c := range a.clients {
		wg.Add(1)
		go func(i int, c PlatformClient) {
			defer wg.Done()
			lists[i] = c.FetchContributions(ctx, since)
		}(i, c)
	}
	wg.Wait()

	days := MergeContributionDays(lists...)
	total := 0
	for _, d := range days {
		total += d.Count
	}

	return ContributionSeries{
		Days:         days,
		TotalCommits: total,
		StartDate:    since,
		EndDate:      a.now(),
	}
}

// MergeContributionDays merges day records by UTC date. Merged record keeps platform of the first record for its date.
// Result is sorted by date ascending.
func MergeContributionDays(lists ...[]ContributionDay) []ContributionDay {
	index := make(map[time.Time]int)
	merged := make([]ContributionDay, 0)
	for _, list := range lists {
		for _, d := range list {
			key := Day(d.Date)
			if i, ok := index[key]; ok {
				merged[i].Count += d.Count
				continue
			}
			index[key] = len(merged)
			merged = append(merged, ContributionDay{
				Date:     key,
				Count:    d.Count,
				Platform: d.Platform,
			})
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	return merged
}

// LiveURLOverrides returns forced live urls by repository name. Failures result in empty map.
func (a *Aggregator) LiveURLOverrides(ctx context.Context) map[string]string {
	if a.overrides == nil {
		return map[string]string{}
	}
	urls, err := a.overrides.LiveURLs(ctx)
	if err != nil {
		a.l.Warnf("loading live url overrides: %v", err)
		return map[string]string{}
	}
	if urls == nil {
		urls = map[string]string{}
	}

	return urls
}

// FetchReadmeAndLicense fetches repository documents from the platform the repository comes from.
func (a *Aggregator) FetchReadmeAndLicense(ctx context.Context, repo RemoteRepository) (*string, *string, error) {
	for _, c := range a.clients {
		if c.Platform() == repo.Platform {
			readme, license := c.FetchReadmeAndLicense(ctx, repo)
			return readme, license, nil
		}
	}

	return nil, nil, NotFoundError(fmt.Sprintf("no client for platform %q", repo.Platform))
}

func (a *Aggregator) resolveOverrides(ctx context.Context) []RemoteRepository {
	if a.overrides == nil {
		return nil
	}
	refs, err := a.overrides.ExtraRepositories(ctx)
	if err != nil {
		a.l.Warnf("loading extra repositories: %v", err)
		return nil
	}

	resolved := make([]*RemoteRepository, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref RepositoryRef) {
			defer wg.Done()
			for _, c := range a.clients {
				if r := c.FetchRepositoryByURLOrID(ctx, ref); r != nil {
					resolved[i] = r
					return
				}
			}
			a.l.Warnf("extra repository %s (id %d) not resolved by any platform", ref.URL, ref.NativeID)
		}(i, ref)
	}
	wg.Wait()

	repos := make([]RemoteRepository, 0, len(refs))
	for _, r := range resolved {
		if r != nil {
			repos = append(repos, *r)
		}
	}

	return repos
}
