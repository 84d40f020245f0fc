package app

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultDescription is used for projects without description.
const DefaultDescription = "No description"

// Logos by platform.
const (
	LogoGitHub      = "assets/logos/github.svg"
	LogoGitLab      = "assets/logos/gitlab.svg"
	LogoPlaceholder = "assets/logos/placeholder.svg"
)

var platformLogos = map[Platform]string{
	PlatformGitHub:           LogoGitHub,
	PlatformGitLab:           LogoGitLab,
	PlatformGitLabSelfHosted: LogoGitLab,
}

// staleMonths is the inactivity period after which project is considered paused.
const staleMonths = 6

// RepositoryAggregator returns normalized repositories from all platforms.
//go:generate mockgen -destination mock/repositoryaggregator.go -package mock github.com/m-zajac/goportfolio/internal/app RepositoryAggregator
type RepositoryAggregator interface {
	ListAllPublicRepositories(ctx context.Context) ([]RemoteRepository, error)
	LiveURLOverrides(ctx context.Context) map[string]string
	FetchReadmeAndLicense(ctx context.Context, repo RemoteRepository) (*string, *string, error)
}

// Catalog owns the list of displayed projects.
//
// Project list is replaced as a whole on every change, so returned snapshots are never modified.
// Concurrent hydration of the same project may fetch documents twice.
type Catalog struct {
	aggregator RepositoryAggregator
	now        func() time.Time
	l          logrus.FieldLogger

	m        sync.RWMutex
	state    LoadingState
	projects []Project
	repos    map[string]RemoteRepository

	subscribersM sync.Mutex
	subscribers  []func([]Project)

	// Func for canceling refresher loop
	stopM sync.Mutex
	stop  func()
}

// NewCatalog creates new Catalog instance in Loading state.
func NewCatalog(aggregator RepositoryAggregator, l logrus.FieldLogger) *Catalog {
	return &Catalog{
		aggregator: aggregator,
		now:        time.Now,
		l:          l,
		state:      Loading,
		projects:   []Project{},
		repos:      map[string]RemoteRepository{},
	}
}

// Rebuild fetches all repositories and replaces project list.
// On aggregation failure the list is emptied and state is set to Failed.
func (c *Catalog) Rebuild(ctx context.Context) LoadingState {
	c.m.Lock()
	c.state = Loading
	c.m.Unlock()

	repos, err := c.aggregator.ListAllPublicRepositories(ctx)
	if err != nil {
		c.l.Errorf("rebuilding catalog: %v", err)
		c.replace(Failed, []Project{}, map[string]RemoteRepository{})
		return Failed
	}

	liveURLs := c.aggregator.LiveURLOverrides(ctx)
	now := c.now()

	projects := make([]Project, 0, len(repos))
	byID := make(map[string]RemoteRepository, len(repos))
	for i, r := range repos {
		projects = append(projects, newProject(i+1, r, liveURLs, now))
		byID[r.ID] = r
	}

	c.replace(Ready, projects, byID)
	c.l.Infof("catalog rebuilt with %d projects", len(projects))

	return Ready
}

// State returns current loading state.
func (c *Catalog) State() LoadingState {
	c.m.RLock()
	defer c.m.RUnlock()

	return c.state
}

// Projects returns current projects snapshot.
func (c *Catalog) Projects() []Project {
	c.m.RLock()
	defer c.m.RUnlock()

	result := make([]Project, len(c.projects))
	copy(result, c.projects)

	return result
}

// FindByID returns project with given display id.
func (c *Catalog) FindByID(id int) (Project, bool) {
	c.m.RLock()
	defer c.m.RUnlock()

	for _, p := range c.projects {
		if p.ID == id {
			return p, true
		}
	}

	return Project{}, false
}

// FindByName returns first project whose normalized title equals normalized name.
func (c *Catalog) FindByName(name string) (Project, bool) {
	slug := NormalizeName(name)

	c.m.RLock()
	defer c.m.RUnlock()

	for _, p := range c.projects {
		if NormalizeName(p.Title) == slug {
			return p, true
		}
	}

	return Project{}, false
}

// HydrateReadmeAndLicense fetches readme and license for project with given id, unless already fetched.
// Returns the project after hydration.
func (c *Catalog) HydrateReadmeAndLicense(ctx context.Context, id int) (Project, error) {
	c.m.RLock()
	p, ok := c.findLocked(id)
	repo, repoOK := c.repos[p.RepositoryID]
	c.m.RUnlock()

	if !ok || !repoOK {
		return Project{}, NotFoundError("project not found")
	}
	if p.Hydrated() {
		return p, nil
	}

	// Display ids are reassigned by Rebuild, so results are written back by repository id.
	if _, ok := c.update(p.RepositoryID, func(p *Project) {
		p.ReadmeLoading = true
		p.LicenseLoading = true
	}); !ok {
		return Project{}, NotFoundError("project removed during hydration")
	}

	readme, license, err := c.aggregator.FetchReadmeAndLicense(ctx, repo)
	if err != nil {
		c.l.Warnf("fetching documents for project %d: %v", id, err)
	}

	hydrated, ok := c.update(p.RepositoryID, func(p *Project) {
		p.Readme = readme
		p.License = license
		p.ReadmeLoading = false
		p.LicenseLoading = false
	})
	if !ok || hydrated.ID != id {
		return Project{}, NotFoundError("project changed during hydration")
	}

	return hydrated, nil
}

// Subscribe registers fn to be called with new project list after every change.
func (c *Catalog) Subscribe(fn func([]Project)) {
	c.subscribersM.Lock()
	defer c.subscribersM.Unlock()

	c.subscribers = append(c.subscribers, fn)
}

// RunRefresher rebuilds the catalog periodically. Doesn't block.
func (c *Catalog) RunRefresher(interval time.Duration, timeout time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	c.stopM.Lock()
	if c.stop != nil {
		c.stop()
	}
	c.stop = cancel
	c.stopM.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rctx, rcancel := context.WithTimeout(ctx, timeout)
				c.Rebuild(rctx)
				rcancel()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Close stops refresher. Safe to call many times.
func (c *Catalog) Close() {
	c.stopM.Lock()
	defer c.stopM.Unlock()

	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

func (c *Catalog) findLocked(id int) (Project, bool) {
	for _, p := range c.projects {
		if p.ID == id {
			return p, true
		}
	}

	return Project{}, false
}

// update replaces project list with a copy where project of given repository is modified by fn.
func (c *Catalog) update(repositoryID string, fn func(*Project)) (Project, bool) {
	c.m.Lock()
	projects := make([]Project, len(c.projects))
	copy(projects, c.projects)

	var updated Project
	found := false
	for i := range projects {
		if projects[i].RepositoryID == repositoryID {
			fn(&projects[i])
			updated = projects[i]
			found = true
			break
		}
	}
	if !found {
		c.m.Unlock()
		return Project{}, false
	}
	c.projects = projects
	c.m.Unlock()

	c.notify(projects)

	return updated, true
}

func (c *Catalog) replace(state LoadingState, projects []Project, repos map[string]RemoteRepository) {
	c.m.Lock()
	c.state = state
	c.projects = projects
	c.repos = repos
	c.m.Unlock()

	c.notify(projects)
}

func (c *Catalog) notify(projects []Project) {
	c.subscribersM.Lock()
	subscribers := make([]func([]Project), len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.subscribersM.Unlock()

	for _, fn := range subscribers {
		snapshot := make([]Project, len(projects))
		copy(snapshot, projects)
		fn(snapshot)
	}
}

func newProject(id int, r RemoteRepository, liveURLs map[string]string, now time.Time) Project {
	logo, ok := platformLogos[r.Platform]
	if !ok {
		logo = LogoPlaceholder
	}

	description := DefaultDescription
	if r.Description != nil && *r.Description != "" {
		description = *r.Description
	}

	liveURL := r.LiveURL
	if u, ok := liveURLs[r.Name]; ok && u != "" {
		liveURL = &u
	}

	var gitURL *string
	if r.URL != "" {
		u := r.URL
		gitURL = &u
	}

	return Project{
		ID:             id,
		RepositoryID:   r.ID,
		Platform:       r.Platform,
		Logo:           logo,
		Title:          r.Name,
		Description:    description,
		State:          DeriveState(liveURL, r.LastActivityAt, now),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.LastActivityAt,
		GitURL:         gitURL,
		LiveURL:        liveURL,
		Readme:         r.Readme,
		License:        r.License,
		ReadmeLoading:  r.ReadmeLoading,
		LicenseLoading: r.LicenseLoading,
	}
}

// DeriveState returns lifecycle state: live when live url is known,
// paused when last activity is older than six months, in development otherwise.
func DeriveState(liveURL *string, lastActivity time.Time, now time.Time) State {
	if liveURL != nil && *liveURL != "" {
		return StateLive
	}
	if lastActivity.AddDate(0, staleMonths, 0).Before(now) {
		return StatePaused
	}

	return StateInDevelopment
}
