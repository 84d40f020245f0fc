package gitlab

import (
	"strings"
	"time"

	"github.com/m-zajac/goportfolio/internal/app"
)

type projectResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Path              string    `json:"path"`
	PathWithNamespace string    `json:"path_with_namespace"`
	Description       *string   `json:"description"`
	WebURL            string    `json:"web_url"`
	HTTPURLToRepo     string    `json:"http_url_to_repo"`
	PagesURL          *string   `json:"pages_url"`
	DefaultBranch     string    `json:"default_branch"`
	CreatedAt         time.Time `json:"created_at"`
	LastActivityAt    time.Time `json:"last_activity_at"`
	Namespace         struct {
		FullPath string `json:"full_path"`
	} `json:"namespace"`
}

type projectsResponse []projectResponse

// ToRepository converts api project to app.RemoteRepository.
func (r projectResponse) ToRepository(platform app.Platform) app.RemoteRepository {
	owner := r.Namespace.FullPath
	if owner == "" {
		if i := strings.LastIndex(r.PathWithNamespace, "/"); i > 0 {
			owner = r.PathWithNamespace[:i]
		}
	}
	path := r.Path
	if path == "" {
		path = r.Name
	}

	return app.RemoteRepository{
		ID:             app.RepositoryID(platform, r.ID),
		NativeID:       r.ID,
		Platform:       platform,
		Owner:          owner,
		Path:           path,
		Name:           r.Name,
		Description:    r.Description,
		URL:            r.WebURL,
		GitURL:         r.HTTPURLToRepo,
		LiveURL:        r.liveURL(),
		DefaultBranch:  r.DefaultBranch,
		CreatedAt:      r.CreatedAt,
		LastActivityAt: r.LastActivityAt,
	}
}

// liveURL returns pages_url reported by the api. Pages access level alone doesn't mean anything was deployed.
func (r projectResponse) liveURL() *string {
	if r.PagesURL == nil {
		return nil
	}
	u := strings.TrimSpace(*r.PagesURL)
	if u == "" {
		return nil
	}

	return &u
}

func (r projectsResponse) ToRepositories(platform app.Platform) []app.RemoteRepository {
	repos := make([]app.RemoteRepository, 0, len(r))
	for _, el := range r {
		repos = append(repos, el.ToRepository(platform))
	}

	return repos
}

type usersResponse []struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type eventsResponse []struct {
	ActionName string    `json:"action_name"`
	CreatedAt  time.Time `json:"created_at"`
	PushData   *struct {
		CommitCount int `json:"commit_count"`
	} `json:"push_data"`
}

// ToCounts returns pushed commit counts per day.
func (e eventsResponse) ToCounts(since time.Time) dayCounts {
	counts := newDayCounts(since)
	for _, ev := range e {
		if ev.PushData == nil {
			continue
		}
		counts.add(ev.CreatedAt, ev.PushData.CommitCount)
	}

	return counts
}

type commitsResponse []struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	CommittedDate time.Time `json:"committed_date"`
}

// AddTo adds single commits to counts.
func (c commitsResponse) AddTo(counts *dayCounts) {
	for _, cm := range c {
		t := cm.CommittedDate
		if t.IsZero() {
			t = cm.CreatedAt
		}
		counts.add(t, 1)
	}
}

// dayCounts sums positive counts per UTC day, keeping order of first appearance.
type dayCounts struct {
	since  time.Time
	counts map[time.Time]int
	order  []time.Time
}

func newDayCounts(since time.Time) dayCounts {
	return dayCounts{
		since:  app.Day(since),
		counts: make(map[time.Time]int),
	}
}

func (d *dayCounts) add(t time.Time, n int) {
	if n <= 0 {
		return
	}
	day := app.Day(t)
	if day.Before(d.since) {
		return
	}
	if _, ok := d.counts[day]; !ok {
		d.order = append(d.order, day)
	}
	d.counts[day] += n
}

func (d dayCounts) Days(platform app.Platform) []app.ContributionDay {
	days := make([]app.ContributionDay, 0, len(d.order))
	for _, day := range d.order {
		days = append(days, app.ContributionDay{
			Date:     day,
			Count:    d.counts[day],
			Platform: platform,
		})
	}

	return days
}
