package github

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/m-zajac/goportfolio/internal/app"
)

type repoResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Description   *string           `json:"description"`
	HTMLURL       string            `json:"html_url"`
	CloneURL      string            `json:"clone_url"`
	Homepage      *string           `json:"homepage"`
	HasPages      bool              `json:"has_pages"`
	DefaultBranch string            `json:"default_branch"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Owner         repoResponseOwner `json:"owner"`
}

type repoResponseOwner struct {
	Login string `json:"login"`
}

type reposResponse []repoResponse

func (r repoResponse) ToRepository(pagesDomain string) app.RemoteRepository {
	return app.RemoteRepository{
		ID:             app.RepositoryID(app.PlatformGitHub, r.ID),
		NativeID:       r.ID,
		Platform:       app.PlatformGitHub,
		Owner:          r.Owner.Login,
		Path:           r.Name,
		Name:           r.Name,
		Description:    r.Description,
		URL:            r.HTMLURL,
		GitURL:         r.CloneURL,
		LiveURL:        r.liveURL(pagesDomain),
		DefaultBranch:  r.DefaultBranch,
		CreatedAt:      r.CreatedAt,
		LastActivityAt: r.UpdatedAt,
	}
}

// liveURL returns homepage if set, otherwise github pages url if pages are enabled.
func (r repoResponse) liveURL(pagesDomain string) *string {
	if r.Homepage != nil && strings.TrimSpace(*r.Homepage) != "" {
		u := strings.TrimSpace(*r.Homepage)
		return &u
	}
	if !r.HasPages || pagesDomain == "" {
		return nil
	}

	host := strings.ToLower(r.Owner.Login) + "." + pagesDomain
	var u string
	if strings.EqualFold(r.Name, host) {
		u = "https://" + host
	} else {
		u = fmt.Sprintf("https://%s/%s", host, r.Name)
	}

	return &u
}

func (r reposResponse) ToRepositories(pagesDomain string) []app.RemoteRepository {
	repos := make([]app.RemoteRepository, 0, len(r))
	for _, el := range r {
		repos = append(repos, el.ToRepository(pagesDomain))
	}

	return repos
}

// contentResponse is returned by readme and license endpoints.
type contentResponse struct {
	Content     string `json:"content"`
	Encoding    string `json:"encoding"`
	DownloadURL string `json:"download_url"`
}

// Decode returns file content. Returns false if payload has no inline content.
func (c contentResponse) Decode() (string, bool, error) {
	if c.Content == "" {
		return "", false, nil
	}
	if c.Encoding != "" && c.Encoding != "base64" {
		return c.Content, true, nil
	}

	// Content is split into lines of base64 text.
	raw := strings.NewReplacer("\n", "", "\r", "").Replace(c.Content)
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", false, app.MalformedResponseError(fmt.Sprintf("decoding base64 content: %v", err))
	}

	return strings.ToValidUTF8(string(b), "�"), true, nil
}

type eventsResponse []struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Payload   struct {
		Size    int `json:"size"`
		Commits []struct {
			SHA string `json:"sha"`
		} `json:"commits"`
	} `json:"payload"`
}

// ToContributions counts pushed commits per day.
func (e eventsResponse) ToContributions(since time.Time) []app.ContributionDay {
	since = app.Day(since)
	counts := make(map[time.Time]int)
	var order []time.Time
	for _, ev := range e {
		if ev.Type != "PushEvent" {
			continue
		}
		d := app.Day(ev.CreatedAt)
		if d.Before(since) {
			continue
		}
		n := ev.Payload.Size
		if n == 0 {
			n = len(ev.Payload.Commits)
		}
		if n == 0 {
			n = 1
		}
		if _, ok := counts[d]; !ok {
			order = append(order, d)
		}
		counts[d] += n
	}

	days := make([]app.ContributionDay, 0, len(order))
	for _, d := range order {
		days = append(days, app.ContributionDay{
			Date:     d,
			Count:    counts[d],
			Platform: app.PlatformGitHub,
		})
	}

	return days
}
