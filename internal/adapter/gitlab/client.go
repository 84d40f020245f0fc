// Package gitlab implements app.Source for gitlab.com and self-hosted GitLab instances.
package gitlab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/goportfolio/internal/adapter/rest"
	"github.com/m-zajac/goportfolio/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config describes single GitLab instance.
type Config struct {
	// Platform is the tag of produced records, app.PlatformGitLab or app.PlatformGitLabSelfHosted.
	Platform app.Platform
	// Address is the instance base url, like https://gitlab.com.
	Address  string
	Username string
	Token    string
	// Production disables sending the token.
	Production bool
}

// Client returns repositories and contributions of a single GitLab user.
// This struct is an adapter for app.Source.
type Client struct {
	doer   rest.HTTPDoer
	cfg    Config
	apiURL string
	host   string

	projectsResponseMaxSize int
	fileResponseMaxSize     int
	eventsResponseMaxSize   int
	perPage                 int
}

var _ app.Source = &Client{}

// NewClient creates new gitlab client.
func NewClient(doer rest.HTTPDoer, cfg Config) (*Client, error) {
	cfg.Address = strings.TrimSuffix(cfg.Address, "/")
	u, err := url.Parse(cfg.Address)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid gitlab address %q", cfg.Address)
	}
	if cfg.Platform == "" {
		return nil, fmt.Errorf("platform of %s cannot be empty", cfg.Address)
	}

	return &Client{
		doer:   doer,
		cfg:    cfg,
		apiURL: cfg.Address + "/api/v4",
		host:   u.Hostname(),

		projectsResponseMaxSize: 1024 * 1024 * 10,
		fileResponseMaxSize:     1024 * 1024 * 5,
		eventsResponseMaxSize:   1024 * 1024 * 10,
		perPage:                 100,
	}, nil
}

// Platform returns platform tag of this instance.
func (c *Client) Platform() app.Platform {
	return c.cfg.Platform
}

// PublicRepositories returns first page of user's public projects.
func (c *Client) PublicRepositories(ctx context.Context) ([]app.RemoteRepository, error) {
	if c.cfg.Username == "" {
		return nil, app.InvalidRequestError("gitlab username cannot be empty")
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(c.perPage))
	v.Set("visibility", "public")
	u := c.apiURL + "/users/" + url.PathEscape(c.cfg.Username) + "/projects?" + v.Encode()

	var resp projectsResponse
	if err := c.getJSON(ctx, u, c.projectsResponseMaxSize, &resp); err != nil {
		return nil, err
	}

	return resp.ToRepositories(c.cfg.Platform), nil
}

// Readme returns content of the first existing readme candidate file.
func (c *Client) Readme(ctx context.Context, repo app.RemoteRepository) (string, error) {
	return app.ProbeCandidates(ctx, app.ReadmeCandidates, c.rawFileFetcher(repo))
}

// License returns content of the first existing license candidate file.
func (c *Client) License(ctx context.Context, repo app.RemoteRepository) (string, error) {
	return app.ProbeCandidates(ctx, app.LicenseCandidates, c.rawFileFetcher(repo))
}

// Contributions returns commit counts per day since given date.
//
// Push events of the user are counted. When events can't be read, commits of user's public projects are counted instead.
func (c *Client) Contributions(ctx context.Context, since time.Time) ([]app.ContributionDay, error) {
	if c.cfg.Username == "" {
		return nil, app.InvalidRequestError("gitlab username cannot be empty")
	}

	counts, eventsErr := c.eventCounts(ctx, since)
	if eventsErr == nil {
		return counts.Days(c.cfg.Platform), nil
	}

	counts, err := c.commitCounts(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("counting commits: %w (events: %v)", err, eventsErr)
	}

	return counts.Days(c.cfg.Platform), nil
}

// Repository returns single project by native id or web url.
// Urls pointing to other hosts result in app.NotFoundError without calling the api.
func (c *Client) Repository(ctx context.Context, ref app.RepositoryRef) (app.RemoteRepository, error) {
	var fullPath string
	if ref.URL != "" {
		var ok bool
		fullPath, ok = c.parseProjectURL(ref.URL)
		if !ok {
			return app.RemoteRepository{}, app.NotFoundError(fmt.Sprintf("%s is not a %s project url", ref.URL, c.host))
		}
	}

	var u string
	switch {
	case ref.NativeID > 0:
		u = fmt.Sprintf("%s/projects/%d", c.apiURL, ref.NativeID)
	case fullPath != "":
		u = c.apiURL + "/projects/" + escapeProjectPath(fullPath)
	default:
		return app.RemoteRepository{}, app.InvalidRequestError("project url or id is required")
	}

	var resp projectResponse
	if err := c.getJSON(ctx, u, c.projectsResponseMaxSize, &resp); err != nil {
		return app.RemoteRepository{}, err
	}

	return resp.ToRepository(c.cfg.Platform), nil
}

func (c *Client) rawFileFetcher(repo app.RemoteRepository) app.FetchFileFunc {
	return func(ctx context.Context, name string) (string, error) {
		if repo.NativeID <= 0 {
			return "", app.InvalidRequestError("project id is required")
		}
		ref := repo.DefaultBranch
		if ref == "" {
			ref = "HEAD"
		}

		u := fmt.Sprintf(
			"%s/projects/%d/repository/files/%s/raw?ref=%s",
			c.apiURL,
			repo.NativeID,
			url.PathEscape(name),
			url.QueryEscape(ref),
		)
		body, err := rest.Get(ctx, c.doer, u, c.headers(), c.fileResponseMaxSize)
		if err != nil {
			return "", fmt.Errorf("fetching %s: %w", name, err)
		}

		return strings.ToValidUTF8(string(body), "�"), nil
	}
}

func (c *Client) eventCounts(ctx context.Context, since time.Time) (dayCounts, error) {
	userID, err := c.userID(ctx)
	if err != nil {
		return dayCounts{}, err
	}

	v := make(url.Values)
	v.Set("action", "pushed")
	// after is exclusive.
	v.Set("after", app.Day(since).AddDate(0, 0, -1).Format("2006-01-02"))
	v.Set("per_page", strconv.Itoa(c.perPage))
	u := fmt.Sprintf("%s/users/%d/events?%s", c.apiURL, userID, v.Encode())

	var resp eventsResponse
	if err := c.getJSON(ctx, u, c.eventsResponseMaxSize, &resp); err != nil {
		return dayCounts{}, err
	}

	return resp.ToCounts(since), nil
}

func (c *Client) commitCounts(ctx context.Context, since time.Time) (dayCounts, error) {
	repos, err := c.PublicRepositories(ctx)
	if err != nil {
		return dayCounts{}, err
	}

	counts := newDayCounts(since)
	v := make(url.Values)
	v.Set("since", app.Day(since).Format(time.RFC3339))
	v.Set("per_page", strconv.Itoa(c.perPage))
	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return dayCounts{}, err
		}
		u := fmt.Sprintf("%s/projects/%d/repository/commits?%s", c.apiURL, repo.NativeID, v.Encode())

		var resp commitsResponse
		if err := c.getJSON(ctx, u, c.eventsResponseMaxSize, &resp); err != nil {
			// Empty repositories have no commits endpoint.
			if app.IsNotFoundError(err) {
				continue
			}
			return dayCounts{}, err
		}
		resp.AddTo(&counts)
	}

	return counts, nil
}

func (c *Client) userID(ctx context.Context) (int64, error) {
	v := make(url.Values)
	v.Set("username", c.cfg.Username)

	var resp usersResponse
	if err := c.getJSON(ctx, c.apiURL+"/users?"+v.Encode(), c.projectsResponseMaxSize, &resp); err != nil {
		return 0, err
	}
	if len(resp) == 0 {
		return 0, app.NotFoundError(fmt.Sprintf("user %s not found", c.cfg.Username))
	}

	return resp[0].ID, nil
}

func (c *Client) getJSON(ctx context.Context, u string, maxSize int, v interface{}) error {
	body, err := rest.Get(ctx, c.doer, u, c.headers(), maxSize)
	if err != nil {
		return fmt.Errorf("making http request: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return app.MalformedResponseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return nil
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	if c.cfg.Token != "" && !c.cfg.Production {
		h.Set("PRIVATE-TOKEN", c.cfg.Token)
	}

	return h
}

// parseProjectURL extracts full project path from web or clone url of this instance.
func (c *Client) parseProjectURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !strings.EqualFold(u.Hostname(), c.host) {
		return "", false
	}

	p := strings.Trim(u.Path, "/")
	p = strings.TrimSuffix(p, ".git")
	// Strip subpages like /-/tree/main.
	if i := strings.Index(p, "/-/"); i >= 0 {
		p = p[:i]
	}
	parts := strings.Split(p, "/")
	if len(parts) < 2 {
		return "", false
	}
	for _, part := range parts {
		if part == "" {
			return "", false
		}
	}

	return p, true
}

func escapeProjectPath(p string) string {
	parts := strings.Split(p, "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}

	return strings.Join(parts, "%2F")
}
