package github

import (
	"bytes"
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

// Client returns repositories and contributions of a single GitHub user.
// This struct is an adapter for app.Source.
type Client struct {
	doer           rest.HTTPDoer
	address        string
	graphQLAddress string
	webHost        string
	pagesDomain    string
	username       string
	authToken      string

	reposResponseMaxSize  int
	fileResponseMaxSize   int
	eventsResponseMaxSize int
	perPage               int
}

var _ app.Source = &Client{}

// NewClient creates new github client.
// authToken is optional; without it contributions are read from the public events feed only.
func NewClient(doer rest.HTTPDoer, address string, graphQLAddress string, username string, authToken string) *Client {
	c := Client{
		doer:           doer,
		address:        strings.TrimSuffix(address, "/"),
		graphQLAddress: graphQLAddress,
		webHost:        "github.com",
		pagesDomain:    "github.io",
		username:       username,
		authToken:      authToken,

		reposResponseMaxSize:  1024 * 1024 * 10,
		fileResponseMaxSize:   1024 * 1024 * 5,
		eventsResponseMaxSize: 1024 * 1024 * 10,
		perPage:               100,
	}

	return &c
}

// Platform returns app.PlatformGitHub.
func (c *Client) Platform() app.Platform {
	return app.PlatformGitHub
}

// PublicRepositories returns first page of user's public repositories.
func (c *Client) PublicRepositories(ctx context.Context) ([]app.RemoteRepository, error) {
	if c.username == "" {
		return nil, app.InvalidRequestError("github username cannot be empty")
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(c.perPage))
	v.Set("type", "public")
	u := c.address + "/users/" + url.PathEscape(c.username) + "/repos?" + v.Encode()

	body, err := rest.Get(ctx, c.doer, u, c.headers(), c.reposResponseMaxSize)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp reposResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.MalformedResponseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToRepositories(c.pagesDomain), nil
}

// Readme returns repository readme.
func (c *Client) Readme(ctx context.Context, repo app.RemoteRepository) (string, error) {
	return c.contentFile(ctx, repo, "readme")
}

// License returns repository license.
func (c *Client) License(ctx context.Context, repo app.RemoteRepository) (string, error) {
	return c.contentFile(ctx, repo, "license")
}

// Contributions returns commit counts per day since given date.
//
// With auth token, the contribution calendar is read with graphql api. Without it, or when graphql fails,
// push events from the public events feed are counted.
func (c *Client) Contributions(ctx context.Context, since time.Time) ([]app.ContributionDay, error) {
	if c.username == "" {
		return nil, app.InvalidRequestError("github username cannot be empty")
	}

	var calendarErr error
	if c.authToken != "" && c.graphQLAddress != "" {
		days, err := c.calendarContributions(ctx, since)
		if err == nil {
			return days, nil
		}
		calendarErr = err
	}

	days, err := c.eventContributions(ctx, since)
	if err != nil {
		if calendarErr != nil {
			return nil, fmt.Errorf("reading events: %w (calendar: %v)", err, calendarErr)
		}
		return nil, fmt.Errorf("reading events: %w", err)
	}

	return days, nil
}

// Repository returns single repository by native id or web url.
// Urls pointing to other hosts result in app.NotFoundError without calling the api.
func (c *Client) Repository(ctx context.Context, ref app.RepositoryRef) (app.RemoteRepository, error) {
	var owner, name string
	if ref.URL != "" {
		var ok bool
		owner, name, ok = c.parseRepoURL(ref.URL)
		if !ok {
			return app.RemoteRepository{}, app.NotFoundError(fmt.Sprintf("%s is not a github repository url", ref.URL))
		}
	}

	var u string
	switch {
	case ref.NativeID > 0:
		u = fmt.Sprintf("%s/repositories/%d", c.address, ref.NativeID)
	case owner != "":
		u = fmt.Sprintf("%s/repos/%s/%s", c.address, url.PathEscape(owner), url.PathEscape(name))
	default:
		return app.RemoteRepository{}, app.InvalidRequestError("repository url or id is required")
	}

	body, err := rest.Get(ctx, c.doer, u, c.headers(), c.reposResponseMaxSize)
	if err != nil {
		return app.RemoteRepository{}, fmt.Errorf("making http request: %w", err)
	}

	var resp repoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.RemoteRepository{}, app.MalformedResponseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToRepository(c.pagesDomain), nil
}

func (c *Client) contentFile(ctx context.Context, repo app.RemoteRepository, kind string) (string, error) {
	if repo.Owner == "" || repo.Path == "" {
		return "", app.InvalidRequestError("repository owner and path cannot be empty")
	}

	u := fmt.Sprintf("%s/repos/%s/%s/%s", c.address, url.PathEscape(repo.Owner), url.PathEscape(repo.Path), kind)
	body, err := rest.Get(ctx, c.doer, u, c.headers(), c.fileResponseMaxSize)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", kind, err)
	}

	var resp contentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", app.MalformedResponseError(fmt.Sprintf("unmarshalling %s response: %v", kind, err))
	}

	content, ok, err := resp.Decode()
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", kind, err)
	}
	if ok {
		return content, nil
	}
	if resp.DownloadURL == "" {
		return "", app.NotFoundError(kind + " has no content")
	}

	raw, err := rest.Get(ctx, c.doer, resp.DownloadURL, nil, c.fileResponseMaxSize)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", kind, err)
	}

	return string(raw), nil
}

func (c *Client) eventContributions(ctx context.Context, since time.Time) ([]app.ContributionDay, error) {
	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(c.perPage))
	u := c.address + "/users/" + url.PathEscape(c.username) + "/events?" + v.Encode()

	body, err := rest.Get(ctx, c.doer, u, c.headers(), c.eventsResponseMaxSize)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp eventsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.MalformedResponseError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToContributions(since), nil
}

func (c *Client) calendarContributions(ctx context.Context, since time.Time) ([]app.ContributionDay, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query: contributionCalendarQuery,
		Variables: map[string]interface{}{
			"login": c.username,
			"from":  since.UTC().Format(time.RFC3339),
			"to":    time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling graphql request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.graphQLAddress, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Authorization", "bearer "+c.authToken)

	body, _, err := rest.Do(ctx, c.doer, req, header, c.eventsResponseMaxSize)
	if err != nil {
		return nil, fmt.Errorf("making graphql request: %w", err)
	}

	return parseContributionCalendar(body, since)
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		h.Set("Authorization", "token "+c.authToken)
	}

	return h
}

// parseRepoURL extracts owner and repository name from github web or clone url.
func (c *Client) parseRepoURL(raw string) (string, string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !strings.EqualFold(u.Hostname(), c.webHost) {
		return "", "", false
	}

	p := strings.Trim(u.Path, "/")
	p = strings.TrimSuffix(p, ".git")
	parts := strings.Split(p, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	return parts[0], parts[1], true
}
