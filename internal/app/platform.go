package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Source returns repository data from a single platform.
// Failures are reported as errors; see TolerantClient for the degrading variant.
//go:generate mockgen -destination mock/source.go -package mock github.com/m-zajac/goportfolio/internal/app Source
type Source interface {
	Platform() Platform
	PublicRepositories(ctx context.Context) ([]RemoteRepository, error)
	Readme(ctx context.Context, repo RemoteRepository) (string, error)
	License(ctx context.Context, repo RemoteRepository) (string, error)
	Contributions(ctx context.Context, since time.Time) ([]ContributionDay, error)
	Repository(ctx context.Context, ref RepositoryRef) (RemoteRepository, error)
}

// PlatformClient returns repository data from a single platform and never fails.
// Errors are absorbed into empty or nil results.
//go:generate mockgen -destination mock/platformclient.go -package mock github.com/m-zajac/goportfolio/internal/app PlatformClient
type PlatformClient interface {
	Platform() Platform
	ListPublicRepositories(ctx context.Context) []RemoteRepository
	FetchReadmeAndLicense(ctx context.Context, repo RemoteRepository) (readme *string, license *string)
	FetchContributions(ctx context.Context, since time.Time) []ContributionDay
	FetchRepositoryByURLOrID(ctx context.Context, ref RepositoryRef) *RemoteRepository
}

// CallObserver records outcomes of platform calls.
type CallObserver interface {
	ObservePlatformCall(platform Platform, operation string, outcome string)
}

// Platform call outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// TolerantClient adapts Source to PlatformClient.
type TolerantClient struct {
	source   Source
	observer CallObserver
	l        logrus.FieldLogger
}

var _ PlatformClient = &TolerantClient{}

// NewTolerantClient creates new TolerantClient instance. observer is optional.
func NewTolerantClient(source Source, observer CallObserver, l logrus.FieldLogger) *TolerantClient {
	return &TolerantClient{
		source:   source,
		observer: observer,
		l:        l.WithField("platform", source.Platform()),
	}
}

// Platform returns underlying source platform.
func (c *TolerantClient) Platform() Platform {
	return c.source.Platform()
}

// ListPublicRepositories returns public repositories, or empty slice on failure.
func (c *TolerantClient) ListPublicRepositories(ctx context.Context) []RemoteRepository {
	repos, err := c.source.PublicRepositories(ctx)
	if c.absorb("repositories", err) {
		return []RemoteRepository{}
	}
	if repos == nil {
		repos = []RemoteRepository{}
	}

	return repos
}

// FetchReadmeAndLicense returns readme and license contents. Missing or unavailable files are nil.
// Fetches are sequential, readme first.
func (c *TolerantClient) FetchReadmeAndLicense(ctx context.Context, repo RemoteRepository) (*string, *string) {
	var readme, license *string

	s, err := c.source.Readme(ctx, repo)
	if !c.absorb("readme", err) {
		readme = &s
	}
	s, err = c.source.License(ctx, repo)
	if !c.absorb("license", err) {
		license = &s
	}

	return readme, license
}

// FetchContributions returns contribution days since given date, or empty slice on failure.
func (c *TolerantClient) FetchContributions(ctx context.Context, since time.Time) []ContributionDay {
	days, err := c.source.Contributions(ctx, since)
	if c.absorb("contributions", err) {
		return []ContributionDay{}
	}

	since = Day(since)
	result := make([]ContributionDay, 0, len(days))
	for _, d := range days {
		if d.Count <= 0 || d.Date.Before(since) {
			continue
		}
		result = append(result, d)
	}

	return result
}

// FetchRepositoryByURLOrID resolves single repository, or returns nil.
func (c *TolerantClient) FetchRepositoryByURLOrID(ctx context.Context, ref RepositoryRef) *RemoteRepository {
	repo, err := c.source.Repository(ctx, ref)
	if c.absorb("repository", err) {
		return nil
	}

	return &repo
}

// absorb logs and records err. Returns true if the result should be discarded.
func (c *TolerantClient) absorb(operation string, err error) bool {
	outcome := OutcomeOK
	switch {
	case err == nil:
	case IsNotFoundError(err):
		outcome = OutcomeNotFound
		c.l.WithField("operation", operation).Debugf("not found: %v", err)
	default:
		outcome = OutcomeError
		c.l.WithField("operation", operation).Warnf("platform call failed: %v", err)
	}
	if c.observer != nil {
		c.observer.ObservePlatformCall(c.source.Platform(), operation, outcome)
	}

	return err != nil
}
