package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HTTPRequestTimeout - timeout for handling single api request
	HTTPRequestTimeout time.Duration `default:"60s"`

	// LogLevel - logrus level name
	LogLevel string `default:"info"`

	// Production - in production mode gitlab tokens are not sent
	Production bool `default:"false"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubGraphQLAddress - address for graphql api, used for contribution calendar when token is set
	GithubGraphQLAddress string `default:"https://api.github.com/graphql"`

	// GithubUsername - github account name. If empty, github is skipped
	GithubUsername string `default:""`

	// GithubAPIToken - auth token for github api (optional, rate limit is lower without this token)
	GithubAPIToken string `default:""`

	// GitlabAddress - gitlab.com address with protocol
	GitlabAddress string `default:"https://gitlab.com"`

	// GitlabUsername - gitlab.com account name. If empty, gitlab.com is skipped
	GitlabUsername string `default:""`

	// GitlabToken - personal access token for gitlab.com (optional)
	GitlabToken string `default:""`

	// SelfHostedGitlabAddress - self-hosted gitlab address with protocol. If empty, instance is skipped
	SelfHostedGitlabAddress string `default:""`

	// SelfHostedGitlabUsername - account name on self-hosted instance
	SelfHostedGitlabUsername string `default:""`

	// SelfHostedGitlabToken - personal access token for self-hosted instance (optional)
	SelfHostedGitlabToken string `default:""`

	// PlatformHTTPTimeout - timeout for single platform api call
	PlatformHTTPTimeout time.Duration `default:"30s"`

	// PlatformAPIRateLimit - max frequency of api calls per platform host
	PlatformAPIRateLimit float64 `default:"2"`

	// PlatformAPIRateBurst - max burst of api calls per platform host
	PlatformAPIRateBurst int `default:"5"`

	// PlatformCacheSize - maximum number of elements in cache for each platform
	PlatformCacheSize int `default:"1000"`

	// PlatformCacheTTL - maximum lifetime for platform cache entries
	PlatformCacheTTL time.Duration `default:"10m"`

	// DBPath - filepath for bolt db data
	DBPath string `default:"./portfolio.data"`

	// DBBucketName - bolt db bucket name
	DBBucketName string `default:"platforms"`

	// DBOpenTimeout - how long to wait for db file lock
	DBOpenTimeout time.Duration `default:"5s"`

	// DBDataTTL - maximum lifetime for staled data in db
	DBDataTTL time.Duration `default:"8h"`

	// DBDataRefreshTTL - maximum lifetime for staled data to be queued for refresh
	DBDataRefreshTTL time.Duration `default:"1h"`

	// OverrideRepositoriesLocation - url or file path of extra repositories list. If empty, no extras are added
	OverrideRepositoriesLocation string `default:""`

	// OverrideLiveURLsLocation - url or file path of live url overrides. If empty, no overrides are applied
	OverrideLiveURLsLocation string `default:""`

	// CatalogRefreshInterval - how often catalog is rebuilt in background
	CatalogRefreshInterval time.Duration `default:"30m"`

	// CatalogRebuildTimeout - timeout for single catalog rebuild
	CatalogRebuildTimeout time.Duration `default:"2m"`
}
