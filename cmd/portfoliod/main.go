package main

import (
	"context"
	netHttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/goportfolio/internal/adapter/github"
	"github.com/m-zajac/goportfolio/internal/adapter/gitlab"
	"github.com/m-zajac/goportfolio/internal/adapter/overrides"
	"github.com/m-zajac/goportfolio/internal/adapter/platform"
	"github.com/m-zajac/goportfolio/internal/api/http"
	"github.com/m-zajac/goportfolio/internal/api/http/limiter"
	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/m-zajac/goportfolio/internal/database"
	"github.com/m-zajac/goportfolio/internal/metrics"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("coludn't parse config: %v", err)
	}
	if level, err := logrus.ParseLevel(conf.LogLevel); err == nil {
		l.Level = level
	} else {
		l.Warnf("invalid log level %q, using %s", conf.LogLevel, l.Level)
	}

	httpClient := &netHttp.Client{
		Timeout: conf.PlatformHTTPTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.PlatformAPIRateLimit,
		conf.PlatformAPIRateBurst,
	)

	kvStore, err := database.NewBoltKVStore(
		conf.DBPath,
		conf.DBBucketName,
		conf.DBOpenTimeout,
	)
	if err != nil {
		l.Fatalf("coludn't create bolt kv store: %v", err)
	}
	defer kvStore.Close()

	var sources []app.Source
	if conf.GithubUsername != "" {
		sources = append(sources, github.NewClient(
			limitedHTTPClient,
			conf.GithubAPIAddress,
			conf.GithubGraphQLAddress,
			conf.GithubUsername,
			conf.GithubAPIToken,
		))
	}
	if conf.GitlabUsername != "" {
		gitlabClient, err := gitlab.NewClient(limitedHTTPClient, gitlab.Config{
			Platform:   app.PlatformGitLab,
			Address:    conf.GitlabAddress,
			Username:   conf.GitlabUsername,
			Token:      conf.GitlabToken,
			Production: conf.Production,
		})
		if err != nil {
			l.Fatalf("couldn't create gitlab client: %v", err)
		}
		sources = append(sources, gitlabClient)
	}
	if conf.SelfHostedGitlabAddress != "" && conf.SelfHostedGitlabUsername != "" {
		selfHostedClient, err := gitlab.NewClient(limitedHTTPClient, gitlab.Config{
			Platform:   app.PlatformGitLabSelfHosted,
			Address:    conf.SelfHostedGitlabAddress,
			Username:   conf.SelfHostedGitlabUsername,
			Token:      conf.SelfHostedGitlabToken,
			Production: conf.Production,
		})
		if err != nil {
			l.Fatalf("couldn't create self-hosted gitlab client: %v", err)
		}
		sources = append(sources, selfHostedClient)
	}
	if len(sources) == 0 {
		l.Warn("no platform username configured, catalog will be empty")
	}

	m := metrics.New()

	clients := make([]app.PlatformClient, 0, len(sources))
	for _, src := range sources {
		staleDataSource := platform.NewSourceWithStaleData(
			src,
			kvStore,
			conf.DBDataTTL,
			conf.DBDataRefreshTTL,
			l.WithField("component", "staleDataSource"),
		)
		staleDataSource.RunScheduler()
		defer staleDataSource.Close()

		cachedSource, err := platform.NewCachedSource(
			staleDataSource,
			conf.PlatformCacheSize,
			conf.PlatformCacheTTL,
		)
		if err != nil {
			l.Fatalf("couldn't create %s client cache: %v", src.Platform(), err)
		}

		clients = append(clients, app.NewTolerantClient(
			cachedSource,
			m,
			l.WithField("component", "platformClient"),
		))
	}

	// Override files are not platform api calls, so they skip the limiter.
	overridesLoader := overrides.NewLoader(
		httpClient,
		conf.OverrideRepositoriesLocation,
		conf.OverrideLiveURLsLocation,
	)
	aggregator := app.NewAggregator(clients, overridesLoader, l.WithField("component", "aggregator"))
	catalog := app.NewCatalog(aggregator, l.WithField("component", "catalog"))
	catalog.Subscribe(m.ObserveCatalog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		rctx, cancel := context.WithTimeout(ctx, conf.CatalogRebuildTimeout)
		defer cancel()

		state := catalog.Rebuild(rctx)
		l.Infof("initial catalog build finished, state: %s, projects: %d", state, len(catalog.Projects()))
	}()
	catalog.RunRefresher(conf.CatalogRefreshInterval, conf.CatalogRebuildTimeout)
	defer catalog.Close()

	router := http.NewMux(
		catalog,
		aggregator,
		conf.HTTPRequestTimeout,
		conf.CatalogRebuildTimeout,
		l.WithField("component", "mux"),
	)
	router.Use(m.Middleware)
	router.Handle("/metrics", m.Handler())

	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		router,
		l.WithField("component", "httpServer"),
	)
	server.Run(ctx)
	l.Info("server stopped")
}
