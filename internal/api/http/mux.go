package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/sirupsen/logrus"
)

// Service exposes the project catalog.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/goportfolio/internal/api/http Service,ContributionsService
type Service interface {
	State() app.LoadingState
	Projects() []app.Project
	FindByID(id int) (app.Project, bool)
	FindByName(name string) (app.Project, bool)
	HydrateReadmeAndLicense(ctx context.Context, id int) (app.Project, error)
	Rebuild(ctx context.Context) app.LoadingState
}

// ContributionsService can merge contributions of all platforms.
type ContributionsService interface {
	MergeContributions(ctx context.Context, since time.Time) app.ContributionSeries
}

// NewMux creates router for app's http server.
// timeout limits single request handling, rebuildTimeout limits catalog rebuild triggered through the api.
func NewMux(
	catalog Service,
	contributions ContributionsService,
	timeout time.Duration,
	rebuildTimeout time.Duration,
	l logrus.FieldLogger,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(NewLoggingMiddleware(l), NewTimeoutMiddleware(timeout))

	r.HandleFunc("/projects", NewProjectsHandler(catalog)).Methods(http.MethodGet)
	r.HandleFunc("/projects/by-name/{name}", NewProjectHandler(func(r *http.Request) (app.Project, bool) {
		return catalog.FindByName(mux.Vars(r)["name"])
	})).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id:[0-9]+}", NewProjectHandler(func(r *http.Request) (app.Project, bool) {
		id, ok := projectIDVar(r)
		if !ok {
			return app.Project{}, false
		}
		return catalog.FindByID(id)
	})).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id:[0-9]+}/documents", NewDocumentsHandler(projectIDVar, catalog, l)).Methods(http.MethodGet)
	r.HandleFunc("/contributions", NewContributionsHandler(contributions, time.Now)).Methods(http.MethodGet)
	r.HandleFunc("/catalog/rebuild", NewRebuildHandler(catalog, rebuildTimeout, l)).Methods(http.MethodPost)

	return r
}
