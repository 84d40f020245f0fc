package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/sirupsen/logrus"
)

type project struct {
	ID           int        `json:"id"`
	RepositoryID string     `json:"repositoryId"`
	Platform     string     `json:"platform"`
	Logo         string     `json:"logo"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	State        string     `json:"state"`
	StateLabel   string     `json:"stateLabel"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	GitURL       *string    `json:"gitUrl"`
	LiveURL      *string    `json:"liveUrl"`
	Documents    *documents `json:"documents,omitempty"`
}

type documents struct {
	Readme  *string `json:"readme"`
	License *string `json:"license"`
}

type projectsResponse struct {
	State    string    `json:"state"`
	Projects []project `json:"projects"`
}

type rebuildResponse struct {
	State    string `json:"state"`
	Projects int    `json:"projects"`
}

type contributionDay struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	Platform string `json:"platform"`
}

type contributionsResponse struct {
	StartDate    string            `json:"startDate"`
	EndDate      string            `json:"endDate"`
	TotalCommits int               `json:"totalCommits"`
	Days         []contributionDay `json:"days"`
}

func newProject(p app.Project) project {
	resp := project{
		ID:           p.ID,
		RepositoryID: p.RepositoryID,
		Platform:     string(p.Platform),
		Logo:         p.Logo,
		Title:        p.Title,
		Description:  p.Description,
		State:        p.State.String(),
		StateLabel:   p.State.Label(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		GitURL:       p.GitURL,
		LiveURL:      p.LiveURL,
	}
	if p.Hydrated() {
		resp.Documents = &documents{
			Readme:  p.Readme,
			License: p.License,
		}
	}

	return resp
}

func newContributionsResponse(s app.ContributionSeries) contributionsResponse {
	days := make([]contributionDay, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, contributionDay{
			Date:     d.Date.Format(dateLayout),
			Count:    d.Count,
			Platform: string(d.Platform),
		})
	}

	return contributionsResponse{
		StartDate:    s.StartDate.Format(dateLayout),
		EndDate:      s.EndDate.Format(dateLayout),
		TotalCommits: s.TotalCommits,
		Days:         days,
	}
}

const dateLayout = "2006-01-02"

// NewProjectsHandler creates handlerfunc returning catalog snapshot.
func NewProjectsHandler(catalog Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := catalog.Projects()
		projects := make([]project, 0, len(snapshot))
		for _, p := range snapshot {
			projects = append(projects, newProject(p))
		}

		writeJSON(w, http.StatusOK, projectsResponse{
			State:    catalog.State().String(),
			Projects: projects,
		})
	}
}

// NewProjectHandler creates handlerfunc returning single project found with given lookup func.
func NewProjectHandler(find func(*http.Request) (app.Project, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := find(r)
		if !ok {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, newProject(p))
	}
}

// NewDocumentsHandler creates handlerfunc loading project readme and license.
func NewDocumentsHandler(getID func(*http.Request) (int, bool), catalog Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getID(r)
		if !ok {
			http.Error(w, "invalid project id", http.StatusBadRequest)
			return
		}

		p, err := catalog.HydrateReadmeAndLicense(r.Context(), id)
		if err != nil {
			if app.IsNotFoundError(err) {
				http.Error(w, "project not found", http.StatusNotFound)
				return
			}

			l.Errorf("hydrating project %d: %v", id, err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, documents{
			Readme:  p.Readme,
			License: p.License,
		})
	}
}

// NewContributionsHandler creates handlerfunc returning merged contribution series.
// Series starts at "since" query param (YYYY-MM-DD), one year ago by default.
func NewContributionsHandler(contributions ContributionsService, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		since := app.Day(now()).AddDate(-1, 0, 0)
		if s := r.URL.Query().Get("since"); s != "" {
			t, err := time.Parse(dateLayout, s)
			if err != nil {
				http.Error(w, "invalid since param, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			if t.After(now()) {
				http.Error(w, "since param cannot be in the future", http.StatusBadRequest)
				return
			}
			since = t
		}

		series := contributions.MergeContributions(r.Context(), since)
		writeJSON(w, http.StatusOK, newContributionsResponse(series))
	}
}

// NewRebuildHandler creates handlerfunc rebuilding the catalog synchronously.
// Rebuild doesn't use request context, so a client disconnect or request timeout doesn't abort it.
func NewRebuildHandler(catalog Service, timeout time.Duration, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		state := catalog.Rebuild(ctx)
		l.Infof("catalog rebuild requested, result: %s", state)

		status := http.StatusOK
		if state != app.Ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, rebuildResponse{
			State:    state.String(),
			Projects: len(catalog.Projects()),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

func projectIDVar(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
