package app

import (
	"fmt"
	"time"
)

// Platform identifies a source-control hosting service.
type Platform string

// Supported platforms.
const (
	PlatformGitHub           Platform = "github"
	PlatformGitLab           Platform = "gitlab"
	PlatformGitLabSelfHosted Platform = "gitlab-self-hosted"
)

// RepositoryID composes the cross-platform repository id.
func RepositoryID(p Platform, nativeID int64) string {
	return fmt.Sprintf("%s-%d", p, nativeID)
}

// RemoteRepository entity. Normalized view of a repository from any platform.
type RemoteRepository struct {
	ID       string
	NativeID int64
	Platform Platform

	// Owner is the owner login or namespace path, Path is the repository path within it.
	Owner string
	Path  string

	Name           string
	Description    *string
	URL            string
	GitURL         string
	LiveURL        *string
	DefaultBranch  string
	CreatedAt      time.Time
	LastActivityAt time.Time

	Readme         *string
	License        *string
	ReadmeLoading  bool
	LicenseLoading bool
}

// RepositoryRef points to a single repository by web url, optionally by native id.
type RepositoryRef struct {
	URL      string `json:"url"`
	NativeID int64  `json:"id,omitempty"`
}

// ContributionDay entity. Date is always truncated to a UTC day.
type ContributionDay struct {
	Date     time.Time
	Count    int
	Platform Platform
}

// ContributionSeries is a date ordered, one-record-per-day contribution history.
type ContributionSeries struct {
	Days         []ContributionDay
	TotalCommits int
	StartDate    time.Time
	EndDate      time.Time
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// State is a project's lifecycle state.
type State int

// Lifecycle states. Unpublished and Cancelled are never derived automatically.
const (
	StateInDevelopment State = iota
	StateLive
	StateUnpublished
	StatePaused
	StateCancelled
)

var stateNames = map[State]string{
	StateInDevelopment: "in-development",
	StateLive:          "live",
	StateUnpublished:   "unpublished",
	StatePaused:        "paused",
	StateCancelled:     "cancelled",
}

var stateLabels = map[State]string{
	StateInDevelopment: "In development",
	StateLive:          "Live",
	StateUnpublished:   "Not published",
	StatePaused:        "Currently paused",
	StateCancelled:     "Development cancelled",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Label returns human readable state description.
func (s State) Label() string {
	return stateLabels[s]
}

// Project entity. Display-facing view of a RemoteRepository.
type Project struct {
	ID           int
	RepositoryID string
	Platform     Platform
	Logo         string
	Title        string
	Description  string
	State        State
	CreatedAt    time.Time
	UpdatedAt    time.Time
	GitURL       *string
	LiveURL      *string

	Readme         *string
	License        *string
	ReadmeLoading  bool
	LicenseLoading bool
}

// Hydrated tells if readme or license were already fetched.
func (p Project) Hydrated() bool {
	return p.Readme != nil || p.License != nil
}

// LoadingState describes catalog build progress.
type LoadingState int

// Catalog loading states.
const (
	Loading LoadingState = iota
	Ready
	Failed
)

func (s LoadingState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}
