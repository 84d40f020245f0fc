package github

import (
	"fmt"
	"time"

	"github.com/m-zajac/goportfolio/internal/app"
	"github.com/tidwall/gjson"
)

const contributionCalendarQuery = `query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// parseContributionCalendar reads non-empty calendar days not older than since.
func parseContributionCalendar(body []byte, since time.Time) ([]app.ContributionDay, error) {
	if !gjson.ValidBytes(body) {
		return nil, app.MalformedResponseError("graphql response is not valid json")
	}

	res := gjson.ParseBytes(body)
	if errs := res.Get("errors"); errs.Exists() && len(errs.Array()) > 0 {
		return nil, app.MalformedResponseError(fmt.Sprintf("graphql errors: %s", errs.Get("0.message").String()))
	}

	weeks := res.Get("data.user.contributionsCollection.contributionCalendar.weeks")
	if !weeks.IsArray() {
		return nil, app.MalformedResponseError("graphql response has no contribution calendar")
	}

	since = app.Day(since)
	var days []app.ContributionDay
	var parseErr error
	weeks.ForEach(func(_, week gjson.Result) bool {
		week.Get("contributionDays").ForEach(func(_, d gjson.Result) bool {
			count := int(d.Get("contributionCount").Int())
			if count <= 0 {
				return true
			}
			date, err := time.Parse("2006-01-02", d.Get("date").String())
			if err != nil {
				parseErr = app.MalformedResponseError(fmt.Sprintf("parsing calendar date: %v", err))
				return false
			}
			if date.Before(since) {
				return true
			}
			days = append(days, app.ContributionDay{
				Date:     date,
				Count:    count,
				Platform: app.PlatformGitHub,
			})
			return true
		})
		return parseErr == nil
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if days == nil {
		days = []app.ContributionDay{}
	}

	return days, nil
}
