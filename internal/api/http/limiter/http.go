// Package limiter throttles outgoing calls to platform apis.
package limiter

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/m-zajac/goportfolio/internal/adapter/rest"
	"github.com/m-zajac/goportfolio/internal/app"
	"golang.org/x/time/rate"
)

// limitedHTTPDoer wraps HTTPDoer and allows Dos with maximum rate limit per target host.
type limitedHTTPDoer struct {
	doer    rest.HTTPDoer
	maxRate float64
	burst   int

	m        sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewHTTPDoer creates rate limited HTTPDoer.
// maxRate - maximum number of Dos per second to a single host, burst - maximum number of Dos at once.
func NewHTTPDoer(doer rest.HTTPDoer, maxRate float64, burst int) rest.HTTPDoer {
	if burst < 1 {
		burst = 1
	}

	return &limitedHTTPDoer{
		doer:     doer,
		maxRate:  maxRate,
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Do executes http request. If limit is exceeded, blocks until call rate is within limit.
func (d *limitedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter(r).Wait(r.Context()); err != nil {
		return nil, app.UnreachableError(fmt.Sprintf("waiting for %s limiter: %v", r.URL.Host, err))
	}

	return d.doer.Do(r)
}

func (d *limitedHTTPDoer) limiter(r *http.Request) *rate.Limiter {
	host := strings.ToLower(r.URL.Host)

	d.m.Lock()
	defer d.m.Unlock()

	l, ok := d.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.maxRate), d.burst)
		d.limiters[host] = l
	}

	return l
}
