package mock

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"sync"
)

// Route is a scripted response for a single url path.
type Route struct {
	Status int
	Body   []byte
	Header http.Header
}

// HTTPDoer mocks http.Client.
//
// Responses are taken from Routes (by escaped url path) when set, otherwise from Statuses/Bodies/Headers in a loop.
// Unknown paths in Routes mode return 404.
type HTTPDoer struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header
	Routes   map[string]Route

	DoFunc    func(*http.Request) (*http.Response, error)
	Responses []*http.Response

	m sync.Mutex
	i int
}

// Do fakes executing http request.
func (d *HTTPDoer) Do(r *http.Request) (*http.Response, error) {
	d.m.Lock()
	defer d.m.Unlock()
	defer func() {
		d.i++
	}()

	if d.DoFunc != nil {
		resp, err := d.DoFunc(r)
		if resp != nil {
			if resp.Request == nil {
				resp.Request = r
			}
			d.Responses = append(d.Responses, resp)
		}
		return resp, err
	}

	status := http.StatusOK
	var data []byte
	header := http.Header{}

	if d.Routes != nil {
		route, ok := d.Routes[r.URL.EscapedPath()]
		if !ok {
			route = Route{Status: http.StatusNotFound}
		}
		if route.Status != 0 {
			status = route.Status
		}
		data = route.Body
		if route.Header != nil {
			header = route.Header
		}
	} else {
		if len(d.Statuses) > 0 {
			status = d.Statuses[d.i%len(d.Statuses)]
		}
		if len(d.Bodies) > 0 {
			data = d.Bodies[d.i%len(d.Bodies)]
		}
		if len(d.Headers) > 0 {
			header = d.Headers[d.i%len(d.Headers)]
		}
	}

	response := &http.Response{
		StatusCode: status,
		Body:       ioutil.NopCloser(bytes.NewBuffer(data)),
		Header:     header,
		Request:    r,
	}
	d.Responses = append(d.Responses, response)

	return response, nil
}

// Requests returns all requests executed so far.
func (d *HTTPDoer) Requests() []*http.Request {
	d.m.Lock()
	defer d.m.Unlock()

	reqs := make([]*http.Request, 0, len(d.Responses))
	for _, r := range d.Responses {
		reqs = append(reqs, r.Request)
	}

	return reqs
}
