package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

type recordedRequest struct {
	body    map[string]any
	headers map[string]string
	queries map[string]string
}

type stubResponse struct {
	status int
	body   any
}

// ApiMock is a recording stand-in for third-party HTTP APIs (Resend in the
// integration suite). Responses are configured per call index or as a route default.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  map[string][]recordedRequest
	responses map[string]map[int]stubResponse
	defaults  map[string]stubResponse
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requests:  map[string][]recordedRequest{},
		responses: map[string]map[int]stubResponse{},
		defaults:  map[string]stubResponse{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	if a.server == nil {
		return ""
	}
	return a.server.URL
}

func (a *ApiMock) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	recorded := recordedRequest{
		body:    body,
		headers: map[string]string{},
		queries: map[string]string{},
	}
	for key, value := range r.Header {
		recorded.headers[key] = value[0]
	}
	for key, value := range r.URL.Query() {
		recorded.queries[key] = value[0]
	}

	a.mu.Lock()
	key := r.Method + r.URL.Path
	index := len(a.requests[key])
	a.requests[key] = append(a.requests[key], recorded)
	resp := a.responseFor(r.Method, r.URL.Path, index)
	a.mu.Unlock()

	payload, _ := json.Marshal(resp.body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write(payload)
}

// SetResponse configures the reply for the index-th call to method+path.
// An index of -1 sets the route default. Paths may use "*" segments.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	stub := stubResponse{status: status, body: response}
	if index == -1 {
		a.defaults[key] = stub
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]stubResponse{}
	}
	a.responses[key][index] = stub
}

func (a *ApiMock) responseFor(method, path string, index int) stubResponse {
	for key, byIndex := range a.responses {
		if matchKey(key, method, path) {
			if stub, ok := byIndex[index]; ok {
				return stub
			}
		}
	}
	for key, stub := range a.defaults {
		if matchKey(key, method, path) {
			return stub
		}
	}
	return stubResponse{status: http.StatusOK, body: map[string]any{}}
}

func (a *ApiMock) request(method, path string, index int) (recordedRequest, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	received := a.requests[method+path]
	if index < 0 || index >= len(received) {
		return recordedRequest{}, false
	}
	return received[index], true
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	if r, ok := a.request(method, path, index); ok {
		return r.body
	}
	return nil
}

func (a *ApiMock) GetRequestHeaders(method, path string, index int) map[string]string {
	if r, ok := a.request(method, path, index); ok {
		return r.headers
	}
	return nil
}

func (a *ApiMock) GetRequestQueries(method, path string, index int) map[string]string {
	if r, ok := a.request(method, path, index); ok {
		return r.queries
	}
	return nil
}

// RequestCount reports how many calls method+path has received.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests[method+path])
}

// Clear drops recorded requests and configured responses for every route.
func (a *ApiMock) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = map[string][]recordedRequest{}
	a.responses = map[string]map[int]stubResponse{}
	a.defaults = map[string]stubResponse{}
}

func matchKey(key, method, path string) bool {
	if !strings.HasPrefix(key, method) {
		return false
	}
	pattern := strings.Split(strings.TrimPrefix(key, method), "/")
	parts := strings.Split(path, "/")
	if len(pattern) != len(parts) {
		return false
	}
	for i := range pattern {
		if pattern[i] != "*" && pattern[i] != parts[i] {
			return false
		}
	}
	return true
}
