package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"scoreboard/pkg/probe"
	"scoreboard/pkg/tests"
)

type probeState struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

func TestServerHandler(t *testing.T) {
	testCases := []struct {
		name       string
		endpoint   string
		checker    probe.Checker
		statusCode int
		expected   probeState
	}{
		{
			name:       "Health handler",
			endpoint:   "/healthz",
			statusCode: http.StatusOK,
			expected:   probeState{Name: "app-1", Version: "v0.0.1"},
		},
		{
			name:       "Ready without checks",
			endpoint:   "/ready",
			statusCode: http.StatusOK,
			expected:   probeState{Name: "app-1", Version: "v0.0.1"},
		},
		{
			name:       "Ready with healthy storage",
			endpoint:   "/ready",
			checker:    probe.CheckerFunc(func(context.Context) error { return nil }),
			statusCode: http.StatusOK,
			expected: probeState{
				Name:    "app-1",
				Version: "v0.0.1",
				Checks:  map[string]string{"storage": "ok"},
			},
		},
		{
			name:       "Ready with broken storage",
			endpoint:   "/ready",
			checker:    probe.CheckerFunc(func(context.Context) error { return errors.New("connection refused") }),
			statusCode: http.StatusServiceUnavailable,
			expected: probeState{
				Name:    "app-1",
				Version: "v0.0.1",
				Checks:  map[string]string{"storage": "connection refused"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			server := probe.NewServer("", probe.Options{Name: "app-1", Version: "v0.0.1"})
			if tc.checker != nil {
				server = server.WithChecker("storage", tc.checker)
			}

			ts := httptest.NewServer(server.Handler())
			defer ts.Close()

			client := tests.NewAPIClient(ts.URL, ts.Client())

			var ok, failed probeState

			resp, err := client.Get(context.Background(), tc.endpoint, http.Header{}, &ok, &failed)
			rq.NoError(err)
			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.NotEmpty(resp.Header.Get("X-Trace-Id"))

			if tc.statusCode == http.StatusOK {
				rq.Equal(tc.expected, ok)
			} else {
				rq.Equal(tc.expected, failed)
			}
		})
	}
}

func TestServerRun(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	probeServer := probe.NewServer(":10003", probe.Options{Name: "app-3", Version: "v0.0.3"})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return probeServer.Run(ctx)
	})

	// Wait for server to start.
	time.Sleep(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://:10003/invalid", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	rq.Equal(http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.Equal("404 page not found\n", string(body))

	cancel()

	rq.NoError(g.Wait())
}
