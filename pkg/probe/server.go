package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"scoreboard/pkg/contextx"
	"scoreboard/pkg/logx"
	"scoreboard/pkg/middlewarex"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	readinessTimeout            = 3 * time.Second
	logFieldMaxLen              = 2048
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Checker reports whether a dependency is ready to serve traffic.
type Checker interface {
	Ping(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Server struct {
	listenAddress string
	options       Options
	checkers      map[string]Checker
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type state struct {
	Options
	Checks map[string]string `json:"checks,omitempty"`
}

func NewServer(
	listenAddress string,
	options Options,
) Server {
	return Server{
		listenAddress: listenAddress,
		options:       options,
		checkers:      map[string]Checker{},
	}
}

// WithChecker adds a named dependency to /ready.
func (s Server) WithChecker(name string, checker Checker) Server {
	checkers := make(map[string]Checker, len(s.checkers)+1)
	for k, v := range s.checkers {
		checkers[k] = v
	}

	checkers[name] = checker
	s.checkers = checkers

	return s
}

func (s Server) Handler() http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	r.Get("/healthz", s.handlerHealthz)
	r.Get("/ready", s.handlerReady)

	return r
}

func (s Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              s.listenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("probe server started", slog.String("address", s.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("probe server stopped")

	return nil
}

func (s Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	writeState(w, http.StatusOK, state{Options: s.options})
}

func (s Server) handlerReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := http.StatusOK
	result := state{Options: s.options}

	if len(s.checkers) > 0 {
		result.Checks = make(map[string]string, len(s.checkers))
	}

	for name, checker := range s.checkers {
		if err := checker.Ping(ctx); err != nil {
			logger(ctx).Warn("readiness check failed", slog.String("check", name), logx.Error(err))

			result.Checks[name] = err.Error()
			status = http.StatusServiceUnavailable

			continue
		}

		result.Checks[name] = "ok"
	}

	writeState(w, status, result)
}

func writeState(w http.ResponseWriter, status int, st state) {
	body, _ := json.Marshal(st) //nolint:errcheck,errchkjson

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}
