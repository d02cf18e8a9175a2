package modules

import (
	"context"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"scoreboard/pkg/probe"
)

const probeReadHeaderTimeout = 5 * time.Second

type ProbeServer struct {
	Name            string
	Version         string
	ListenAddress   string
	ShutdownTimeout time.Duration
	Checkers        map[string]probe.Checker
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
	)

	for name, checker := range p.Checkers {
		probeServer = probeServer.WithChecker(name, checker)
	}

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              p.ListenAddress,
		Handler:           probeServer.Handler(),
		ReadHeaderTimeout: probeReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	HTTPServer{ShutdownTimeout: p.ShutdownTimeout}.Run(ctx, g, httpServer)
}
