package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"runtime"
	"time"

	"github.com/gorilla/mux"

	"github.com/shivanshkc/integrator/internal/config"
	"github.com/shivanshkc/integrator/internal/handler"
	"github.com/shivanshkc/integrator/internal/middleware"
	"github.com/shivanshkc/integrator/internal/utils/signals"
)

// shutdownTimeout bounds the graceful shutdown. In-flight token exchanges get this long to finish.
const shutdownTimeout = 30 * time.Second

// Server is the HTTP server of this application.
type Server struct {
	Config     config.Config
	Middleware middleware.Middleware
	Handler    *handler.Handler
	httpServer *http.Server
}

// Start sets up all the dependencies and routes on the server, and calls ListenAndServe on it.
// It blocks until the server is shut down upon SIGINT or SIGTERM.
func (s *Server) Start() error {
	// Create the HTTP server.
	s.httpServer = &http.Server{
		Addr:              s.Config.HTTPServer.Addr,
		ReadHeaderTimeout: time.Minute,
		Handler:           s.Router(),
	}

	done := make(chan struct{})

	// Gracefully shut down upon interruption.
	signals.OnSignal(func(_ os.Signal) {
		defer close(done)
		slog.Info("interruption detected, gracefully shutting down the server")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Graceful shutdown.
		if err := s.httpServer.Shutdown(ctx); err != nil {
			slog.Error("failed to gracefully shutdown the server", "err", err)
		}
	})

	slog.Info("starting http server", "name", s.Config.Application.Name, "addr", s.Config.HTTPServer.Addr)
	// Start the HTTP server.
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		slog.Error("error in ListenAndServe call", "err", err)
		return err
	}

	// Wait for the in-flight requests to complete.
	<-done
	return nil
}

// Router attaches middleware and REST methods to a new router.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()

	// Attach middleware.
	router.Use(s.Middleware.Recovery)
	router.Use(s.Middleware.AccessLogger)
	router.Use(s.Middleware.CORS)
	router.Use(s.Middleware.Security)

	// Both phases of every integration flow.
	router.HandleFunc("/api/auth/integration/{provider}", s.Handler.Integration).Methods(http.MethodGet)
	// Builds the link that starts a flow.
	router.HandleFunc("/api/auth/link", s.Handler.Link).Methods(http.MethodGet)
	// Liveness check.
	router.HandleFunc("/api/health", s.Handler.Health).Methods(http.MethodGet, http.MethodHead)

	// Enable profiling if configured.
	if s.Config.Application.PProf {
		s.addProfilingRoutes(router)
	}

	// Handle 404.
	router.PathPrefix("/").HandlerFunc(s.Handler.NotFound)

	return router
}

// addProfilingRoutes adds all the pprof routes to the router.
func (s *Server) addProfilingRoutes(router *mux.Router) {
	// Enable block profiling.
	runtime.SetBlockProfileRate(1)
	// Enable mutex profiling.
	runtime.SetMutexProfileFraction(1)

	// Manually add support for paths linked to by index page at /debug/pprof
	router.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	router.Handle("/debug/pprof/heap", pprof.Handler("heap"))
	router.Handle("/debug/pprof/threadcreate", pprof.Handler("threadcreate"))
	router.Handle("/debug/pprof/block", pprof.Handler("block"))

	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	router.HandleFunc("/debug/pprof", pprof.Index)

	slog.Info("pprof endpoints available at: /debug/pprof")
}
