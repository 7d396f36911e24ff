package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/adapter/utils"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/config"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/handlers"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/middleware"
	"github.com/vineethbhatalevoor/AILegalsummary/internal/web"
	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

type Routes struct {
	Summary *handlers.SummaryHandler
	MCP     http.Handler
}

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
}

// NewRouter mounts the page, the API and the MCP endpoint on the base router.
func NewRouter(cfg *config.Config, routes Routes) *chi.Mux {
	r := utils.GetRouter(cfg.CorsOrigins)

	r.Router.Get("/", web.IndexHandler)
	r.Router.Handle("/static/*", web.StaticHandler())
	r.Router.Post("/summarize", middleware.Wrap(routes.Summary.SummarizeHandler))
	r.Router.Get("/healthz", routes.Summary.HealthHandler)
	r.Router.Get("/languages", routes.Summary.LanguagesHandler)
	if routes.MCP != nil {
		r.Router.Handle("/mcp", routes.MCP)
	}
	return r.Router
}

// CreateServer builds the http server. Call it before ListenAndServe and ShutDownHandler.
func CreateServer(cfg *config.Config, handler http.Handler) {
	_logger = logger_i.NewLogger("Server")

	server = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func ListenAndServe() {
	_logger.Info("Server is listening at", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error", err.Error(), "addr", server.Addr)
		os.Exit(1)
	}
}

func ShutDownHandler(cfg *config.Config, shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	_logger.Info("Server is shutting down", "signal", state.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		server.SetKeepAlivesEnabled(false)

		if err := server.Shutdown(ctx); err != nil {
			_logger.Error("Could not shutdown gracefully", "error", err)
		}
		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully shut down")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
