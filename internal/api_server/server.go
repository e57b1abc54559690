package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/robotics-advisor/planner/internal/catalog"
	"github.com/robotics-advisor/planner/internal/config"
	handlers "github.com/robotics-advisor/planner/internal/handlers/v1alpha1"
	"github.com/robotics-advisor/planner/internal/service"
	"github.com/robotics-advisor/planner/internal/store"
	"github.com/robotics-advisor/planner/pkg/metrics"
	"github.com/robotics-advisor/planner/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	catalog  *catalog.Catalog
	analyzer service.TaskAnalyzer
	planner  service.OptionPlanner
	listener net.Listener
}

// New returns a new instance of an automation planner server.
func New(
	cfg *config.Config,
	store store.Store,
	catalog *catalog.Catalog,
	analyzer service.TaskAnalyzer,
	planner service.OptionPlanner,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		catalog:  catalog,
		analyzer: analyzer,
		planner:  planner,
		listener: listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   s.cfg.Service.CorsAllowedOrigins,
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	analysisService := service.NewAnalysisService(s.store, s.catalog, s.analyzer, s.planner)
	reportService := service.NewReportService(analysisService)

	h := handlers.NewServiceHandler(analysisService, reportService, s.catalog)
	h.RegisterApi(router)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}
