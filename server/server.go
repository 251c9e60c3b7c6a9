// Package server provides HTTP server management and lifecycle handling for
// the childcare API. It includes server setup, middleware configuration,
// route management, and graceful shutdown with proper error handling and
// logging.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nourcare/childcare-api/config"
	"github.com/nourcare/childcare-api/interfaces"
	"github.com/nourcare/childcare-api/logging"
	"github.com/nourcare/childcare-api/metrics"
)

// Server represents the HTTP server
type Server struct {
	server  *http.Server
	router  chi.Router
	handler interfaces.HTTPHandler
	config  *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, handler interfaces.HTTPHandler) *Server {
	router := chi.NewRouter()

	server := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:  router,
		handler: handler,
		config:  cfg,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(BlockDirectAccessMiddleware) // Put BEFORE RealIPMiddleware to see original RemoteAddr
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.LoggingMiddleware(logging.DefaultLoggingService.Logger))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(metrics.Metrics)
	s.router.Use(RateLimitHandler)
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	h := s.handler

	// Vaccine catalog
	s.router.Get("/vaccines", h.ServeVaccines)
	s.router.Get("/vaccines/search/{term}", h.SearchVaccines)
	s.router.Get("/vaccines/{vaccineId}", h.FindVaccineByID)

	// Children registry and per-child resources
	s.router.Route("/children", func(r chi.Router) {
		r.Post("/", h.CreateChild)
		r.Get("/", h.ListChildren)

		r.Route("/{childId}", func(r chi.Router) {
			r.Get("/", h.GetChild)

			r.Get("/vaccinations", h.GetVaccinationSchedule)
			r.Get("/vaccinations/grouped", h.GetVaccinationGrouped)
			r.Get("/vaccinations/next", h.GetNextVaccination)
			r.Post("/vaccinations/{vaccineId}/done", h.MarkVaccinationDone)

			r.Post("/medications", h.CreateMedication)
			r.Get("/medications", h.ListChildMedications)

			r.Post("/measurements", h.CreateMeasurement)
			r.Get("/measurements", h.ListMeasurements)
			r.Get("/growth/{chartType}", h.ServeGrowthChart)
		})
	})

	// Dose dashboard
	s.router.Get("/doses/today", h.ServeTodaysDoses)
	s.router.Post("/doses/{doseLogId}/given", h.MarkDoseGiven)
	s.router.Post("/doses/{doseLogId}/skipped", h.MarkDoseSkipped)

	// WHO reference series
	s.router.Get("/growth/standards/{chartType}/{sex}", h.ServeGrowthStandards)

	// Doctor directory
	s.router.Get("/doctors", h.ServeDoctors)
	s.router.Get("/doctors/search/{term}", h.SearchDoctors)
	s.router.Get("/doctors/{doctorId}", h.FindDoctorByID)

	// Symptom triage
	s.router.Get("/triage/questions", h.ServeTriageQuestions)
	s.router.Post("/triage/next", h.ResolveTriageNext)
	s.router.Post("/triage/outcome", h.ResolveTriageOutcome)

	// Operational endpoints
	s.router.Get("/health", h.HealthCheck)
	s.router.Method("GET", "/metrics", promhttp.Handler())

	// API index
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"name":    "childcare-api",
			"version": "1.0",
			"resources": []string{
				"/vaccines", "/children", "/doses/today",
				"/growth/standards/{chartType}/{sex}", "/doctors",
				"/triage/questions", "/health",
			},
		})
	})
}

// Start starts the server
func (s *Server) Start() error {
	// Start profiling server if in development mode
	if s.config.Env == "dev" {
		s.startProfilingServer()
	}

	logging.Info(fmt.Sprintf("Starting server at: %s:%s", s.config.Address, s.config.Port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		// If graceful shutdown fails, force close
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	// Wait a bit for any ongoing requests to complete
	logging.Info("Waiting for ongoing requests to complete...")
	time.Sleep(2 * time.Second)

	logging.Info("Server shutdown complete")
	return nil
}

// startProfilingServer starts the pprof profiling server in development mode
func (s *Server) startProfilingServer() {
	go func() {
		fmt.Println("Profiling server started at http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			fmt.Println("Profiling server failed: ", err)
		}
	}()
}
