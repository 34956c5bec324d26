//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=server_mocks
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/claims"
	"github.com/claimithub/claimit/internal/repository"
	"github.com/claimithub/claimit/internal/search"
)

type Intake interface {
	RegisterItem(ctx context.Context, input claims.RegisterItemInput) (*repository.Item, error)
}

type Workflow interface {
	ClaimItem(ctx context.Context, itemID int64, userName, email string) (claims.Result, error)
}

type Engine interface {
	ApproveOrReject(ctx context.Context, itemID int64, newStatus, reason string) (claims.Result, error)
	RecordClaimHistory(ctx context.Context, entry *repository.ClaimHistoryEntry) (int64, error)
	UpdateClaimStatusAndNotify(ctx context.Context, claimID int64, newStatus string) (claims.Result, error)
}

type Archiver interface {
	ArchiveNow(ctx context.Context, itemID int64) error
	RestoreArchived(ctx context.Context, from, to time.Time, expirationOverride *time.Time) (int, error)
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]repository.ItemSummary, error)
	SearchByFields(ctx context.Context, q search.FieldQuery) ([]repository.ItemSummary, error)
}

type Storage interface {
	ListItems(ctx context.Context) ([]repository.ItemSummary, error)
	ArchivedItemsBetween(ctx context.Context, from, to time.Time) ([]*repository.Item, error)
	ClaimHistoryByEmail(ctx context.Context, email string) ([]*repository.ClaimHistoryEntry, error)
	ClaimRequestsForUser(ctx context.Context, userID int64, excludedStatus string) ([]*repository.ClaimRequest, error)
	StatusCountsByMonth(ctx context.Context, month string) ([]repository.StatusCountRow, error)
}

type AdminRepo interface {
	ValidateAdmin(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	intake    Intake
	workflow  Workflow
	engine    Engine
	archiver  Archiver
	searcher  Searcher
	storage   Storage
	adminRepo AdminRepo
	logger    *zap.Logger
	server    *http.Server
}

func New(intake Intake, workflow Workflow, engine Engine, archiver Archiver, searcher Searcher, storage Storage, adminRepo AdminRepo, logger *zap.Logger) *Server {
	return &Server{
		intake:    intake,
		workflow:  workflow,
		engine:    engine,
		archiver:  archiver,
		searcher:  searcher,
		storage:   storage,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go s.handleShutdown()

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleShutdown() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	s.logger.Info("received signal, initiating graceful shutdown", zap.String("signal", sig.String()))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		s.logger.Error("server shutdown failed", zap.Error(err))
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("http server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.loggingMiddleware, s.basicAuthMiddleware)

	api.HandleFunc("/items", s.handleRegisterItem).Methods(http.MethodPost)
	api.HandleFunc("/items", s.handleListItems).Methods(http.MethodGet)
	api.HandleFunc("/items/archived", s.handleListArchived).Methods(http.MethodGet)
	api.HandleFunc("/items/search", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/items/searchByFields", s.handleSearchByFields).Methods(http.MethodGet)
	api.HandleFunc("/items/restore", s.handleRestoreArchived).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/approval", s.handleApproveOrReject).Methods(http.MethodPut)
	api.HandleFunc("/items/{id}/archive", s.handleArchiveNow).Methods(http.MethodPost)

	api.HandleFunc("/claims", s.handleClaimItem).Methods(http.MethodPost)
	api.HandleFunc("/claims/history", s.handleRecordClaimHistory).Methods(http.MethodPost)
	api.HandleFunc("/claims/history", s.handleClaimHistoryByEmail).Methods(http.MethodGet)
	api.HandleFunc("/claims/{claimId}/status", s.handleUpdateClaimStatus).Methods(http.MethodPut)

	api.HandleFunc("/users/{id}/claims", s.handleUserClaims).Methods(http.MethodGet)

	api.HandleFunc("/stats/status-counts", s.handleStatusCounts).Methods(http.MethodGet)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.adminRepo.ValidateAdmin(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.Info("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rw.status),
			zap.Duration("duration", time.Since(start)))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the domain sentinels onto HTTP status codes.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
