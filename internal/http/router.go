package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"pollboard/internal/config"
	"pollboard/internal/domain/poll"
	"pollboard/internal/domain/user"
	"pollboard/internal/domain/vote"
	jwtpkg "pollboard/internal/platform/jwt"
	"pollboard/internal/worker"
)

type Handler struct {
	userSvc *user.Service
	pollSvc *poll.Service
	voteSvc *vote.Service
	jwtMgr  *jwtpkg.Manager
	voteCh  chan<- worker.VoteEvent
	db      *sql.DB
}

func NewRouter(
	cfg config.Config,
	userSvc *user.Service,
	pollSvc *poll.Service,
	voteSvc *vote.Service,
	jwtMgr *jwtpkg.Manager,
	voteCh chan<- worker.VoteEvent,
	db *sql.DB,
) http.Handler {
	h := &Handler{
		userSvc: userSvc,
		pollSvc: pollSvc,
		voteSvc: voteSvc,
		jwtMgr:  jwtMgr,
		voteCh:  voteCh,
		db:      db,
	}

	// Anonymous voting is a deployment choice: when off, the vote route
	// demands a token like any other mutation.
	voteAuth := AuthOptional(jwtMgr)
	if !cfg.AllowAnonymousVotes {
		voteAuth = AuthRequired(jwtMgr)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(RequestLogger)
	r.Use(CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", h.handleReady)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)

		r.Get("/polls", h.handleListPolls)
		r.Get("/polls/{id}", h.handleGetPoll)
		r.Get("/polls/{id}/results", h.handlePollResults)
		r.With(voteAuth, RateLimitVotes(rate.Every(cfg.VoteRateEvery), cfg.VoteRateBurst)).
			Post("/polls/{id}/vote", h.handleVote)

		r.Group(func(r chi.Router) {
			r.Use(AuthRequired(jwtMgr))

			r.Post("/polls", h.handleCreatePoll)
			r.Get("/polls/mine", h.handleListMyPolls)
			r.Put("/polls/{id}", h.handleUpdatePoll)
			r.Delete("/polls/{id}", h.handleDeletePoll)

			r.Group(func(r chi.Router) {
				r.Use(RequireRole("admin"))
				r.Get("/users", h.handleListUsers)
				r.Patch("/users/{id}/role", h.handleUpdateUserRole)
			})
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not ready",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
