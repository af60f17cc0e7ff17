// Package api exposes the governance engine's update and query entry points
// (§6 CLI/RPC surface) over plain JSON via chi. It is the deployable
// transport the core itself stays agnostic to.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/civitas-social/governance/core/governance"
)

// Clock supplies the Unix-epoch-seconds time the engine's entry points take
// as an explicit argument, per the core's no-internal-clock-sampling rule.
type Clock func() uint64

// Server bundles the governance engine with the service-level concerns
// (routing, request IDs, minting ratio) needed to expose it over HTTP.
type Server struct {
	engine       *governance.Engine
	logger       governance.Logger
	mintingRatio uint64
	now          Clock
	router       chi.Router
}

// New builds a Server and its routes. mintingRatio is the host-supplied
// scalar applied to every funding-cap check (§4.1, §4.3).
func New(engine *governance.Engine, logger governance.Logger, mintingRatio uint64, now Clock) *Server {
	if now == nil {
		now = func() uint64 { return uint64(time.Now().Unix()) }
	}
	s := &Server{engine: engine, logger: logger, mintingRatio: mintingRatio, now: now}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestIDHeader)
	r.Use(middleware.Recoverer)

	r.Post("/v1/proposals/release", s.handleProposeRelease)
	r.Post("/v1/proposals/reward", s.handleProposeReward)
	r.Post("/v1/proposals/funding", s.handleProposeFunding)
	r.Post("/v1/proposals/{id}/votes", s.handleVote)
	r.Post("/v1/proposals/{id}/cancel", s.handleCancel)
	r.Get("/v1/proposals/{id}", s.handleGetProposal)
	r.Get("/v1/proposals", s.handleListProposals)

	return r
}

// requestIDHeader mirrors chi's generated request ID back to the caller so
// client-side logs can correlate with server-side structured logs.
func requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := middleware.GetReqID(r.Context())
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}
