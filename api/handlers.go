package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/civitas-social/governance/core/governance"
	"github.com/civitas-social/governance/observability/logging"
	"github.com/civitas-social/governance/observability/metrics"
	"github.com/civitas-social/governance/principal"
)

type proposeReleaseRequest struct {
	Proposer    string `json:"proposer"`
	Description string `json:"description"`
	Commit      string `json:"commit"`
	Binary      []byte `json:"binary"`
}

type proposeRewardRequest struct {
	Proposer    string `json:"proposer"`
	Description string `json:"description"`
	Receiver    string `json:"receiver"`
}

type proposeFundingRequest struct {
	Proposer    string `json:"proposer"`
	Description string `json:"description"`
	Receiver    string `json:"receiver"`
	Tokens      uint64 `json:"tokens"`
}

type proposeResponse struct {
	ProposalID uint32 `json:"proposalId"`
}

type voteRequest struct {
	Voter   string `json:"voter"`
	Approve bool   `json:"approve"`
	Data    string `json:"data"`
}

type cancelRequest struct {
	Caller string `json:"caller"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleProposeRelease(w http.ResponseWriter, r *http.Request) {
	var req proposeReleaseRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	proposer, err := principal.Parse(req.Proposer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	payload := governance.Payload{Kind: governance.PayloadRelease, Release: governance.Release{
		Commit: req.Commit,
		Binary: req.Binary,
	}}
	s.propose(w, proposer, req.Description, payload)
}

func (s *Server) handleProposeReward(w http.ResponseWriter, r *http.Request) {
	var req proposeRewardRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	proposer, err := principal.Parse(req.Proposer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	payload := governance.Payload{Kind: governance.PayloadReward, Reward: governance.Reward{
		Receiver: req.Receiver,
	}}
	s.propose(w, proposer, req.Description, payload)
}

func (s *Server) handleProposeFunding(w http.ResponseWriter, r *http.Request) {
	var req proposeFundingRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	proposer, err := principal.Parse(req.Proposer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	payload := governance.Payload{Kind: governance.PayloadFund, Fund: governance.Fund{
		Receiver: req.Receiver,
		Tokens:   req.Tokens,
	}}
	s.propose(w, proposer, req.Description, payload)
}

func (s *Server) propose(w http.ResponseWriter, proposer principal.Principal, description string, payload governance.Payload) {
	id, err := s.engine.Propose(proposer, description, payload, s.mintingRatio, s.now())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	metrics.ProposalsTotal.WithLabelValues(payload.Kind.String()).Inc()
	writeJSON(w, http.StatusCreated, proposeResponse{ProposalID: id})
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	id, ok := proposalIDFromPath(w, r)
	if !ok {
		return
	}
	var req voteRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	voter, err := principal.Parse(req.Voter)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.engine.Vote(id, voter, req.Approve, req.Data, s.mintingRatio, s.now()); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	side := "reject"
	if req.Approve {
		side = "approve"
	}
	metrics.BallotsTotal.WithLabelValues(side).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := proposalIDFromPath(w, r)
	if !ok {
		return
	}
	var req cancelRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	caller, err := principal.Parse(req.Caller)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.engine.Cancel(id, caller)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetProposal(w http.ResponseWriter, r *http.Request) {
	id, ok := proposalIDFromPath(w, r)
	if !ok {
		return
	}
	proposal, found := s.engine.Proposal(id)
	if !found {
		writeError(w, http.StatusNotFound, governance.ErrNoProposalsFound)
		return
	}
	writeJSON(w, http.StatusOK, proposal)
}

func (s *Server) handleListProposals(w http.ResponseWriter, r *http.Request) {
	page := uint32(0)
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("invalid page"))
			return
		}
		page = uint32(parsed)
	}
	writeJSON(w, http.StatusOK, s.engine.Proposals(page))
}

func proposalIDFromPath(w http.ResponseWriter, r *http.Request) (uint32, bool) {
	raw := chi.URLParam(r, "id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid proposal id"))
		return 0, false
	}
	return uint32(parsed), true
}

// decodeJSON reads and parses the request body into dst. On failure it logs
// the raw body for diagnosis, masking it with the same redaction helper the
// rest of the service uses for untrusted content: a malformed body is
// arbitrary client input and may itself contain credentials or other
// sensitive fields a caller meant for a different field.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("malformed request body"))
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		if s.logger != nil {
			s.logger.Error("rejected malformed request body", logging.MaskField("body", string(body)), "path", r.URL.Path)
		}
		writeError(w, http.StatusBadRequest, errors.New("malformed request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor maps the governance core's stable error taxonomy (§7) onto HTTP
// status codes; anything unrecognized is a 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, governance.ErrUserNotFound),
		errors.Is(err, governance.ErrNoUserFound),
		errors.Is(err, governance.ErrNoProposalsFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
