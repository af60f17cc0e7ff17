package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/civitas-social/governance/core/governance"
	"github.com/civitas-social/governance/core/ledger"
	"github.com/civitas-social/governance/core/post"
	"github.com/civitas-social/governance/core/reputation"
	"github.com/civitas-social/governance/principal"
)

type nullLogger struct{}

func (nullLogger) Info(string, ...any)  {}
func (nullLogger) Error(string, ...any) {}

func newTestServer(t *testing.T) (*Server, *reputation.Store, *ledger.Ledger) {
	t.Helper()
	users := reputation.New()
	ledgerStore := ledger.New(users)
	posts := post.New()
	cfg := governance.Config{
		TokenDecimals:                   0,
		TokenSymbol:                     "CVT",
		MaxFundingAmount:                1_000_000,
		ProposalApprovalThresholdPct:    66,
		ProposalControversyThresholdPct: 200,
		ProposalRejectionPenalty:        100,
		VotingReward:                    10,
	}
	engine := governance.New(ledgerStore, users, posts, nullLogger{}, nil, cfg)
	clock := func() uint64 { return 0 }
	return New(engine, nullLogger{}, 1, clock), users, ledgerStore
}

func testPrincipal(t *testing.T, b byte) principal.Principal {
	t.Helper()
	raw := make([]byte, 20)
	raw[19] = b
	p, err := principal.New(principal.UserPrefix, raw)
	require.NoError(t, err)
	return p
}

func TestProposeFundingAndVoteEndToEnd(t *testing.T) {
	server, users, ledgerStore := newTestServer(t)

	proposer := testPrincipal(t, 1)
	voter := testPrincipal(t, 2)
	receiver := testPrincipal(t, 3)
	users.Register(proposer, "proposer", true, true, 0)
	users.Register(voter, "voter", true, false, 0)
	ledgerStore.SetBalance(voter, 10_000)

	body, _ := json.Marshal(proposeFundingRequest{
		Proposer:    proposer.String(),
		Description: "fund the thing",
		Receiver:    receiver.String(),
		Tokens:      500,
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/proposals/funding", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var proposed proposeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &proposed))

	voteBody, _ := json.Marshal(voteRequest{Voter: voter.String(), Approve: true})
	voteReq := httptest.NewRequest(http.MethodPost, "/v1/proposals/0/votes", bytes.NewReader(voteBody))
	voteRec := httptest.NewRecorder()
	server.ServeHTTP(voteRec, voteReq)
	require.Equal(t, http.StatusNoContent, voteRec.Code)

	getReq := httptest.NewRequest(http.MethodGet, "/v1/proposals/0", nil)
	getRec := httptest.NewRecorder()
	server.ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)

	var fetched governance.Proposal
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &fetched))
	require.Equal(t, governance.StatusExecuted, fetched.Status)
}

func TestProposeRejectsUnknownProposer(t *testing.T) {
	server, _, _ := newTestServer(t)
	proposer := testPrincipal(t, 9)

	body, _ := json.Marshal(proposeFundingRequest{
		Proposer:    proposer.String(),
		Description: "x",
		Receiver:    testPrincipal(t, 8).String(),
		Tokens:      1,
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/proposals/funding", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProposalNotFound(t *testing.T) {
	server, _, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/proposals/42", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
