package ledger

import (
	"testing"

	"github.com/civitas-social/governance/principal"
)

func testPrincipal(t *testing.T, b byte) principal.Principal {
	t.Helper()
	raw := make([]byte, 20)
	raw[19] = b
	p, err := principal.New(principal.UserPrefix, raw)
	if err != nil {
		t.Fatalf("new principal: %v", err)
	}
	return p
}

func TestMintAndBalanceOf(t *testing.T) {
	l := New(nil)
	p := testPrincipal(t, 1)

	if _, ok := l.BalanceOf(p); ok {
		t.Fatalf("expected no balance for unseen principal")
	}
	if err := l.Mint(p, 100); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := l.Mint(p, 50); err != nil {
		t.Fatalf("mint: %v", err)
	}
	balance, ok := l.BalanceOf(p)
	if !ok || balance != 150 {
		t.Fatalf("expected balance 150, got %d (ok=%v)", balance, ok)
	}
}

type denyAll struct{}

func (denyAll) ActiveWithinWeeks(principal.Principal, uint64, uint64) bool { return false }

func TestActiveVotingPowerRespectsOracle(t *testing.T) {
	l := New(denyAll{})
	p1 := testPrincipal(t, 1)
	p2 := testPrincipal(t, 2)
	l.SetBalance(p1, 100)
	l.SetBalance(p2, 200)

	if got := l.ActiveVotingPower(0); got != 0 {
		t.Fatalf("expected 0 active voting power when oracle reports inactive, got %d", got)
	}
}

func TestActiveVotingPowerNilOracleCountsEverything(t *testing.T) {
	l := New(nil)
	p1 := testPrincipal(t, 1)
	p2 := testPrincipal(t, 2)
	l.SetBalance(p1, 100)
	l.SetBalance(p2, 200)

	if got := l.ActiveVotingPower(0); got != 300 {
		t.Fatalf("expected 300, got %d", got)
	}
}
