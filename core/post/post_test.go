package post

import (
	"testing"

	"github.com/civitas-social/governance/principal"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := New()
	author := principal.Principal{}

	id0, err := s.Create(author, "first", 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id1, err := s.Create(author, "second", 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id0 != 0 || id1 != 1 {
		t.Fatalf("expected sequential ids 0,1; got %d,%d", id0, id1)
	}

	p, ok := s.Get(id1)
	if !ok {
		t.Fatalf("expected post %d to exist", id1)
	}
	if p.Description != "second" || p.ProposalID != 1 {
		t.Fatalf("unexpected post contents: %+v", p)
	}
}

func TestGetOutOfRange(t *testing.T) {
	s := New()
	if _, ok := s.Get(42); ok {
		t.Fatalf("expected out-of-range lookup to miss")
	}
}
