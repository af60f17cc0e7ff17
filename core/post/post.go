// Package post implements the companion-post collaborator the governance
// core uses to give every proposal a human-readable description (§6 Post).
package post

import (
	"sync"

	"github.com/civitas-social/governance/principal"
)

// Post is a minimal companion post: enough to carry a proposal's
// description and let the read API resolve it back to a proposal id.
type Post struct {
	ID          uint64
	Author      principal.Principal
	Description string
	ProposalID  uint32
}

// Store is an append-only, in-memory post list.
type Store struct {
	mu    sync.Mutex
	posts []Post
}

// New constructs an empty Store.
func New() *Store {
	return &Store{}
}

// Create implements governance.PostCreator.
func (s *Store) Create(author principal.Principal, description string, proposalID uint32) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uint64(len(s.posts))
	s.posts = append(s.posts, Post{
		ID:          id,
		Author:      author,
		Description: description,
		ProposalID:  proposalID,
	})
	return id, nil
}

// Get returns the post at id, or false if out of range.
func (s *Store) Get(id uint64) (Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id >= uint64(len(s.posts)) {
		return Post{}, false
	}
	return s.posts[id], true
}
